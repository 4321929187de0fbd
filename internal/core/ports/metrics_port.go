package ports

import (
	"time"

	"github.com/gin-gonic/gin"
)

type MetricsPort interface {
	RecordMetrics(c *gin.Context, start time.Time)
	RecordRemoteCall(method string, status int, duration time.Duration)
	SetInventory(models, units int)
}
