package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-openapi/swag"
	"github.com/sm8ta/webike_inventory/internal/core/domain"
	"github.com/sm8ta/webike_inventory/internal/core/ports"
	"github.com/sm8ta/webike_inventory/internal/core/services"
)

type AuditHandler struct {
	audit   *services.AuditService
	logger  ports.LoggerPort
	metrics ports.MetricsPort
}

type AuditListResponse struct {
	Enabled bool                 `json:"enabled"`
	Events  []*domain.AuditEvent `json:"events"`
	Count   int                  `json:"count"`
}

func NewAuditHandler(audit *services.AuditService, logger ports.LoggerPort, metrics ports.MetricsPort) *AuditHandler {
	return &AuditHandler{
		audit:   audit,
		logger:  logger,
		metrics: metrics,
	}
}

// @Summary Audit trail
// @Description Latest inventory writes, newest first
// @Tags audit
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Maximum number of events" default(50)
// @Success 200 {object} AuditListResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Failure 403 {object} errorResponse
// @Router /audit [get]
func (h *AuditHandler) List(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var limit int64
	if raw := c.Query("limit"); raw != "" {
		n, err := swag.ConvertInt64(raw)
		if err != nil {
			newErrorResponse(c, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	events, err := h.audit.List(c.Request.Context(), int(limit))
	if err != nil {
		newErrorResponse(c, http.StatusInternalServerError, "Failed to list audit events")
		return
	}

	c.JSON(http.StatusOK, AuditListResponse{
		Enabled: h.audit.Enabled(),
		Events:  events,
		Count:   len(events),
	})
}
