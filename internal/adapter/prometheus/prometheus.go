package prometheus

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/sm8ta/webike_inventory/internal/core/ports"
)

var _ ports.MetricsPort = (*PrometheusAdapter)(nil)

type PrometheusAdapter struct {
	httpRequests  *prom.CounterVec
	httpDuration  *prom.HistogramVec
	remoteCalls   *prom.CounterVec
	remoteLatency *prom.HistogramVec
	bikeModels    prom.Gauge
	bikeUnits     prom.Gauge
}

// NewPrometheusAdapter registers the collectors on reg. Pass prom.DefaultRegisterer to expose them on /metrics.
func NewPrometheusAdapter(reg prom.Registerer) *PrometheusAdapter {
	a := &PrometheusAdapter{
		httpRequests: prom.NewCounterVec(prom.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		httpDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prom.DefBuckets,
		}, []string{"method", "route"}),
		remoteCalls: prom.NewCounterVec(prom.CounterOpts{
			Name: "baserow_requests_total",
			Help: "Total number of requests sent to Baserow",
		}, []string{"method", "status"}),
		remoteLatency: prom.NewHistogramVec(prom.HistogramOpts{
			Name:    "baserow_request_duration_seconds",
			Help:    "Baserow request latency",
			Buckets: prom.DefBuckets,
		}, []string{"method"}),
		bikeModels: prom.NewGauge(prom.GaugeOpts{
			Name: "inventory_bike_models",
			Help: "Number of bike models currently held by the inventory store",
		}),
		bikeUnits: prom.NewGauge(prom.GaugeOpts{
			Name: "inventory_bike_units",
			Help: "Sum of stock over all bike models",
		}),
	}

	reg.MustRegister(a.httpRequests, a.httpDuration, a.remoteCalls, a.remoteLatency, a.bikeModels, a.bikeUnits)
	return a
}

func (a *PrometheusAdapter) RecordMetrics(c *gin.Context, start time.Time) {
	route := c.FullPath()
	if route == "" {
		route = "unmatched"
	}
	method := c.Request.Method
	status := strconv.Itoa(c.Writer.Status())

	a.httpRequests.WithLabelValues(method, route, status).Inc()
	a.httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
}

// RecordRemoteCall counts a Baserow call. Status 0 means the request never got a response.
func (a *PrometheusAdapter) RecordRemoteCall(method string, status int, duration time.Duration) {
	a.remoteCalls.WithLabelValues(method, strconv.Itoa(status)).Inc()
	a.remoteLatency.WithLabelValues(method).Observe(duration.Seconds())
}

func (a *PrometheusAdapter) SetInventory(models, units int) {
	a.bikeModels.Set(float64(models))
	a.bikeUnits.Set(float64(units))
}
