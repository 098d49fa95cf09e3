package metrics

import (
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	InventoryLoads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_inventory_loads_total",
			Help: "Number of inventory loads by outcome",
		},
		[]string{"result"}, // success or fallback
	)
	InventoryRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dashboard_inventory_request_duration_seconds",
			Help:    "Latency of calls to the inventory API",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "result"},
	)
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_http_requests_total",
			Help: "Number of HTTP requests served by the dashboard",
		},
		[]string{"route", "status"},
	)
)

var registerOnce sync.Once

// InitMetrics registers the dashboard collectors with the default registry.
func InitMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(InventoryLoads, InventoryRequestDuration, HTTPRequests)
	})
}

func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
