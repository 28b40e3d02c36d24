// Package metrics provides centralized Prometheus metrics for the service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)

// Domain metrics
var (
	// ChartsCastTotal counts charts served, by source ("computed" or "cache").
	ChartsCastTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "charts_cast_total",
			Help: "Total number of charts served",
		},
		[]string{"source"},
	)

	// GeocodeLookupsTotal counts place lookups by result.
	GeocodeLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "geocode_lookups_total",
			Help: "Total number of place lookups",
		},
		[]string{"result"},
	)

	OperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "operation_duration_seconds",
			Help:    "Duration of timed internal operations in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0005, 4, 8),
		},
		[]string{"op"},
	)
)

const (
	SourceComputed = "computed"
	SourceCache    = "cache"
)

// RecordHTTPRequest records one served request.
func RecordHTTPRequest(method, path, status string, dur time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(dur.Seconds())
}

// RecordCharts adds n charts served from source.
func RecordCharts(source string, n int) {
	if n <= 0 {
		return
	}
	ChartsCastTotal.WithLabelValues(source).Add(float64(n))
}
