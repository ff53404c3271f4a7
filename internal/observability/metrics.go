// Package observability provides Prometheus metrics for monitoring.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	// Projection metrics
	ProjectionRunsTotal   *prometheus.CounterVec // by scenario, mode
	ProjectionErrorsTotal *prometheus.CounterVec // by kind
	ProjectionDuration    prometheus.Histogram

	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec // by method, path, status
	HTTPRequestDuration *prometheus.HistogramVec

	// WebSocket metrics
	WSClients  prometheus.Gauge
	WSMessages prometheus.Counter
}

// NewMetrics creates a new Metrics instance with all metrics registered on
// the given registerer (nil uses the default registry).
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	if namespace == "" {
		namespace = "rpcfi_flow_lab"
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		ProjectionRunsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "projection",
			Name:      "runs_total",
			Help:      "Total number of projection runs",
		}, []string{"scenario", "mode"}),
		ProjectionErrorsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "projection",
			Name:      "errors_total",
			Help:      "Total number of rejected projection requests",
		}, []string{"kind"}),
		ProjectionDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "projection",
			Name:      "duration_seconds",
			Help:      "Projection computation duration in seconds",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		}),

		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests",
		}, []string{"method", "path", "status"}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		}, []string{"method", "path"}),

		WSClients: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "ws",
			Name:      "clients",
			Help:      "Number of connected WebSocket clients",
		}),
		WSMessages: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ws",
			Name:      "messages_total",
			Help:      "Total WebSocket projection requests served",
		}),
	}
}

// Handler returns the HTTP handler exposing the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
