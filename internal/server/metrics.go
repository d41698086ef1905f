package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/orbitpath/dijkstra"
)

// Metrics holds the service's Prometheus collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
	Computations *prometheus.CounterVec
	ActiveNodes  prometheus.Histogram
}

// NewMetrics creates and registers all collectors.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	httpRequests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orbitpath_http_requests_total",
			Help: "HTTP requests by method, route and status code.",
		},
		[]string{"method", "route", "status"},
	)
	httpDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "orbitpath_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
	computations := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orbitpath_path_computations_total",
			Help: "Shortest-path computations by outcome (ok|empty).",
		},
		[]string{"outcome"},
	)
	activeNodes := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "orbitpath_path_active_nodes",
			Help:    "Active set size per computation.",
			Buckets: []float64{1, 2, 5, 10, 20, 50, 100},
		},
	)

	registry.MustRegister(httpRequests, httpDuration, computations, activeNodes)

	return &Metrics{
		registry:     registry,
		HTTPRequests: httpRequests,
		HTTPDuration: httpDuration,
		Computations: computations,
		ActiveNodes:  activeNodes,
	}
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveComputation records one engine call.
func (m *Metrics) ObserveComputation(res dijkstra.PathResult, activeLen int) {
	outcome := "ok"
	if res.IsEmpty() {
		outcome = "empty"
	}
	m.Computations.WithLabelValues(outcome).Inc()
	m.ActiveNodes.Observe(float64(activeLen))
}
