package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics are the prometheus collectors of the HTTP API
type Metrics struct {
	// Requests counts handled requests
	Requests *prometheus.CounterVec
	// Latency observes request durations in seconds
	Latency *prometheus.HistogramVec
	// Comparisons counts successful comparisons by winning scenario
	Comparisons *prometheus.CounterVec
	// ComparisonErrors counts rejected or failed comparisons
	ComparisonErrors *prometheus.CounterVec
}

// NewMetrics registers the API collectors with reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "surplus_http_requests_total",
				Help: "HTTP requests handled, by route and status code",
			},
			[]string{"method", "route", "status"},
		),
		Latency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "surplus_http_request_duration_seconds",
				Help:    "HTTP request latency",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		Comparisons: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "surplus_comparisons_total",
				Help: "Completed scenario comparisons, by best scenario",
			},
			[]string{"best"},
		),
		ComparisonErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "surplus_comparison_errors_total",
				Help: "Comparisons that were rejected or failed",
			},
			[]string{"reason"},
		),
	}
}
