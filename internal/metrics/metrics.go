package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pantry_chef_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)
	HTTPRequestDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pantry_chef_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// Recipe generation
	RecipeRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pantry_chef_recipe_requests_total",
			Help: "Recipe requests by outcome",
		},
		[]string{"outcome"}, // success or the error category
	)
	GenerationDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pantry_chef_generation_duration_seconds",
			Help:    "Latency of generation API calls",
			Buckets: prometheus.ExponentialBuckets(0.25, 2, 8), // 0.25s..32s
		},
		[]string{"result"}, // ok|upstream_error|transport_error
	)
	PanicRecoveries = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "pantry_chef_panic_recoveries_total",
			Help: "Total number of panics recovered in HTTP handlers",
		},
	)
)

func init() {
	prometheus.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDurationSeconds,
		RecipeRequests,
		GenerationDurationSeconds,
		PanicRecoveries,
	)
}

// Handler exposes the default registry
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveGeneration records the duration of one generation API call
func ObserveGeneration(result string, start time.Time) {
	GenerationDurationSeconds.WithLabelValues(result).Observe(time.Since(start).Seconds())
}
