// Package metrics provides centralized Prometheus metrics for the application.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics track HTTP request patterns and performance
var (
	// HTTPRequestsTotal counts total HTTP requests by method, path, and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration measures HTTP request duration in seconds.
	// Text analysis is CPU-bound and fast, so the low buckets are dense.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestsInFlight tracks the current number of requests being served
	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of HTTP requests being served",
		},
	)

	// HTTPRequestSize measures HTTP request body size in bytes
	HTTPRequestSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_size_bytes",
			Help:    "HTTP request size in bytes",
			Buckets: prometheus.ExponentialBuckets(16, 4, 9),
		},
		[]string{"method", "path"},
	)

	// HTTPResponseSize measures HTTP response body size in bytes
	HTTPResponseSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_response_size_bytes",
			Help:    "HTTP response size in bytes",
			Buckets: prometheus.ExponentialBuckets(16, 4, 9),
		},
		[]string{"method", "path"},
	)

	// HTTPRateLimitedTotal counts requests rejected by the per-IP limiter
	HTTPRateLimitedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_rate_limited_total",
			Help: "Total number of requests rejected by rate limiting",
		},
		[]string{"path"},
	)
)

// Text analysis metrics
var (
	// TextAnalysesTotal counts completed analyses by operation
	TextAnalysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "text_analyses_total",
			Help: "Total number of text analyses performed",
		},
		[]string{"operation"}, // operation: process, stats, uppercase
	)

	// TextInputRunes measures the size of analyzed input in characters
	TextInputRunes = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "text_input_runes",
			Help:    "Length of analyzed text in Unicode characters",
			Buckets: prometheus.ExponentialBuckets(1, 4, 11), // up to ~1M characters
		},
		[]string{"operation"},
	)

	// TextValidationFailuresTotal counts rejected inputs by operation and reason
	TextValidationFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "text_validation_failures_total",
			Help: "Total number of text inputs rejected by validation",
		},
		[]string{"operation", "reason"},
	)
)

// RecordHTTPRequest records an HTTP request with its metadata
func RecordHTTPRequest(method, path, status string, duration time.Duration, requestSize, responseSize int64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())

	if requestSize > 0 {
		HTTPRequestSize.WithLabelValues(method, path).Observe(float64(requestSize))
	}
	HTTPResponseSize.WithLabelValues(method, path).Observe(float64(responseSize))
}
