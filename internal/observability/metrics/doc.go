// Package metrics provides Prometheus metrics registry and recording utilities.
//
// This package centralizes all application metrics including:
//   - HTTP request metrics (duration, count, size, in-flight)
//   - Text analysis metrics (analyses, input size, validation failures)
//   - Rate limiting rejections
//
// All metrics are automatically registered with the Prometheus default registry
// and exposed via the /metrics endpoint.
//
// Example usage:
//
//	import "text-api/internal/observability/metrics"
//
//	func stats(content string) {
//	    // ... analyze ...
//	    metrics.RecordTextAnalysis(metrics.OperationStats, text.CountRunes(content))
//	}
package metrics
