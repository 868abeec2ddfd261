// Package observability groups the logging, metrics and tracing packages
// used by the HTTP layer and the text use case.
//
// Subpackages:
//   - logging: slog construction and request-scoped loggers in context
//   - metrics: Prometheus collectors for HTTP traffic and text analyses
//   - tracing: OpenTelemetry provider setup, server spans and span helpers
//
// Example usage:
//
//	import (
//	    "text-api/internal/observability/logging"
//	    "text-api/internal/observability/metrics"
//	)
//
//	func main() {
//	    logger := logging.NewLogger()
//	    logger.Info("application started")
//
//	    metrics.RecordTextAnalysis(metrics.OperationStats, 42)
//	}
package observability
