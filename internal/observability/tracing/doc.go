// Package tracing provides OpenTelemetry tracing integration.
//
// Features:
//   - Global tracer provider setup with ratio-based sampling
//   - W3C Trace Context propagation for incoming requests
//   - HTTP server spans with X-Trace-Id response header
//   - Helper for use-case level child spans
//
// Example usage:
//
//	import "text-api/internal/observability/tracing"
//
//	func main() {
//	    shutdown := tracing.Init(tracing.Config{SampleRatio: 1})
//	    defer func() { _ = shutdown(context.Background()) }()
//	}
//
//	func analyze(ctx context.Context) {
//	    ctx, span := tracing.StartSpan(ctx, "text.stats")
//	    defer span.End()
//	    // ... analyze ...
//	}
package tracing
