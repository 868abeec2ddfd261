package metrics

// Operation labels for text analysis metrics.
const (
	OperationProcess   = "process"
	OperationStats     = "stats"
	OperationUppercase = "uppercase"
)

// RecordTextAnalysis records one completed analysis and the size of its input.
func RecordTextAnalysis(operation string, runes int) {
	TextAnalysesTotal.WithLabelValues(operation).Inc()
	TextInputRunes.WithLabelValues(operation).Observe(float64(runes))
}

// RecordValidationFailure records an input rejected before analysis.
// Reason should be a short stable token such as "empty" or "missing".
func RecordValidationFailure(operation, reason string) {
	TextValidationFailuresTotal.WithLabelValues(operation, reason).Inc()
}

// RecordRateLimited records a request rejected by the rate limiter.
func RecordRateLimited(path string) {
	HTTPRateLimitedTotal.WithLabelValues(path).Inc()
}
