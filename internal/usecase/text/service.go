package text

import (
	"context"

	"text-api/internal/domain/entity"
	"text-api/internal/observability/metrics"
	"text-api/internal/observability/tracing"
	textutil "text-api/internal/utils/text"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// ProcessResult is the outcome of a word count.
type ProcessResult struct {
	Text      string
	WordCount int
}

// StatsResult is the outcome of a statistics request.
type StatsResult struct {
	Text        string
	WordCount   int
	CharCount   int
	UniqueWords int
}

// UppercaseResult is the outcome of an uppercase conversion.
// Length is the character count of OriginalText.
type UppercaseResult struct {
	OriginalText  string
	UppercaseText string
	Length        int
}

// Service provides the text analysis use cases. The zero value is ready to use
// and safe for concurrent callers.
type Service struct{}

// NewService returns a Service.
func NewService() *Service {
	return &Service{}
}

// Process counts the words in the input. Empty input yields zero.
func (s *Service) Process(ctx context.Context, in entity.TextInput) ProcessResult {
	_, span := startSpan(ctx, "text.process", in)
	defer span.End()

	words := textutil.CountWords(in.Content)
	span.SetAttributes(attribute.Int("text.word_count", words))
	metrics.RecordTextAnalysis(metrics.OperationProcess, textutil.CountRunes(in.Content))

	return ProcessResult{Text: in.Content, WordCount: words}
}

// Stats computes word, character and unique word counts for the input.
func (s *Service) Stats(ctx context.Context, in entity.TextInput) StatsResult {
	_, span := startSpan(ctx, "text.stats", in)
	defer span.End()

	st := s.Analyze(in)
	span.SetAttributes(
		attribute.Int("text.word_count", st.WordCount),
		attribute.Int("text.unique_words", st.UniqueWordCount),
	)
	metrics.RecordTextAnalysis(metrics.OperationStats, st.CharCount)

	return StatsResult{
		Text:        in.Content,
		WordCount:   st.WordCount,
		CharCount:   st.CharCount,
		UniqueWords: st.UniqueWordCount,
	}
}

// Uppercase converts the input to uppercase. Input that is empty or only
// whitespace is rejected with a *entity.ValidationError wrapping
// entity.ErrEmptyInput.
func (s *Service) Uppercase(ctx context.Context, in entity.TextInput) (UppercaseResult, error) {
	_, span := startSpan(ctx, "text.uppercase", in)
	defer span.End()

	if err := entity.ValidateNonBlank("text", in.Content); err != nil {
		metrics.RecordValidationFailure(metrics.OperationUppercase, validationReason(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "validation failed")
		return UppercaseResult{}, err
	}

	runes := textutil.CountRunes(in.Content)
	metrics.RecordTextAnalysis(metrics.OperationUppercase, runes)

	return UppercaseResult{
		OriginalText:  in.Content,
		UppercaseText: textutil.ToUpper(in.Content),
		Length:        runes,
	}, nil
}

// Analyze returns all statistics for the input in one pass.
func (s *Service) Analyze(in entity.TextInput) entity.TextStats {
	st := textutil.Analyze(in.Content)
	return entity.TextStats{
		WordCount:       st.WordCount,
		CharCount:       st.CharCount,
		UniqueWordCount: st.UniqueWords,
		UppercaseForm:   st.Uppercase,
	}
}

func startSpan(ctx context.Context, name string, in entity.TextInput) (context.Context, trace.Span) {
	return tracing.StartSpan(ctx, name,
		trace.WithAttributes(
			attribute.Int("text.bytes", len(in.Content)),
			attribute.Int("text.runes", textutil.CountRunes(in.Content)),
		),
	)
}
