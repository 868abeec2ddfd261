package text_test

import (
	"context"
	"errors"
	"testing"

	"text-api/internal/domain/entity"
	"text-api/internal/observability/metrics"
	textUC "text-api/internal/usecase/text"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

/* ───────── helpers ───────── */

func installRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(prev)
		_ = tp.Shutdown(context.Background())
	})
	return sr
}

func attrValue(attrs []attribute.KeyValue, key string) (attribute.Value, bool) {
	for _, kv := range attrs {
		if string(kv.Key) == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

/* ───────── Process ───────── */

func TestService_Process(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  textUC.ProcessResult
	}{
		{name: "runs of spaces", input: "dowolny   tekst", want: textUC.ProcessResult{Text: "dowolny   tekst", WordCount: 2}},
		{name: "empty", input: "", want: textUC.ProcessResult{Text: "", WordCount: 0}},
		{name: "whitespace only", input: " \n\t ", want: textUC.ProcessResult{Text: " \n\t ", WordCount: 0}},
		{name: "punctuation", input: "Hello world!", want: textUC.ProcessResult{Text: "Hello world!", WordCount: 2}},
	}

	svc := textUC.NewService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.Process(context.Background(), entity.NewTextInput(tt.input))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Process() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestService_Process_Span(t *testing.T) {
	sr := installRecorder(t)

	textUC.NewService().Process(context.Background(), entity.NewTextInput("zażółć gęślą"))

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "text.process", spans[0].Name())

	runes, ok := attrValue(spans[0].Attributes(), "text.runes")
	require.True(t, ok)
	assert.Equal(t, int64(12), runes.AsInt64())

	words, ok := attrValue(spans[0].Attributes(), "text.word_count")
	require.True(t, ok)
	assert.Equal(t, int64(2), words.AsInt64())
}

/* ───────── Stats ───────── */

func TestService_Stats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  textUC.StatsResult
	}{
		{
			name:  "distinct words",
			input: "Hello world!",
			want:  textUC.StatsResult{Text: "Hello world!", WordCount: 2, CharCount: 12, UniqueWords: 2},
		},
		{
			name:  "case and punctuation variants",
			input: "Repeat, repeat; REPEAT.",
			want:  textUC.StatsResult{Text: "Repeat, repeat; REPEAT.", WordCount: 3, CharCount: 23, UniqueWords: 1},
		},
		{
			name:  "empty",
			input: "",
			want:  textUC.StatsResult{},
		},
		{
			name:  "multibyte characters counted once",
			input: "こんにちは 世界",
			want:  textUC.StatsResult{Text: "こんにちは 世界", WordCount: 2, CharCount: 8, UniqueWords: 2},
		},
	}

	svc := textUC.NewService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.Stats(context.Background(), entity.NewTextInput(tt.input))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Stats() mismatch (-want +got):\n%s", diff)
			}
			assert.LessOrEqual(t, got.UniqueWords, got.WordCount)
		})
	}
}

func TestService_Stats_RecordsMetrics(t *testing.T) {
	before := testutil.ToFloat64(metrics.TextAnalysesTotal.WithLabelValues(metrics.OperationStats))

	textUC.NewService().Stats(context.Background(), entity.NewTextInput("Hello world!"))

	after := testutil.ToFloat64(metrics.TextAnalysesTotal.WithLabelValues(metrics.OperationStats))
	assert.Equal(t, before+1, after)
}

func TestService_Analyze(t *testing.T) {
	got := textUC.NewService().Analyze(entity.NewTextInput("Repeat, repeat; REPEAT."))
	want := entity.TextStats{
		WordCount:       3,
		CharCount:       23,
		UniqueWordCount: 1,
		UppercaseForm:   "REPEAT, REPEAT; REPEAT.",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Analyze() mismatch (-want +got):\n%s", diff)
	}
}

/* ───────── Uppercase ───────── */

func TestService_Uppercase(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    textUC.UppercaseResult
		wantErr bool
	}{
		{
			name:  "mixed case",
			input: "Dowolny Tekst",
			want:  textUC.UppercaseResult{OriginalText: "Dowolny Tekst", UppercaseText: "DOWOLNY TEKST", Length: 13},
		},
		{
			name:  "length is measured on the original text",
			input: "straße",
			want:  textUC.UppercaseResult{OriginalText: "straße", UppercaseText: "STRASSE", Length: 6},
		},
		{
			name:  "surrounding whitespace preserved",
			input: "  hi  ",
			want:  textUC.UppercaseResult{OriginalText: "  hi  ", UppercaseText: "  HI  ", Length: 6},
		},
		{name: "empty", input: "", wantErr: true},
		{name: "whitespace only", input: " \t\n", wantErr: true},
	}

	svc := textUC.NewService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Uppercase(context.Background(), entity.NewTextInput(tt.input))
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, entity.ErrEmptyInput))
				assert.True(t, entity.IsValidationError(err))
				assert.Equal(t, textUC.UppercaseResult{}, got)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Uppercase() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestService_Uppercase_ValidationFailureObserved(t *testing.T) {
	sr := installRecorder(t)
	counter := metrics.TextValidationFailuresTotal.WithLabelValues(metrics.OperationUppercase, "empty")
	before := testutil.ToFloat64(counter)

	_, err := textUC.NewService().Uppercase(context.Background(), entity.NewTextInput("   "))
	require.Error(t, err)

	assert.Equal(t, before+1, testutil.ToFloat64(counter))

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "text.uppercase", spans[0].Name())
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	require.NotEmpty(t, spans[0].Events(), "error should be recorded as a span event")
}

func TestService_ChildOfIncomingSpan(t *testing.T) {
	sr := installRecorder(t)

	ctx, parent := otel.Tracer("test").Start(context.Background(), "POST /stats")
	textUC.NewService().Stats(ctx, entity.NewTextInput("a b"))
	parent.End()

	spans := sr.Ended()
	require.Len(t, spans, 2)
	child := spans[0]
	assert.Equal(t, "text.stats", child.Name())
	assert.Equal(t, parent.SpanContext().SpanID(), child.Parent().SpanID())
}
