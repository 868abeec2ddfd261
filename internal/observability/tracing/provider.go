package tracing

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Config controls tracer provider construction.
type Config struct {
	// SampleRatio is the fraction of root spans that are sampled (0..1).
	// Child spans follow their parent's decision.
	SampleRatio float64

	// Exporter receives finished spans. When nil, spans are still created so
	// that trace IDs can be correlated with logs, but nothing is exported.
	Exporter sdktrace.SpanExporter
}

// Init installs a global tracer provider and the W3C Trace Context propagator.
// The returned function flushes and shuts down the provider.
func Init(cfg Config) func(context.Context) error {
	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SampleRatio))),
	}
	if cfg.Exporter != nil {
		opts = append(opts, sdktrace.WithBatcher(cfg.Exporter))
	}

	tp := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp.Shutdown
}

// NewOTLPExporter builds an OTLP/HTTP span exporter for the collector at
// endpoint (for example "http://otel-collector:4318"). No connection is made
// until the first batch is sent.
func NewOTLPExporter(ctx context.Context, endpoint string) (sdktrace.SpanExporter, error) {
	exp, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(endpoint))
	if err != nil {
		return nil, fmt.Errorf("create otlp exporter: %w", err)
	}
	return exp, nil
}
