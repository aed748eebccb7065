package telemetry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	ExporterNone   = "none"
	ExporterStdout = "stdout"
)

var ErrUnsupportedExporter = errors.New("unsupported trace exporter")

// Config holds tracing settings.
type Config struct {
	Exporter     string  `env:"TRACE_EXPORTER" envDefault:"none"`
	SamplerRatio float64 `env:"TRACE_SAMPLER_RATIO" envDefault:"1"`
}

// ShutdownFunc flushes and stops the tracer provider.
type ShutdownFunc func(ctx context.Context) error

// Option configures NewTracerProvider.
type Option func(*options)

type options struct {
	output io.Writer
	attrs  []attribute.KeyValue
}

// WithOutput sets where the stdout exporter writes. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.output = w
		}
	}
}

// WithAttributes adds resource attributes to every span.
func WithAttributes(attrs ...attribute.KeyValue) Option {
	return func(o *options) { o.attrs = append(o.attrs, attrs...) }
}

// NewTracerProvider builds a tracer provider for cfg and installs it, with
// W3C trace-context propagation, as the global provider. The "none" exporter
// installs a no-op provider.
func NewTracerProvider(ctx context.Context, cfg Config, service string, opts ...Option) (trace.TracerProvider, ShutdownFunc, error) {
	o := &options{output: os.Stdout}
	for _, opt := range opts {
		opt(o)
	}

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	switch strings.ToLower(strings.TrimSpace(cfg.Exporter)) {
	case "", ExporterNone:
		tp := noop.NewTracerProvider()
		otel.SetTracerProvider(tp)
		return tp, func(context.Context) error { return nil }, nil
	case ExporterStdout:
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnsupportedExporter, cfg.Exporter)
	}

	exporter, err := stdouttrace.New(stdouttrace.WithWriter(o.output))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create stdout trace exporter: %w", err)
	}

	res, err := resource.New(ctx, resource.WithAttributes(
		append([]attribute.KeyValue{attribute.String("service.name", service)}, o.attrs...)...,
	))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create trace resource: %w", err)
	}

	sampler := sdktrace.TraceIDRatioBased(cfg.SamplerRatio)
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sampler)),
	)
	otel.SetTracerProvider(tp)

	return tp, tp.Shutdown, nil
}
