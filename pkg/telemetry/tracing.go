// Package telemetry installs the otel tracer provider and the W3C trace
// context propagator used across the API, the workers and published events.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Options configure tracing.
type Options struct {
	// ServiceName is reported as the service.name resource attribute.
	ServiceName string
	// SampleRatio is the share of root traces that are sampled. Child spans
	// follow their parent's decision.
	SampleRatio float64
	// Exporters receive ended spans in batches. Spans are still created and
	// propagated without any exporter.
	Exporters []sdktrace.SpanExporter
}

// NewTracerProvider builds a tracer provider from opts without touching the
// otel globals.
func NewTracerProvider(ctx context.Context, opts Options) (*sdktrace.TracerProvider, error) {
	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceName(opts.ServiceName)))
	if err != nil {
		return nil, fmt.Errorf("could not create otel resource: %w", err)
	}

	providerOpts := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(opts.SampleRatio))),
	}
	for _, exporter := range opts.Exporters {
		providerOpts = append(providerOpts, sdktrace.WithBatcher(exporter))
	}

	return sdktrace.NewTracerProvider(providerOpts...), nil
}

// Propagator is the text map propagator carried in job args and event attributes.
func Propagator() propagation.TextMapPropagator {
	return propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{})
}

// Setup creates the tracer provider and installs it, together with
// Propagator, as the otel globals. Callers must Shutdown the provider to
// flush pending spans.
func Setup(ctx context.Context, opts Options) (*sdktrace.TracerProvider, error) {
	tp, err := NewTracerProvider(ctx, opts)
	if err != nil {
		return nil, err
	}

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(Propagator())

	return tp, nil
}

// Inject returns the trace context of ctx as a string map, or nil when ctx
// carries none.
func Inject(ctx context.Context) map[string]string {
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)
	if len(carrier) == 0 {
		return nil
	}

	return carrier
}

// Extract returns ctx carrying the trace context stored in carrier.
func Extract(ctx context.Context, carrier map[string]string) context.Context {
	if len(carrier) == 0 {
		return ctx
	}

	return otel.GetTextMapPropagator().Extract(ctx, propagation.MapCarrier(carrier))
}
