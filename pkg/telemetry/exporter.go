package telemetry

import (
	"context"
	"presell/pkg/logger"

	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

// LogExporter writes ended spans to the debug log. It is meant for local runs
// where no trace collector is available.
type LogExporter struct {
	ctx context.Context
}

// NewLogExporter returns a LogExporter logging through the logger stored in ctx.
func NewLogExporter(ctx context.Context) *LogExporter {
	return &LogExporter{ctx: ctx}
}

var _ sdktrace.SpanExporter = (*LogExporter)(nil)

// ExportSpans logs one entry per span.
func (e *LogExporter) ExportSpans(_ context.Context, spans []sdktrace.ReadOnlySpan) error {
	for _, span := range spans {
		fields := []zap.Field{
			zap.String("traceId", span.SpanContext().TraceID().String()),
			zap.String("spanId", span.SpanContext().SpanID().String()),
			zap.Duration("duration", span.EndTime().Sub(span.StartTime())),
			zap.String("status", span.Status().Code.String()),
		}
		if span.Parent().IsValid() {
			fields = append(fields, zap.String("parentSpanId", span.Parent().SpanID().String()))
		}
		if attrs := span.Attributes(); len(attrs) > 0 {
			fields = append(fields, zap.Any("attributes", attributeMap(attrs)))
		}

		logger.Debug(e.ctx, "span "+span.Name(), fields...)
	}

	return nil
}

// Shutdown is a no-op, entries are written synchronously.
func (e *LogExporter) Shutdown(context.Context) error { return nil }

func attributeMap(attrs []attribute.KeyValue) map[string]any {
	m := make(map[string]any, len(attrs))
	for _, kv := range attrs {
		m[string(kv.Key)] = kv.Value.AsInterface()
	}

	return m
}
