package middleware

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/hyp3rd/basicstats"
	"github.com/hyp3rd/basicstats/internal/telemetry/attrs"
)

// OTelTracingMiddleware wraps basicstats.Service methods with OpenTelemetry spans.
type OTelTracingMiddleware struct {
	next   basicstats.Service
	tracer trace.Tracer
	// static attributes applied to all spans
	commonAttrs []attribute.KeyValue
}

// OTelTracingOption allows configuring the tracing middleware.
type OTelTracingOption func(*OTelTracingMiddleware)

// WithCommonAttributes sets attributes applied to all spans.
func WithCommonAttributes(attributes ...attribute.KeyValue) OTelTracingOption {
	return func(m *OTelTracingMiddleware) { m.commonAttrs = append(m.commonAttrs, attributes...) }
}

// NewOTelTracingMiddleware creates a tracing middleware.
func NewOTelTracingMiddleware(next basicstats.Service, tracer trace.Tracer, opts ...OTelTracingOption) basicstats.Service {
	mw := &OTelTracingMiddleware{next: next, tracer: tracer}
	for _, o := range opts {
		o(mw)
	}

	return mw
}

// Compute implements Service.Compute with tracing.
func (mw OTelTracingMiddleware) Compute(ctx context.Context, name string, sample []float64) (float64, bool, error) {
	ctx, span := mw.startSpan(ctx, "basicstats.Compute",
		attribute.String(attrs.AttrStatistic, name),
		attribute.Int(attrs.AttrSampleLength, len(sample)),
		attribute.String(attrs.AttrSampleDigest, basicstats.Digest(sample)))
	defer span.End()

	value, ok, err := mw.next.Compute(ctx, name, sample)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return value, ok, err
	}

	span.SetAttributes(attribute.Bool(attrs.AttrDefined, ok))

	return value, ok, nil
}

// Summarize implements Service.Summarize with tracing.
func (mw OTelTracingMiddleware) Summarize(ctx context.Context, sample []float64) (*basicstats.Report, error) {
	ctx, span := mw.startSpan(ctx, "basicstats.Summarize",
		attribute.Int(attrs.AttrSampleLength, len(sample)),
		attribute.String(attrs.AttrSampleDigest, basicstats.Digest(sample)))
	defer span.End()

	report, err := mw.next.Summarize(ctx, sample)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	if report != nil {
		span.SetAttributes(attribute.Int(attrs.AttrStatisticsCount, len(report.Values)))
	}

	return report, err
}

// Statistics returns the configured statistics.
func (mw OTelTracingMiddleware) Statistics() []string { return mw.next.Statistics() }

// startSpan starts a span with common and provided attributes.
func (mw OTelTracingMiddleware) startSpan(ctx context.Context, name string, attributes ...attribute.KeyValue) (context.Context, trace.Span) {
	ctx, span := mw.tracer.Start(ctx, name, trace.WithSpanKind(trace.SpanKindInternal))
	if len(mw.commonAttrs) > 0 {
		span.SetAttributes(mw.commonAttrs...)
	}

	if len(attributes) > 0 {
		span.SetAttributes(attributes...)
	}

	return ctx, span
}
