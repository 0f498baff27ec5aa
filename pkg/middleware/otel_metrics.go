package middleware

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/hyp3rd/basicstats"
	"github.com/hyp3rd/basicstats/internal/telemetry/attrs"
)

// OTelMetricsMiddleware emits OpenTelemetry metrics for service methods.
type OTelMetricsMiddleware struct {
	next  basicstats.Service
	meter metric.Meter

	// instruments
	calls     metric.Int64Counter
	durations metric.Float64Histogram
}

// NewOTelMetricsMiddleware constructs a metrics middleware using the provided meter.
func NewOTelMetricsMiddleware(next basicstats.Service, meter metric.Meter) (basicstats.Service, error) {
	calls, err := meter.Int64Counter("basicstats.calls")
	if err != nil {
		return nil, fmt.Errorf("create counter: %w", err)
	}

	durations, err := meter.Float64Histogram("basicstats.duration.ms")
	if err != nil {
		return nil, fmt.Errorf("create histogram: %w", err)
	}

	return &OTelMetricsMiddleware{next: next, meter: meter, calls: calls, durations: durations}, nil
}

// Compute implements Service.Compute with metrics.
func (mw *OTelMetricsMiddleware) Compute(ctx context.Context, name string, sample []float64) (float64, bool, error) {
	start := time.Now()
	value, ok, err := mw.next.Compute(ctx, name, sample)
	mw.rec(ctx, "Compute", start,
		attribute.String(attrs.AttrStatistic, name),
		attribute.Int(attrs.AttrSampleLength, len(sample)),
		attribute.Bool(attrs.AttrDefined, ok))

	return value, ok, err
}

// Summarize implements Service.Summarize with metrics.
func (mw *OTelMetricsMiddleware) Summarize(ctx context.Context, sample []float64) (*basicstats.Report, error) {
	start := time.Now()
	report, err := mw.next.Summarize(ctx, sample)

	n := 0
	if report != nil {
		n = len(report.Values)
	}

	mw.rec(ctx, "Summarize", start,
		attribute.Int(attrs.AttrSampleLength, len(sample)),
		attribute.Int(attrs.AttrStatisticsCount, n))

	return report, err
}

// Statistics returns the configured statistics.
func (mw *OTelMetricsMiddleware) Statistics() []string { return mw.next.Statistics() }

// rec records call count and duration with attributes.
func (mw *OTelMetricsMiddleware) rec(ctx context.Context, method string, start time.Time, attributes ...attribute.KeyValue) {
	base := []attribute.KeyValue{attribute.String(attrs.AttrMethod, method)}
	if len(attributes) > 0 {
		base = append(base, attributes...)
	}

	mw.calls.Add(ctx, 1, metric.WithAttributes(base...))
	mw.durations.Record(ctx, float64(time.Since(start).Microseconds())/1e3, metric.WithAttributes(base...))
}
