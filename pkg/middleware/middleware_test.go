package middleware

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/longbridgeapp/assert"
	"go.opentelemetry.io/otel/attribute"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"github.com/hyp3rd/basicstats"
	"github.com/hyp3rd/basicstats/internal/sentinel"
)

type recordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *recordingLogger) Printf(format string, v ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.lines = append(l.lines, fmt.Sprintf(format, v...))
}

func (l *recordingLogger) contains(substr string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, line := range l.lines {
		if strings.Contains(line, substr) {
			return true
		}
	}

	return false
}

func newAnalyzer(t *testing.T) basicstats.Service {
	t.Helper()

	analyzer, err := basicstats.New()
	assert.Nil(t, err)

	return analyzer
}

func TestLoggingMiddleware(t *testing.T) {
	logger := &recordingLogger{}
	svc := NewLoggingMiddleware(newAnalyzer(t), logger)
	ctx := context.Background()

	value, ok, err := svc.Compute(ctx, "l2", []float64{-3, 4})
	assert.Nil(t, err)
	assert.True(t, ok)
	assert.Equal(t, 5.0, value)
	assert.True(t, logger.contains("Compute method called with statistic: l2 sample length: 2"))
	assert.True(t, logger.contains("method Compute took"))

	_, _, err = svc.Compute(ctx, "kurtosis", nil)
	assert.True(t, errors.Is(err, sentinel.ErrStatisticNotFound))
	assert.True(t, logger.contains("Compute kurtosis failed"))

	report, err := svc.Summarize(ctx, []float64{1})
	assert.Nil(t, err)
	assert.Equal(t, 1, report.Count)
	assert.True(t, logger.contains("digest: "+basicstats.Digest([]float64{1})))

	assert.Equal(t, []string{"l2", "mean", "median", "stddev"}, svc.Statistics())
}

func TestOTelMiddlewares_PassThrough(t *testing.T) {
	meter := metricnoop.NewMeterProvider().Meter("basicstats/test")
	tracer := tracenoop.NewTracerProvider().Tracer("basicstats/test")

	svc := basicstats.ApplyMiddleware(newAnalyzer(t),
		func(next basicstats.Service) basicstats.Service {
			return NewOTelTracingMiddleware(next, tracer, WithCommonAttributes(
				attribute.String("component", "basicstats"),
			))
		},
		func(next basicstats.Service) basicstats.Service {
			mw, err := NewOTelMetricsMiddleware(next, meter)
			assert.Nil(t, err)

			return mw
		},
	)

	ctx := context.Background()

	value, ok, err := svc.Compute(ctx, "median", []float64{0, 0.5, -1, 1})
	assert.Nil(t, err)
	assert.True(t, ok)
	assert.Equal(t, 0.0, value)

	_, ok, err = svc.Compute(ctx, "stddev", nil)
	assert.Nil(t, err)
	assert.False(t, ok)

	_, _, err = svc.Compute(ctx, "kurtosis", nil)
	assert.True(t, errors.Is(err, sentinel.ErrStatisticNotFound))

	report, err := svc.Summarize(ctx, []float64{2, 4, 4, 4, 5, 5, 7, 9})
	assert.Nil(t, err)

	stddev, ok := report.Get("stddev")
	assert.True(t, ok)
	assert.Equal(t, 2.0, stddev)

	canceled, cancel := context.WithCancel(ctx)
	cancel()

	report, err = svc.Summarize(canceled, []float64{1})
	assert.True(t, errors.Is(err, sentinel.ErrTimeoutOrCanceled))
	assert.Nil(t, report)

	assert.Equal(t, 4, len(svc.Statistics()))
}
