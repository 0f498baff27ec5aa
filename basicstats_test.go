package basicstats

import (
	"context"
	"errors"
	"testing"

	"github.com/longbridgeapp/assert"

	"github.com/hyp3rd/basicstats/internal/sentinel"
	"github.com/hyp3rd/basicstats/pkg/stats"
)

func TestNew_Defaults(t *testing.T) {
	analyzer, err := New()
	assert.Nil(t, err)
	assert.Equal(t, []string{"l2", "mean", "median", "stddev"}, analyzer.Statistics())
}

func TestNew_Options(t *testing.T) {
	_, err := New(WithRegistry(nil))
	assert.True(t, errors.Is(err, sentinel.ErrNilRegistry))

	_, err = New(WithStatistics(stats.NameMean, "kurtosis"))
	assert.True(t, errors.Is(err, sentinel.ErrStatisticNotFound))

	analyzer, err := New(WithStatistics(stats.NameMedian, stats.NameMean))
	assert.Nil(t, err)
	assert.Equal(t, []string{stats.NameMedian, stats.NameMean}, analyzer.Statistics())
}

func TestAnalyzer_Compute(t *testing.T) {
	analyzer, err := New()
	assert.Nil(t, err)

	ctx := context.Background()

	tests := []struct {
		name      string
		statistic string
		sample    []float64
		expected  float64
		defined   bool
	}{
		{name: "mean of empty", statistic: stats.NameMean, sample: nil, expected: 0, defined: true},
		{name: "stddev of empty", statistic: stats.NameStdDev, sample: nil, defined: false},
		{name: "median of empty", statistic: stats.NameMedian, sample: nil, defined: false},
		{name: "l2 of empty", statistic: stats.NameL2, sample: nil, expected: 0, defined: true},
		{name: "lower median", statistic: stats.NameMedian, sample: []float64{0, 0.5, -1, 1}, expected: 0, defined: true},
		{name: "l2 pair", statistic: stats.NameL2, sample: []float64{-3, 4}, expected: 5, defined: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			value, ok, err := analyzer.Compute(ctx, test.statistic, test.sample)
			assert.Nil(t, err)
			assert.Equal(t, test.defined, ok)
			assert.Equal(t, test.expected, value)
		})
	}
}

func TestAnalyzer_ComputeErrors(t *testing.T) {
	analyzer, err := New()
	assert.Nil(t, err)

	_, _, err = analyzer.Compute(context.Background(), "kurtosis", []float64{1})
	assert.True(t, errors.Is(err, sentinel.ErrStatisticNotFound))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err = analyzer.Compute(ctx, stats.NameMean, []float64{1})
	assert.True(t, errors.Is(err, sentinel.ErrTimeoutOrCanceled))

	_, err = analyzer.Summarize(ctx, []float64{1})
	assert.True(t, errors.Is(err, sentinel.ErrTimeoutOrCanceled))
}

func TestAnalyzer_Summarize(t *testing.T) {
	analyzer, err := New()
	assert.Nil(t, err)

	sample := []float64{-3, 4}

	report, err := analyzer.Summarize(context.Background(), sample)
	assert.Nil(t, err)
	assert.Equal(t, 2, report.Count)
	assert.Equal(t, Digest(sample), report.Digest)
	assert.Equal(t, 4, len(report.Values))

	mean, ok := report.Get(stats.NameMean)
	assert.True(t, ok)
	assert.Equal(t, 0.5, mean)

	l2, ok := report.Get(stats.NameL2)
	assert.True(t, ok)
	assert.Equal(t, 5.0, l2)

	empty, err := analyzer.Summarize(context.Background(), nil)
	assert.Nil(t, err)

	_, ok = empty.Get(stats.NameMedian)
	assert.False(t, ok)

	_, ok = empty.Get(stats.NameStdDev)
	assert.False(t, ok)

	_, ok = empty.Get("kurtosis")
	assert.False(t, ok)
}

func TestAnalyzer_CustomRegistry(t *testing.T) {
	registry := stats.NewEmptyRegistry()
	assert.Nil(t, registry.Register("max", func(sample []float64) (float64, bool) {
		if len(sample) == 0 {
			return 0, false
		}

		largest := sample[0]
		for _, v := range sample[1:] {
			largest = max(largest, v)
		}

		return largest, true
	}))

	analyzer, err := New(WithRegistry(registry))
	assert.Nil(t, err)
	assert.Equal(t, []string{"max"}, analyzer.Statistics())

	value, ok, err := analyzer.Compute(context.Background(), "max", []float64{1, 9, 3})
	assert.Nil(t, err)
	assert.True(t, ok)
	assert.Equal(t, 9.0, value)
}

func TestDigest(t *testing.T) {
	assert.Equal(t, Digest([]float64{1, 2}), Digest([]float64{1, 2}))
	assert.True(t, Digest([]float64{1, 2}) != Digest([]float64{2, 1}))
	assert.True(t, Digest(nil) != "")
}

func TestApplyMiddleware(t *testing.T) {
	analyzer, err := New()
	assert.Nil(t, err)

	var calls []string

	tag := func(name string) Middleware {
		return func(next Service) Service {
			calls = append(calls, name)

			return next
		}
	}

	svc := ApplyMiddleware(analyzer, tag("first"), tag("second"))
	assert.Equal(t, []string{"first", "second"}, calls)
	assert.Equal(t, analyzer.Statistics(), svc.Statistics())
}
