// Package basicstats computes mean, population standard deviation, lower median
// and L2 norm over samples of 64-bit floats, and exposes them as a Service that
// can be decorated with middleware and served over HTTP.
package basicstats

import (
	"context"

	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/basicstats/internal/sentinel"
	"github.com/hyp3rd/basicstats/pkg/stats"
)

// Analyzer resolves statistics by name and applies them to samples.
// It holds no per-call state and is safe for concurrent use.
type Analyzer struct {
	registry   *stats.Registry // registry used to resolve statistic names
	statistics []string        // statistics computed by Summarize, in order
}

// New creates an Analyzer. By default it uses the default registry and
// summarizes every statistic it holds.
func New(options ...Option) (*Analyzer, error) {
	analyzer := &Analyzer{
		registry: stats.NewRegistry(),
	}

	ApplyOptions(analyzer, options...)

	if analyzer.registry == nil {
		return nil, sentinel.ErrNilRegistry
	}

	if len(analyzer.statistics) == 0 {
		analyzer.statistics = analyzer.registry.Names()
	}

	// fail early on names the registry can't resolve
	for _, name := range analyzer.statistics {
		_, err := analyzer.registry.Get(name)
		if err != nil {
			return nil, err
		}
	}

	return analyzer, nil
}

// Compute applies the statistic registered under name to the sample.
func (a *Analyzer) Compute(ctx context.Context, name string, sample []float64) (float64, bool, error) {
	err := ctx.Err()
	if err != nil {
		return 0, false, ewrap.Wrap(sentinel.ErrTimeoutOrCanceled, err.Error())
	}

	fn, err := a.registry.Get(name)
	if err != nil {
		return 0, false, err
	}

	value, ok := fn(sample)

	return value, ok, nil
}

// Summarize applies every configured statistic to the sample.
func (a *Analyzer) Summarize(ctx context.Context, sample []float64) (*Report, error) {
	report := &Report{
		Count:  len(sample),
		Digest: Digest(sample),
		Values: make(map[string]Value, len(a.statistics)),
	}

	for _, name := range a.statistics {
		value, ok, err := a.Compute(ctx, name, sample)
		if err != nil {
			return nil, ewrap.Wrapf(err, "summarize %s", name)
		}

		report.Values[name] = Value{Value: value, Defined: ok}
	}

	return report, nil
}

// Statistics returns the names of the statistics computed by Summarize.
func (a *Analyzer) Statistics() []string {
	return append([]string(nil), a.statistics...)
}
