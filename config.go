package basicstats

import (
	"github.com/hyp3rd/basicstats/pkg/stats"
)

// Option is a function type that can be used to configure the `Analyzer`.
type Option func(*Analyzer)

// ApplyOptions applies the given options to the given analyzer.
func ApplyOptions(analyzer *Analyzer, options ...Option) {
	for _, option := range options {
		option(analyzer)
	}
}

// WithRegistry sets the registry used to resolve statistic names.
// Without it the analyzer uses a registry holding mean, stddev, median and l2.
func WithRegistry(registry *stats.Registry) Option {
	return func(analyzer *Analyzer) {
		analyzer.registry = registry
	}
}

// WithStatistics restricts `Summarize` to the given statistics, in the given order.
// Every name must be registered; `New` fails otherwise.
func WithStatistics(names ...string) Option {
	return func(analyzer *Analyzer) {
		analyzer.statistics = append([]string(nil), names...)
	}
}
