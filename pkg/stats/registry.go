package stats

import (
	"slices"
	"sync"

	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/basicstats/internal/sentinel"
)

// Names of the statistics registered by default.
const (
	NameMean   = "mean"
	NameStdDev = "stddev"
	NameMedian = "median"
	NameL2     = "l2"
)

// Registry maps statistic names to their implementation.
// It is safe for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	statistics map[string]StatFn
}

// getDefaultStatistics returns the default set of statistics.
func getDefaultStatistics() map[string]StatFn {
	return map[string]StatFn{
		NameMean:   Mean,
		NameStdDev: StdDev,
		NameMedian: Median,
		NameL2:     L2,
	}
}

// NewRegistry creates a new registry with the default statistics pre-registered.
func NewRegistry() *Registry {
	registry := NewEmptyRegistry()
	for name, fn := range getDefaultStatistics() {
		registry.statistics[name] = fn
	}

	return registry
}

// NewEmptyRegistry creates a new registry without default statistics.
// This is useful for testing or when you want to register only specific statistics.
func NewEmptyRegistry() *Registry {
	return &Registry{
		statistics: make(map[string]StatFn),
	}
}

// Register registers a statistic under the given name, replacing any previous one.
func (r *Registry) Register(name string, fn StatFn) error {
	if name == "" {
		return ewrap.Wrap(sentinel.ErrParamCannotBeEmpty, "name")
	}

	if fn == nil {
		return ewrap.Wrap(sentinel.ErrNilStatistic, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.statistics[name] = fn

	return nil
}

// Get returns the statistic registered under name.
func (r *Registry) Get(name string) (StatFn, error) {
	if name == "" {
		return nil, ewrap.Wrap(sentinel.ErrParamCannotBeEmpty, "name")
	}

	r.mu.RLock()
	fn, ok := r.statistics[name]
	r.mu.RUnlock()

	if !ok {
		return nil, ewrap.Wrap(sentinel.ErrStatisticNotFound, name)
	}

	return fn, nil
}

// Names returns the registered statistic names in ascending order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.statistics))
	for name := range r.statistics {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// Get returns a statistic using a new registry instance with the default statistics.
func Get(name string) (StatFn, error) {
	return NewRegistry().Get(name)
}
