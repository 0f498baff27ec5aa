package basicstats

import (
	"context"
)

// Service is the service interface for basicstats.
// It enables middleware to be added to the service.
type Service interface {
	// Compute applies the statistic registered under name to the sample.
	// ok reports whether the statistic is defined for the sample; err is only
	// set when the statistic cannot be resolved or the context is done.
	Compute(ctx context.Context, name string, sample []float64) (value float64, ok bool, err error)
	// Summarize applies every configured statistic to the sample
	Summarize(ctx context.Context, sample []float64) (*Report, error)
	// Statistics returns the names of the configured statistics
	Statistics() []string
}

// Middleware describes a service middleware.
type Middleware func(Service) Service

// ApplyMiddleware applies middlewares to a service.
func ApplyMiddleware(svc Service, mw ...Middleware) Service {
	// Apply each middleware in the chain
	for _, m := range mw {
		svc = m(svc)
	}
	// Return the decorated service
	return svc
}
