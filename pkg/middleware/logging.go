// Package middleware provides various middleware implementations for the basicstats service.
// This package includes logging middleware that wraps the service to provide
// execution time logging and method call tracing for debugging and monitoring purposes,
// and OpenTelemetry metrics and tracing middlewares.
package middleware

import (
	"context"
	"time"

	"github.com/hyp3rd/basicstats"
)

// Logger describes a logging interface allowing to implement different external, or custom logger.
// zerolog's Logger and the standard library's log.Logger both satisfy it.
type Logger interface {
	Printf(format string, v ...any)
}

// LoggingMiddleware is a middleware that logs the time it takes to execute the next middleware.
// Must implement the basicstats.Service interface.
type LoggingMiddleware struct {
	next   basicstats.Service
	logger Logger
}

// NewLoggingMiddleware returns a new LoggingMiddleware.
func NewLoggingMiddleware(next basicstats.Service, logger Logger) basicstats.Service {
	return &LoggingMiddleware{next: next, logger: logger}
}

// Compute logs the time it takes to execute the next middleware.
func (mw LoggingMiddleware) Compute(ctx context.Context, name string, sample []float64) (float64, bool, error) {
	defer func(begin time.Time) {
		mw.logger.Printf("method Compute took: %s", time.Since(begin))
	}(time.Now())

	mw.logger.Printf("Compute method called with statistic: %s sample length: %d", name, len(sample))

	value, ok, err := mw.next.Compute(ctx, name, sample)
	if err != nil {
		mw.logger.Printf("Compute %s failed: %v", name, err)
	}

	return value, ok, err
}

// Summarize logs the time it takes to execute the next middleware.
func (mw LoggingMiddleware) Summarize(ctx context.Context, sample []float64) (*basicstats.Report, error) {
	defer func(begin time.Time) {
		mw.logger.Printf("method Summarize took: %s", time.Since(begin))
	}(time.Now())

	mw.logger.Printf("Summarize method invoked with sample length: %d digest: %s", len(sample), basicstats.Digest(sample))

	report, err := mw.next.Summarize(ctx, sample)
	if err != nil {
		mw.logger.Printf("Summarize failed: %v", err)
	}

	return report, err
}

// Statistics returns the configured statistics of the next middleware.
func (mw LoggingMiddleware) Statistics() []string {
	return mw.next.Statistics()
}
