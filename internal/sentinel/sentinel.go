// Package sentinel provides standardized error definitions for basicstats.
// This package centralizes the error values used across the basicstats components,
// ensuring consistent error handling and messaging throughout the application.
//
// The errors defined here cover:
// - Invalid parameters (empty names, nil registries or statistics)
// - Lookup failures (unknown statistics or serializers)
// - Sample acquisition failures (unparsable tokens, missing clients)
// - Runtime operation errors (timeouts, cancellations)
//
// The statistics themselves never return errors: an undefined statistic is
// reported through the presence flag, not through this package.
//
// All errors are created using the ewrap package to provide enhanced error
// wrapping and context capabilities.
package sentinel

import (
	"github.com/hyp3rd/ewrap"
)

var (
	// ErrParamCannotBeEmpty is returned when a parameter cannot be empty.
	ErrParamCannotBeEmpty = ewrap.New("param cannot be empty")

	// ErrStatisticNotFound is returned when a statistic is not registered under the requested name.
	ErrStatisticNotFound = ewrap.New("statistic not found")

	// ErrNilStatistic is returned when a nil statistic function is registered.
	ErrNilStatistic = ewrap.New("nil statistic")

	// ErrNilRegistry is returned when a nil registry is passed to the analyzer.
	ErrNilRegistry = ewrap.New("nil registry")

	// ErrSerializerNotFound is returned when a serializer is not found.
	ErrSerializerNotFound = ewrap.New("serializer not found")

	// ErrInvalidSample is returned when a sample cannot be parsed into 64-bit floats.
	ErrInvalidSample = ewrap.New("invalid sample")

	// ErrNilClient is returned when a nil client is passed to a sample store.
	ErrNilClient = ewrap.New("nil client")

	// ErrTimeoutOrCanceled is returned when a timeout or cancellation occurs.
	ErrTimeoutOrCanceled = ewrap.New("the operation timed out or was canceled")

	// ErrMgmtHTTPShutdownTimeout is returned when the management HTTP server fails to shutdown before context deadline.
	ErrMgmtHTTPShutdownTimeout = ewrap.New("management http shutdown timeout")
)
