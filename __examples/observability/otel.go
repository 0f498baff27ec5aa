package main

import (
	"context"
	"fmt"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric/noop"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"github.com/hyp3rd/basicstats"
	"github.com/hyp3rd/basicstats/pkg/middleware"
)

// This example shows how to wrap the analyzer with OpenTelemetry middleware.
func main() {
	analyzer, err := basicstats.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}

	// Build a service from the analyzer to apply middleware.
	svc := basicstats.Service(analyzer)

	// Use noop providers for a minimal example. Replace with real SDK providers in production.
	meter := noop.NewMeterProvider().Meter("basicstats/examples")
	tracer := tracenoop.NewTracerProvider().Tracer("basicstats/examples")

	// Apply OTel tracing and metrics middleware.
	svc = basicstats.ApplyMiddleware(svc,
		func(next basicstats.Service) basicstats.Service {
			return middleware.NewOTelTracingMiddleware(next, tracer, middleware.WithCommonAttributes(
				attribute.String("component", "basicstats"),
			))
		},
		func(next basicstats.Service) basicstats.Service {
			mw, _ := middleware.NewOTelMetricsMiddleware(next, meter)
			return mw
		},
	)

	if v, ok, err := svc.Compute(context.Background(), "stddev", []float64{2, 4, 4, 4, 5, 5, 7, 9}); err == nil && ok {
		fmt.Println("stddev:", v)
	}
}
