package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/hyp3rd/basicstats"
	"github.com/hyp3rd/basicstats/pkg/middleware"
	"github.com/hyp3rd/basicstats/pkg/stats"
)

func main() {
	var svc basicstats.Service

	analyzer, err := basicstats.New(basicstats.WithStatistics(stats.NameMean, stats.NameMedian))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)

		return
	}

	svc = analyzer

	// any Printf logger works, e.g. zerolog or the standard library's
	logger := log.Default()

	// apply middleware in the same order as you want to execute them
	svc = basicstats.ApplyMiddleware(svc,
		func(next basicstats.Service) basicstats.Service {
			return middleware.NewLoggingMiddleware(next, logger)
		},
	)

	ctx := context.Background()

	report, err := svc.Summarize(ctx, []float64{0, 0.5, -1, 1})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)

		return
	}

	for _, name := range svc.Statistics() {
		value, ok := report.Get(name)
		if !ok {
			fmt.Fprintln(os.Stdout, name, "undefined")

			continue
		}

		fmt.Fprintln(os.Stdout, name, value)
	}

	// statistics are plain functions too, and can be looked up by name
	l2, err := stats.Get(stats.NameL2)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)

		return
	}

	norm, _ := l2([]float64{-3, 4})
	fmt.Fprintln(os.Stdout, "l2", norm)
}
