package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/hyp3rd/basicstats"
	"github.com/hyp3rd/basicstats/pkg/source/redis"
)

const timeout = 5 * time.Second

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	store, err := redis.New(
		redis.WithAddr("localhost:6379"),
		redis.WithDB(0),
	)
	if err != nil {
		panic(err)
	}

	defer store.Close()

	err = store.Save(ctx, "latency:samples", []float64{12.5, 9.75, 31, 14.25, 10})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)

		return
	}

	sample, err := store.Load(ctx, "latency:samples")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)

		return
	}

	analyzer, err := basicstats.New()
	if err != nil {
		panic(err)
	}

	report, err := analyzer.Summarize(ctx, sample)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)

		return
	}

	for name, value := range report.Values {
		fmt.Printf("%s: %v (defined: %v)\n", name, value.Value, value.Defined)
	}
}
