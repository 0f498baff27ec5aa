package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd, err := newRootCmd()
	if err == nil {
		err = cmd.ExecuteContext(ctx)
	}

	if err != nil {
		stop()
		os.Exit(1)
	}
}
