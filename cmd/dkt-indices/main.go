// Package main is the entry point of the dkt-indices command.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/dkt-index-engine/internal/cli"
)

func main() {
	// Cancel in-flight analyses on shutdown signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
