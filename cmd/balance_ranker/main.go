package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"balance_ranker/internal/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		stop()
		logger.Fatal("Command failed", "error", err)
	}
}
