package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/mindfuldo/mindfuldo/adapter/cli"
	"github.com/mindfuldo/mindfuldo/internal/app"
	"github.com/mindfuldo/mindfuldo/pkg/config"
	"github.com/mindfuldo/mindfuldo/pkg/observability"
)

func main() {
	logger := observability.LoggerFromEnv()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		cancel()
	}()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	cli.SetLogger(logger)

	container, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize container", "error", err)
		os.Exit(1)
	}
	defer container.Close()

	cli.SetContainer(container)

	cli.ExecuteContext(ctx)
}
