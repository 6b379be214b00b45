package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/mindfuldo/mindfuldo/internal/app"
	"github.com/mindfuldo/mindfuldo/internal/notifications/infrastructure"
	"github.com/mindfuldo/mindfuldo/internal/shared/infrastructure/eventbus"
	statsApp "github.com/mindfuldo/mindfuldo/internal/stats/application"
	"github.com/mindfuldo/mindfuldo/pkg/config"
	"github.com/mindfuldo/mindfuldo/pkg/observability"
)

func main() {
	logger := observability.LoggerFromEnv()

	logger.Info("starting mindfuldo worker")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if cfg.RabbitMQURL == "" {
		logger.Error("RABBITMQ_URL is required for the worker")
		os.Exit(1)
	}

	container, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize container", "error", err)
		os.Exit(1)
	}
	defer container.Close()

	// Stats react to task completion events published by the CLI and MCP
	// processes.
	registry := eventbus.NewConsumerRegistry(logger)
	registry.Register(statsApp.NewCompletionSubscriber(container.StatsAggregator))

	consumer, err := eventbus.NewRabbitMQConsumer(eventbus.RabbitMQConsumerConfig{
		URL:    cfg.RabbitMQURL,
		Logger: logger,
	}, registry)
	if err != nil {
		logger.Error("failed to connect to RabbitMQ", "error", err)
		os.Exit(1)
	}
	defer consumer.Close()

	// Due-soon reminders go back onto the bus for delivery adapters to
	// pick up.
	dueSoon := container.NewDueSoonWorker(infrastructure.NewBusAlerter(container.EventPublisher, logger))
	go func() {
		if err := dueSoon.Run(ctx); err != nil {
			logger.Error("reminder worker stopped", "error", err)
		}
	}()
	defer dueSoon.Stop()

	logger.Info("worker consuming", "queue", eventbus.DefaultQueueName)
	if err := consumer.Start(ctx); err != nil && ctx.Err() == nil {
		logger.Error("consumer stopped", "error", err)
		os.Exit(1)
	}

	logger.Info("worker shut down")
}
