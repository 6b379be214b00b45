// Package app wires the application together.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mindfuldo/mindfuldo/internal/assistant"
	"github.com/mindfuldo/mindfuldo/internal/assistant/gemini"
	notificationsApp "github.com/mindfuldo/mindfuldo/internal/notifications/application"
	"github.com/mindfuldo/mindfuldo/internal/shared/infrastructure/eventbus"
	statsApp "github.com/mindfuldo/mindfuldo/internal/stats/application"
	"github.com/mindfuldo/mindfuldo/internal/storage"
	"github.com/mindfuldo/mindfuldo/internal/storage/postgresstore"
	"github.com/mindfuldo/mindfuldo/internal/storage/redisstore"
	"github.com/mindfuldo/mindfuldo/internal/storage/sqlitestore"
	"github.com/mindfuldo/mindfuldo/internal/tasks/application/commands"
	"github.com/mindfuldo/mindfuldo/internal/tasks/application/queries"
	"github.com/mindfuldo/mindfuldo/internal/tasks/application/services"
	"github.com/mindfuldo/mindfuldo/internal/tasks/domain/task"
	"github.com/mindfuldo/mindfuldo/internal/tasks/infrastructure/persistence"
	"github.com/mindfuldo/mindfuldo/pkg/config"
)

// Container holds all application dependencies.
//
// Two wiring modes exist. Local mode (the default, SQLite store and no
// broker) dispatches events synchronously on an in-process bus, so a
// completed task is reflected in the stats before the command returns.
// Server mode (RABBITMQ_URL set) publishes to RabbitMQ and leaves
// consumption to the worker process.
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	Store storage.Store

	EventPublisher eventbus.Publisher
	// Bus is set in local mode only.
	Bus *eventbus.InProcessEventBus

	TaskRepo task.Repository

	AddTaskHandler       *commands.AddTaskHandler
	ToggleTaskHandler    *commands.ToggleTaskHandler
	DeleteTaskHandler    *commands.DeleteTaskHandler
	AddSubtasksHandler   *commands.AddSubtasksHandler
	ToggleSubtaskHandler *commands.ToggleSubtaskHandler

	ListTasksHandler *queries.ListTasksHandler
	GetTaskHandler   *queries.GetTaskHandler

	StatsAggregator *statsApp.Aggregator
	Preferences     *notificationsApp.Preferences
	Assistant       *services.Assistant
}

// NewContainer builds the dependency graph for the configured mode.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	if logger == nil {
		logger = slog.Default()
	}

	c := &Container{Config: cfg, Logger: logger}

	store, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	c.Store = store

	c.StatsAggregator = statsApp.NewAggregator(store, logger)
	c.Preferences = notificationsApp.NewPreferences(store, logger)

	if cfg.RabbitMQURL != "" {
		publisher, err := eventbus.NewRabbitMQPublisher(cfg.RabbitMQURL, logger)
		if err != nil {
			store.Close()
			return nil, fmt.Errorf("failed to connect event publisher: %w", err)
		}
		c.EventPublisher = publisher
	} else {
		bus := eventbus.NewInProcessEventBus(logger)
		bus.RegisterConsumer(statsApp.NewCompletionSubscriber(c.StatsAggregator))
		c.Bus = bus
		c.EventPublisher = bus
	}

	c.TaskRepo = persistence.NewStoreTaskRepository(ctx, store, logger)

	c.AddTaskHandler = commands.NewAddTaskHandler(c.TaskRepo, c.EventPublisher)
	c.ToggleTaskHandler = commands.NewToggleTaskHandler(c.TaskRepo, c.EventPublisher)
	c.DeleteTaskHandler = commands.NewDeleteTaskHandler(c.TaskRepo, c.EventPublisher)
	c.AddSubtasksHandler = commands.NewAddSubtasksHandler(c.TaskRepo)
	c.ToggleSubtaskHandler = commands.NewToggleSubtaskHandler(c.TaskRepo)

	c.ListTasksHandler = queries.NewListTasksHandler(c.TaskRepo)
	c.GetTaskHandler = queries.NewGetTaskHandler(c.TaskRepo)

	client := gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel)
	service := assistant.NewService(client, assistant.DefaultServiceConfig(), logger)
	c.Assistant = services.NewAssistant(service, c.TaskRepo, c.AddSubtasksHandler)

	logger.Info("container initialized",
		"store", cfg.StoreDriver,
		"broker", cfg.RabbitMQURL != "",
	)

	return c, nil
}

func openStore(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	switch cfg.StoreDriver {
	case "sqlite", "":
		return sqlitestore.Open(ctx, cfg.SQLitePath)
	case "postgres":
		return postgresstore.Open(ctx, cfg.DatabaseURL)
	case "redis":
		return redisstore.Open(ctx, cfg.RedisURL)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

// NewDueSoonWorker builds the reminder worker with the given delivery
// backend.
func (c *Container) NewDueSoonWorker(alerter notificationsApp.Alerter) *notificationsApp.DueSoonWorker {
	cfg := notificationsApp.DefaultDueSoonWorkerConfig()
	if c.Config.NotifyInterval > 0 {
		cfg.Interval = c.Config.NotifyInterval
	}
	return notificationsApp.NewDueSoonWorker(c.TaskRepo, c.Preferences, alerter, cfg, c.Logger)
}

// Close releases the container's resources.
func (c *Container) Close() {
	if c.EventPublisher != nil {
		if err := c.EventPublisher.Close(); err != nil {
			c.Logger.Warn("error closing event publisher", "error", err)
		}
	}
	if c.Store != nil {
		if err := c.Store.Close(); err != nil {
			c.Logger.Warn("error closing store", "error", err)
		}
	}
}
