package mcp

import (
	"context"

	"github.com/felixgeelhaar/mcp-go"

	"github.com/mindfuldo/mindfuldo/internal/stats/domain"
)

type statsInput struct{}

func registerStatsTools(srv *mcp.Server, deps ToolDependencies) error {
	c := deps.Container

	srv.Tool("stats.history").
		Description("Daily completion counts for the last seven active days").
		Handler(func(ctx context.Context, _ statsInput) ([]domain.DailyEntry, error) {
			return c.StatsAggregator.History(ctx), nil
		})

	srv.Tool("stats.today").
		Description("Number of tasks completed today").
		Handler(func(ctx context.Context, _ statsInput) (map[string]any, error) {
			return map[string]any{"completed": c.StatsAggregator.CompletedToday(ctx)}, nil
		})

	return nil
}
