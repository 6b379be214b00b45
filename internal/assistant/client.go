// Package assistant provides AI-assisted task breakdown, priority
// suggestion, and day planning.
package assistant

import (
	"context"
	"time"
)

// PlanTask is the task summary sent to the model when planning.
type PlanTask struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Due      *string `json:"due"`
	Priority string  `json:"priority"`
}

// PlanEntry is one recommendation in the suggested execution order.
type PlanEntry struct {
	TaskID string `json:"taskId"`
	Reason string `json:"reason"`
}

// Client generates task suggestions from a language model.
type Client interface {
	// BreakdownTask suggests 3-5 concise steps for the given task.
	BreakdownTask(ctx context.Context, title string) ([]string, error)

	// SuggestPriority suggests Low, Medium, or High for the given task.
	SuggestPriority(ctx context.Context, title string, due *time.Time) (string, error)

	// SmartPlan suggests an execution order for the given tasks.
	SmartPlan(ctx context.Context, tasks []PlanTask) ([]PlanEntry, error)
}
