package mcp

import (
	"context"
	"time"

	"github.com/felixgeelhaar/mcp-go"
)

type breakdownInput struct {
	TaskID string `json:"task_id" jsonschema:"required"`
}

type suggestPriorityInput struct {
	Title   string `json:"title" jsonschema:"required"`
	DueDate string `json:"due_date,omitempty"`
}

type planInput struct{}

type planEntryOutput struct {
	TaskID   string `json:"task_id"`
	Title    string `json:"title"`
	Priority string `json:"priority"`
	DueDate  string `json:"due_date,omitempty"`
	Reason   string `json:"reason"`
}

func registerAssistantTools(srv *mcp.Server, deps ToolDependencies) error {
	c := deps.Container

	srv.Tool("assistant.breakdown").
		Description("Break a task down into smaller subtasks and attach them").
		Handler(func(ctx context.Context, input breakdownInput) (map[string]any, error) {
			taskID, err := parseUUID(input.TaskID)
			if err != nil {
				return nil, err
			}

			subtasks, err := c.Assistant.BreakdownTask(ctx, taskID)
			if err != nil {
				return nil, err
			}

			titles := make([]string, 0, len(subtasks))
			for _, st := range subtasks {
				titles = append(titles, st.Title)
			}
			return map[string]any{"task_id": taskID, "subtasks": titles}, nil
		})

	srv.Tool("assistant.priority").
		Description("Suggest a priority (Low, Medium, High) for a task title and optional due date").
		Handler(func(ctx context.Context, input suggestPriorityInput) (map[string]any, error) {
			due, err := parseDueDate(input.DueDate)
			if err != nil {
				return nil, err
			}

			priority := c.Assistant.SuggestPriority(ctx, input.Title, due)
			return map[string]any{"priority": priority}, nil
		})

	srv.Tool("assistant.plan").
		Description("Suggest an execution order for the active tasks").
		Handler(func(ctx context.Context, _ planInput) ([]planEntryOutput, error) {
			recommendations, err := c.Assistant.PlanDay(ctx)
			if err != nil {
				return nil, err
			}

			entries := make([]planEntryOutput, 0, len(recommendations))
			for _, rec := range recommendations {
				entry := planEntryOutput{
					TaskID:   rec.TaskID.String(),
					Title:    rec.Title,
					Priority: rec.Priority,
					Reason:   rec.Reason,
				}
				if rec.DueDate != nil {
					entry.DueDate = rec.DueDate.Format(time.RFC3339)
				}
				entries = append(entries, entry)
			}
			return entries, nil
		})

	return nil
}
