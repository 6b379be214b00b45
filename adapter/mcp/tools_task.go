package mcp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/felixgeelhaar/mcp-go"

	"github.com/mindfuldo/mindfuldo/internal/tasks/application/commands"
	"github.com/mindfuldo/mindfuldo/internal/tasks/application/queries"
)

const dateLayout = "2006-01-02"

type taskAddInput struct {
	Title    string `json:"title" jsonschema:"required"`
	Priority string `json:"priority,omitempty"`
	DueDate  string `json:"due_date,omitempty"`
}

type taskListInput struct {
	ActiveOnly bool `json:"active_only,omitempty"`
}

type taskIDInput struct {
	TaskID string `json:"task_id" jsonschema:"required"`
}

type subtaskAddInput struct {
	TaskID string   `json:"task_id" jsonschema:"required"`
	Titles []string `json:"titles" jsonschema:"required"`
}

type subtaskToggleInput struct {
	TaskID    string `json:"task_id" jsonschema:"required"`
	SubtaskID string `json:"subtask_id" jsonschema:"required"`
}

func registerTaskTools(srv *mcp.Server, deps ToolDependencies) error {
	c := deps.Container

	srv.Tool("task.add").
		Description("Add a new task with optional priority (Low, Medium, High) and due date").
		Handler(func(ctx context.Context, input taskAddInput) (*commands.AddTaskResult, error) {
			if input.Title == "" {
				return nil, errors.New("title is required")
			}

			due, err := parseDueDate(input.DueDate)
			if err != nil {
				return nil, err
			}

			return c.AddTaskHandler.Handle(ctx, commands.AddTaskCommand{
				Title:    input.Title,
				Priority: input.Priority,
				DueDate:  due,
			})
		})

	srv.Tool("task.list").
		Description("List tasks, active first").
		Handler(func(ctx context.Context, input taskListInput) ([]queries.TaskDTO, error) {
			return c.ListTasksHandler.Handle(ctx, queries.ListTasksQuery{
				ActiveOnly: input.ActiveOnly,
			})
		})

	srv.Tool("task.get").
		Description("Fetch a single task with its subtasks").
		Handler(func(ctx context.Context, input taskIDInput) (*queries.TaskDTO, error) {
			taskID, err := parseUUID(input.TaskID)
			if err != nil {
				return nil, err
			}
			return c.GetTaskHandler.Handle(ctx, queries.GetTaskQuery{TaskID: taskID})
		})

	srv.Tool("task.toggle").
		Description("Toggle a task between open and completed").
		Handler(func(ctx context.Context, input taskIDInput) (map[string]any, error) {
			taskID, err := parseUUID(input.TaskID)
			if err != nil {
				return nil, err
			}

			result, err := c.ToggleTaskHandler.Handle(ctx, commands.ToggleTaskCommand{TaskID: taskID})
			if err != nil {
				return nil, err
			}
			if result == nil {
				return map[string]any{"task_id": taskID, "found": false}, nil
			}
			return map[string]any{
				"task_id":   result.TaskID,
				"found":     true,
				"completed": result.Completed,
			}, nil
		})

	srv.Tool("task.delete").
		Description("Delete a task").
		Handler(func(ctx context.Context, input taskIDInput) (map[string]any, error) {
			taskID, err := parseUUID(input.TaskID)
			if err != nil {
				return nil, err
			}

			if err := c.DeleteTaskHandler.Handle(ctx, commands.DeleteTaskCommand{TaskID: taskID}); err != nil {
				return nil, err
			}
			return map[string]any{"task_id": taskID, "deleted": true}, nil
		})

	srv.Tool("subtask.add").
		Description("Append subtasks to a task").
		Handler(func(ctx context.Context, input subtaskAddInput) (*commands.AddSubtasksResult, error) {
			taskID, err := parseUUID(input.TaskID)
			if err != nil {
				return nil, err
			}
			if len(input.Titles) == 0 {
				return nil, errors.New("titles are required")
			}

			return c.AddSubtasksHandler.Handle(ctx, commands.AddSubtasksCommand{
				TaskID: taskID,
				Titles: input.Titles,
			})
		})

	srv.Tool("subtask.toggle").
		Description("Toggle a subtask between open and completed").
		Handler(func(ctx context.Context, input subtaskToggleInput) (map[string]any, error) {
			taskID, err := parseUUID(input.TaskID)
			if err != nil {
				return nil, err
			}
			subtaskID, err := parseUUID(input.SubtaskID)
			if err != nil {
				return nil, err
			}

			if err := c.ToggleSubtaskHandler.Handle(ctx, commands.ToggleSubtaskCommand{
				TaskID:    taskID,
				SubtaskID: subtaskID,
			}); err != nil {
				return nil, err
			}
			return map[string]any{"task_id": taskID, "subtask_id": subtaskID, "toggled": true}, nil
		})

	return nil
}

// parseDueDate accepts RFC3339 timestamps or bare YYYY-MM-DD dates.
func parseDueDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return &parsed, nil
	}
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, fmt.Errorf("invalid due date format, use RFC3339 or YYYY-MM-DD: %w", err)
	}
	return &parsed, nil
}
