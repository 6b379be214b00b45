// Package commands contains the write-side handlers for the tasks context.
package commands

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mindfuldo/mindfuldo/internal/shared/infrastructure/eventbus"
	"github.com/mindfuldo/mindfuldo/internal/tasks/domain/task"
	"github.com/mindfuldo/mindfuldo/internal/tasks/domain/value_objects"
)

// AddTaskCommand contains the data needed to add a task.
type AddTaskCommand struct {
	Title    string
	Priority string
	DueDate  *time.Time
}

// AddTaskResult contains the result of adding a task.
type AddTaskResult struct {
	TaskID uuid.UUID
}

// AddTaskHandler handles the AddTaskCommand.
type AddTaskHandler struct {
	taskRepo  task.Repository
	publisher eventbus.Publisher
}

// NewAddTaskHandler creates a new AddTaskHandler.
func NewAddTaskHandler(taskRepo task.Repository, publisher eventbus.Publisher) *AddTaskHandler {
	return &AddTaskHandler{taskRepo: taskRepo, publisher: publisher}
}

// Handle executes the AddTaskCommand.
func (h *AddTaskHandler) Handle(ctx context.Context, cmd AddTaskCommand) (*AddTaskResult, error) {
	priority := value_objects.PriorityMedium
	if cmd.Priority != "" {
		parsed, err := value_objects.ParsePriority(cmd.Priority)
		if err != nil {
			return nil, err
		}
		priority = parsed
	}

	t, err := task.NewTask(cmd.Title, priority, cmd.DueDate)
	if err != nil {
		return nil, err
	}

	if err := h.taskRepo.Save(ctx, t); err != nil {
		return nil, err
	}

	if err := eventbus.PublishDomainEvents(ctx, h.publisher, t); err != nil {
		return nil, err
	}

	return &AddTaskResult{TaskID: t.ID()}, nil
}
