package commands

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/mindfuldo/mindfuldo/internal/shared/infrastructure/eventbus"
	"github.com/mindfuldo/mindfuldo/internal/tasks/domain/task"
)

// ToggleTaskCommand flips the completion state of a task.
type ToggleTaskCommand struct {
	TaskID uuid.UUID
}

// ToggleTaskResult contains the task's state after the toggle.
type ToggleTaskResult struct {
	TaskID    uuid.UUID
	Completed bool
}

// ToggleTaskHandler handles the ToggleTaskCommand.
type ToggleTaskHandler struct {
	taskRepo  task.Repository
	publisher eventbus.Publisher
}

// NewToggleTaskHandler creates a new ToggleTaskHandler.
func NewToggleTaskHandler(taskRepo task.Repository, publisher eventbus.Publisher) *ToggleTaskHandler {
	return &ToggleTaskHandler{taskRepo: taskRepo, publisher: publisher}
}

// Handle executes the ToggleTaskCommand. Toggling an unknown task is a
// no-op and returns a nil result.
func (h *ToggleTaskHandler) Handle(ctx context.Context, cmd ToggleTaskCommand) (*ToggleTaskResult, error) {
	t, err := h.taskRepo.FindByID(ctx, cmd.TaskID)
	if err != nil {
		if errors.Is(err, task.ErrTaskNotFound) {
			return nil, nil
		}
		return nil, err
	}

	completed := t.Toggle()

	if err := h.taskRepo.Save(ctx, t); err != nil {
		return nil, err
	}

	if err := eventbus.PublishDomainEvents(ctx, h.publisher, t); err != nil {
		return nil, err
	}

	return &ToggleTaskResult{TaskID: t.ID(), Completed: completed}, nil
}
