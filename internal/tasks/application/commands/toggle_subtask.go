package commands

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/mindfuldo/mindfuldo/internal/tasks/domain/task"
)

// ToggleSubtaskCommand flips the completion state of a subtask. The parent
// task's completion state is untouched.
type ToggleSubtaskCommand struct {
	TaskID    uuid.UUID
	SubtaskID uuid.UUID
}

// ToggleSubtaskHandler handles the ToggleSubtaskCommand.
type ToggleSubtaskHandler struct {
	taskRepo task.Repository
}

// NewToggleSubtaskHandler creates a new ToggleSubtaskHandler.
func NewToggleSubtaskHandler(taskRepo task.Repository) *ToggleSubtaskHandler {
	return &ToggleSubtaskHandler{taskRepo: taskRepo}
}

// Handle executes the ToggleSubtaskCommand. An unknown task or subtask is a
// no-op.
func (h *ToggleSubtaskHandler) Handle(ctx context.Context, cmd ToggleSubtaskCommand) error {
	t, err := h.taskRepo.FindByID(ctx, cmd.TaskID)
	if err != nil {
		if errors.Is(err, task.ErrTaskNotFound) {
			return nil
		}
		return err
	}

	if err := t.ToggleSubtask(cmd.SubtaskID); err != nil {
		if errors.Is(err, task.ErrSubtaskNotFound) {
			return nil
		}
		return err
	}

	return h.taskRepo.Save(ctx, t)
}
