package commands

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/mindfuldo/mindfuldo/internal/shared/infrastructure/eventbus"
	"github.com/mindfuldo/mindfuldo/internal/tasks/domain/task"
)

// DeleteTaskCommand removes a task.
type DeleteTaskCommand struct {
	TaskID uuid.UUID
}

// DeleteTaskHandler handles the DeleteTaskCommand.
type DeleteTaskHandler struct {
	taskRepo  task.Repository
	publisher eventbus.Publisher
}

// NewDeleteTaskHandler creates a new DeleteTaskHandler.
func NewDeleteTaskHandler(taskRepo task.Repository, publisher eventbus.Publisher) *DeleteTaskHandler {
	return &DeleteTaskHandler{taskRepo: taskRepo, publisher: publisher}
}

// Handle executes the DeleteTaskCommand. Deleting an unknown task is a
// no-op.
func (h *DeleteTaskHandler) Handle(ctx context.Context, cmd DeleteTaskCommand) error {
	if err := h.taskRepo.Delete(ctx, cmd.TaskID); err != nil {
		if errors.Is(err, task.ErrTaskNotFound) {
			return nil
		}
		return err
	}

	event := task.NewTaskDeleted(cmd.TaskID)
	body, err := eventbus.Envelope(event)
	if err != nil {
		return err
	}
	return h.publisher.Publish(ctx, event.RoutingKey(), body)
}
