package commands

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/mindfuldo/mindfuldo/internal/tasks/domain/task"
)

// AddSubtasksCommand appends a batch of subtasks to a task.
type AddSubtasksCommand struct {
	TaskID uuid.UUID
	Titles []string
}

// AddSubtasksResult lists the subtasks that were added.
type AddSubtasksResult struct {
	Subtasks []task.SubTask
}

// AddSubtasksHandler handles the AddSubtasksCommand.
type AddSubtasksHandler struct {
	taskRepo task.Repository
}

// NewAddSubtasksHandler creates a new AddSubtasksHandler.
func NewAddSubtasksHandler(taskRepo task.Repository) *AddSubtasksHandler {
	return &AddSubtasksHandler{taskRepo: taskRepo}
}

// Handle executes the AddSubtasksCommand. An unknown task is a no-op and
// returns a nil result; empty titles are skipped.
func (h *AddSubtasksHandler) Handle(ctx context.Context, cmd AddSubtasksCommand) (*AddSubtasksResult, error) {
	t, err := h.taskRepo.FindByID(ctx, cmd.TaskID)
	if err != nil {
		if errors.Is(err, task.ErrTaskNotFound) {
			return nil, nil
		}
		return nil, err
	}

	batch := make([]task.SubTask, 0, len(cmd.Titles))
	for _, title := range cmd.Titles {
		st := task.NewSubTask(title)
		if st.Title == "" {
			continue
		}
		batch = append(batch, st)
	}

	t.AddSubtasks(batch)

	if err := h.taskRepo.Save(ctx, t); err != nil {
		return nil, err
	}

	return &AddSubtasksResult{Subtasks: batch}, nil
}
