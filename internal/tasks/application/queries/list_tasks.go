package queries

import (
	"context"

	"github.com/mindfuldo/mindfuldo/internal/tasks/domain/task"
)

// ListTasksQuery contains the parameters for listing tasks.
type ListTasksQuery struct {
	// ActiveOnly restricts the result to incomplete tasks.
	ActiveOnly bool
}

// ListTasksHandler handles the ListTasksQuery.
type ListTasksHandler struct {
	taskRepo task.Repository
}

// NewListTasksHandler creates a new ListTasksHandler.
func NewListTasksHandler(taskRepo task.Repository) *ListTasksHandler {
	return &ListTasksHandler{taskRepo: taskRepo}
}

// Handle executes the ListTasksQuery. Incomplete tasks come first; within
// each group the stored order is preserved, so reopening a task restores its
// original position among the active ones.
func (h *ListTasksHandler) Handle(ctx context.Context, query ListTasksQuery) ([]TaskDTO, error) {
	all, err := h.taskRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	active := make([]TaskDTO, 0, len(all))
	completed := make([]TaskDTO, 0)
	for _, t := range all {
		if t.IsCompleted() {
			completed = append(completed, toDTO(t))
		} else {
			active = append(active, toDTO(t))
		}
	}

	if query.ActiveOnly {
		return active, nil
	}
	return append(active, completed...), nil
}
