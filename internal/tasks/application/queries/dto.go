// Package queries contains the read-side handlers for the tasks context.
package queries

import (
	"time"

	"github.com/google/uuid"

	"github.com/mindfuldo/mindfuldo/internal/tasks/domain/task"
)

// TaskDTO is the read model for a task.
type TaskDTO struct {
	ID        uuid.UUID    `json:"id"`
	Title     string       `json:"title"`
	Completed bool         `json:"completed"`
	DueDate   *time.Time   `json:"dueDate"`
	Priority  string       `json:"priority"`
	Subtasks  []SubtaskDTO `json:"subtasks"`
	CreatedAt time.Time    `json:"createdAt"`
}

// SubtaskDTO is the read model for a subtask.
type SubtaskDTO struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
}

func toDTO(t *task.Task) TaskDTO {
	subtasks := make([]SubtaskDTO, 0, len(t.SubTasks()))
	for _, st := range t.SubTasks() {
		subtasks = append(subtasks, SubtaskDTO{
			ID:        st.ID,
			Title:     st.Title,
			Completed: st.Completed,
		})
	}

	return TaskDTO{
		ID:        t.ID(),
		Title:     t.Title(),
		Completed: t.IsCompleted(),
		DueDate:   t.DueDate(),
		Priority:  t.Priority().String(),
		Subtasks:  subtasks,
		CreatedAt: t.CreatedAt(),
	}
}
