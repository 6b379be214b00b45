package persistence

import (
	"time"

	"github.com/google/uuid"

	"github.com/mindfuldo/mindfuldo/internal/tasks/domain/task"
	"github.com/mindfuldo/mindfuldo/internal/tasks/domain/value_objects"
)

// taskRecord is the stored JSON shape of a task.
type taskRecord struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Completed bool            `json:"completed"`
	DueDate   *string         `json:"dueDate"`
	Priority  string          `json:"priority"`
	Subtasks  []subtaskRecord `json:"subtasks"`
	CreatedAt int64           `json:"createdAt"`
}

type subtaskRecord struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

func toRecord(t *task.Task) taskRecord {
	var due *string
	if t.DueDate() != nil {
		s := t.DueDate().Format(time.RFC3339)
		due = &s
	}

	subtasks := make([]subtaskRecord, 0, len(t.SubTasks()))
	for _, st := range t.SubTasks() {
		subtasks = append(subtasks, subtaskRecord{
			ID:        st.ID.String(),
			Title:     st.Title,
			Completed: st.Completed,
		})
	}

	return taskRecord{
		ID:        t.ID().String(),
		Title:     t.Title(),
		Completed: t.IsCompleted(),
		DueDate:   due,
		Priority:  t.Priority().String(),
		Subtasks:  subtasks,
		CreatedAt: t.CreatedAt().UnixMilli(),
	}
}

func fromRecord(rec taskRecord) (*task.Task, error) {
	id, err := uuid.Parse(rec.ID)
	if err != nil {
		return nil, err
	}

	var due *time.Time
	if rec.DueDate != nil {
		parsed, err := time.Parse(time.RFC3339, *rec.DueDate)
		if err != nil {
			return nil, err
		}
		due = &parsed
	}

	// Unknown priorities map to Medium rather than failing the load.
	priority, _ := value_objects.ParsePriority(rec.Priority)

	subtasks := make([]task.SubTask, 0, len(rec.Subtasks))
	for _, sr := range rec.Subtasks {
		subID, err := uuid.Parse(sr.ID)
		if err != nil {
			return nil, err
		}
		subtasks = append(subtasks, task.SubTask{
			ID:        subID,
			Title:     sr.Title,
			Completed: sr.Completed,
		})
	}

	createdAt := time.UnixMilli(rec.CreatedAt).UTC()

	return task.Rehydrate(id, createdAt, rec.Title, rec.Completed, due, priority, subtasks), nil
}
