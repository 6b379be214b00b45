package task

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mindfuldo/mindfuldo/internal/shared/domain"
	"github.com/mindfuldo/mindfuldo/internal/tasks/domain/value_objects"
)

var (
	ErrEmptyTitle      = errors.New("task title cannot be empty")
	ErrTaskNotFound    = errors.New("task not found")
	ErrSubtaskNotFound = errors.New("subtask not found")
)

// SubTask is a decomposition step belonging to exactly one Task. Subtasks are
// created in a batch when a task is broken down and are never deleted
// individually.
type SubTask struct {
	ID        uuid.UUID
	Title     string
	Completed bool
}

// NewSubTask creates a subtask with a fresh identifier.
func NewSubTask(title string) SubTask {
	return SubTask{
		ID:    uuid.New(),
		Title: strings.TrimSpace(title),
	}
}

// Task represents a user-visible unit of work with priority, optional due
// time, and completion state.
type Task struct {
	domain.BaseAggregateRoot
	title     string
	completed bool
	dueDate   *time.Time
	priority  value_objects.Priority
	subtasks  []SubTask
}

// NewTask creates a new task with the given title.
func NewTask(title string, priority value_objects.Priority, dueDate *time.Time) (*Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if !priority.IsValid() {
		priority = value_objects.PriorityMedium
	}

	t := &Task{
		BaseAggregateRoot: domain.NewBaseAggregateRoot(),
		title:             title,
		priority:          priority,
		dueDate:           dueDate,
		subtasks:          []SubTask{},
	}

	t.AddDomainEvent(NewTaskCreated(t.ID(), t.title, t.priority.String()))

	return t, nil
}

// Rehydrate recreates a task from persisted state. No domain events are
// emitted.
func Rehydrate(
	id uuid.UUID,
	createdAt time.Time,
	title string,
	completed bool,
	dueDate *time.Time,
	priority value_objects.Priority,
	subtasks []SubTask,
) *Task {
	if subtasks == nil {
		subtasks = []SubTask{}
	}
	return &Task{
		BaseAggregateRoot: domain.RehydrateBaseAggregateRoot(
			domain.RehydrateBaseEntity(id, createdAt, createdAt),
		),
		title:     title,
		completed: completed,
		dueDate:   dueDate,
		priority:  priority,
		subtasks:  subtasks,
	}
}

// Getters

func (t *Task) Title() string                    { return t.title }
func (t *Task) IsCompleted() bool                { return t.completed }
func (t *Task) DueDate() *time.Time              { return t.dueDate }
func (t *Task) Priority() value_objects.Priority { return t.priority }

// SubTasks returns a copy of the subtask sequence in insertion order.
func (t *Task) SubTasks() []SubTask {
	out := make([]SubTask, len(t.subtasks))
	copy(out, t.subtasks)
	return out
}

// Toggle flips the completion flag and returns the new state.
func (t *Task) Toggle() bool {
	t.completed = !t.completed
	t.Touch()

	if t.completed {
		t.AddDomainEvent(NewTaskCompleted(t.ID()))
	} else {
		t.AddDomainEvent(NewTaskReopened(t.ID()))
	}

	return t.completed
}

// SetPriority updates the task priority.
func (t *Task) SetPriority(priority value_objects.Priority) error {
	if !priority.IsValid() {
		return value_objects.ErrInvalidPriority
	}
	t.priority = priority
	t.Touch()
	return nil
}

// SetDueDate updates the due date.
func (t *Task) SetDueDate(dueDate *time.Time) {
	t.dueDate = dueDate
	t.Touch()
}

// AddSubtasks appends a batch of subtasks to the existing sequence.
func (t *Task) AddSubtasks(batch []SubTask) {
	if len(batch) == 0 {
		return
	}
	t.subtasks = append(t.subtasks, batch...)
	t.Touch()
}

// ToggleSubtask flips the completion flag of the matching subtask. The
// parent task's own completion flag is unaffected.
func (t *Task) ToggleSubtask(subtaskID uuid.UUID) error {
	for i := range t.subtasks {
		if t.subtasks[i].ID == subtaskID {
			t.subtasks[i].Completed = !t.subtasks[i].Completed
			t.Touch()
			return nil
		}
	}
	return ErrSubtaskNotFound
}
