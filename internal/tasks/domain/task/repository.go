package task

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the persistence port for tasks.
type Repository interface {
	// Save persists a task. New tasks are placed at the head of the
	// collection so the most recent addition lists first.
	Save(ctx context.Context, t *Task) error

	// FindByID retrieves a task by ID. Returns ErrTaskNotFound when no
	// task has that ID.
	FindByID(ctx context.Context, id uuid.UUID) (*Task, error)

	// FindAll retrieves every task in stored order.
	FindAll(ctx context.Context) ([]*Task, error)

	// FindActive retrieves the incomplete tasks in stored order.
	FindActive(ctx context.Context) ([]*Task, error)

	// Delete removes a task. Returns ErrTaskNotFound when no task has
	// that ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
