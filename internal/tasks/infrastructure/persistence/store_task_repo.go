// Package persistence implements the task repository on top of the
// key-value store. The entire task collection lives under a single record
// and is rewritten on every mutation, so a crash never leaves a partial
// write behind.
package persistence

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/mindfuldo/mindfuldo/internal/storage"
	"github.com/mindfuldo/mindfuldo/internal/tasks/domain/task"
)

// StoreTaskRepository implements task.Repository over a storage.Store.
type StoreTaskRepository struct {
	mu      sync.RWMutex
	store   storage.Store
	logger  *slog.Logger
	records []taskRecord
}

// NewStoreTaskRepository creates a repository and loads the persisted
// collection. A missing or unreadable record starts the repository empty.
func NewStoreTaskRepository(ctx context.Context, store storage.Store, logger *slog.Logger) *StoreTaskRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &StoreTaskRepository{
		store:   store,
		logger:  logger,
		records: storage.LoadCollection[taskRecord](ctx, store, storage.TasksKey, logger),
	}
}

// Save persists a task. A task not yet in the collection is inserted at the
// head; an existing task is rewritten in place.
func (r *StoreTaskRepository) Save(ctx context.Context, t *task.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec := toRecord(t)
	for i := range r.records {
		if r.records[i].ID == rec.ID {
			r.records[i] = rec
			return r.flush(ctx)
		}
	}

	r.records = append([]taskRecord{rec}, r.records...)
	return r.flush(ctx)
}

// FindByID retrieves a task by its ID.
func (r *StoreTaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*task.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	want := id.String()
	for i := range r.records {
		if r.records[i].ID == want {
			return fromRecord(r.records[i])
		}
	}
	return nil, task.ErrTaskNotFound
}

// FindAll retrieves every task in stored order.
func (r *StoreTaskRepository) FindAll(ctx context.Context) ([]*task.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*task.Task, 0, len(r.records))
	for i := range r.records {
		t, err := fromRecord(r.records[i])
		if err != nil {
			r.logger.Warn("skipping unreadable task record",
				"task_id", r.records[i].ID,
				"error", err,
			)
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

// FindActive retrieves the incomplete tasks in stored order.
func (r *StoreTaskRepository) FindActive(ctx context.Context) ([]*task.Task, error) {
	all, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	active := make([]*task.Task, 0, len(all))
	for _, t := range all {
		if !t.IsCompleted() {
			active = append(active, t)
		}
	}
	return active, nil
}

// Delete removes a task from the collection.
func (r *StoreTaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	want := id.String()
	for i := range r.records {
		if r.records[i].ID == want {
			r.records = append(r.records[:i], r.records[i+1:]...)
			return r.flush(ctx)
		}
	}
	return task.ErrTaskNotFound
}

// flush rewrites the full collection. Callers must hold the write lock.
func (r *StoreTaskRepository) flush(ctx context.Context) error {
	return storage.SaveCollection(ctx, r.store, storage.TasksKey, r.records)
}
