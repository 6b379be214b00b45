package task

import (
	"github.com/google/uuid"

	"github.com/mindfuldo/mindfuldo/internal/shared/domain"
)

const aggregateType = "task"

// Routing keys for task events.
const (
	RoutingKeyCreated   = "tasks.task.created"
	RoutingKeyCompleted = "tasks.task.completed"
	RoutingKeyReopened  = "tasks.task.reopened"
	RoutingKeyDeleted   = "tasks.task.deleted"
)

// TaskCreated is emitted when a new task is added.
type TaskCreated struct {
	domain.BaseEvent
	Title    string
	Priority string
}

func NewTaskCreated(taskID uuid.UUID, title, priority string) TaskCreated {
	return TaskCreated{
		BaseEvent: domain.NewBaseEvent(taskID, aggregateType, RoutingKeyCreated),
		Title:     title,
		Priority:  priority,
	}
}

// TaskCompleted is emitted when a task transitions from active to completed.
type TaskCompleted struct {
	domain.BaseEvent
}

func NewTaskCompleted(taskID uuid.UUID) TaskCompleted {
	return TaskCompleted{
		BaseEvent: domain.NewBaseEvent(taskID, aggregateType, RoutingKeyCompleted),
	}
}

// TaskReopened is emitted when a completed task is toggled back to active.
type TaskReopened struct {
	domain.BaseEvent
}

func NewTaskReopened(taskID uuid.UUID) TaskReopened {
	return TaskReopened{
		BaseEvent: domain.NewBaseEvent(taskID, aggregateType, RoutingKeyReopened),
	}
}

// TaskDeleted is emitted when a task is removed.
type TaskDeleted struct {
	domain.BaseEvent
}

func NewTaskDeleted(taskID uuid.UUID) TaskDeleted {
	return TaskDeleted{
		BaseEvent: domain.NewBaseEvent(taskID, aggregateType, RoutingKeyDeleted),
	}
}
