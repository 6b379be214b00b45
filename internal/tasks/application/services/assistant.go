// Package services contains application services that orchestrate across
// handlers.
package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/mindfuldo/mindfuldo/internal/assistant"
	"github.com/mindfuldo/mindfuldo/internal/tasks/application/commands"
	"github.com/mindfuldo/mindfuldo/internal/tasks/domain/task"
)

// Recommendation pairs a plan entry with the task it refers to.
type Recommendation struct {
	TaskID   uuid.UUID
	Title    string
	Priority string
	DueDate  *time.Time
	Reason   string
}

// Assistant orchestrates model suggestions against the task collection.
type Assistant struct {
	service     *assistant.Service
	taskRepo    task.Repository
	addSubtasks *commands.AddSubtasksHandler
}

// NewAssistant creates a new Assistant service.
func NewAssistant(
	service *assistant.Service,
	taskRepo task.Repository,
	addSubtasks *commands.AddSubtasksHandler,
) *Assistant {
	return &Assistant{
		service:     service,
		taskRepo:    taskRepo,
		addSubtasks: addSubtasks,
	}
}

// BreakdownTask asks the model for steps and appends them to the task as
// subtasks. A model failure yields no subtasks; an unknown task is a no-op
// returning an empty batch.
func (a *Assistant) BreakdownTask(ctx context.Context, taskID uuid.UUID) ([]task.SubTask, error) {
	t, err := a.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, task.ErrTaskNotFound) {
			return []task.SubTask{}, nil
		}
		return nil, err
	}

	steps := a.service.BreakdownTask(ctx, t.Title())
	if len(steps) == 0 {
		return []task.SubTask{}, nil
	}

	result, err := a.addSubtasks.Handle(ctx, commands.AddSubtasksCommand{
		TaskID: taskID,
		Titles: steps,
	})
	if err != nil {
		return nil, err
	}
	if result == nil {
		return []task.SubTask{}, nil
	}
	return result.Subtasks, nil
}

// SuggestPriority asks the model for a priority. Falls back to Medium.
func (a *Assistant) SuggestPriority(ctx context.Context, title string, due *time.Time) string {
	return a.service.SuggestPriority(ctx, title, due)
}

// PlanDay asks the model for an execution order over the active tasks and
// resolves the answer back to known tasks. Entries referring to unknown
// tasks are dropped.
func (a *Assistant) PlanDay(ctx context.Context) ([]Recommendation, error) {
	active, err := a.taskRepo.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	if len(active) == 0 {
		return []Recommendation{}, nil
	}

	byID := make(map[string]*task.Task, len(active))
	summaries := make([]assistant.PlanTask, 0, len(active))
	for _, t := range active {
		id := t.ID().String()
		byID[id] = t

		var due *string
		if t.DueDate() != nil {
			s := t.DueDate().Format(time.RFC3339)
			due = &s
		}
		summaries = append(summaries, assistant.PlanTask{
			ID:       id,
			Title:    t.Title(),
			Due:      due,
			Priority: t.Priority().String(),
		})
	}

	plan := a.service.SmartPlan(ctx, summaries)

	recommendations := make([]Recommendation, 0, len(plan))
	for _, entry := range plan {
		t, ok := byID[entry.TaskID]
		if !ok {
			continue
		}
		recommendations = append(recommendations, Recommendation{
			TaskID:   t.ID(),
			Title:    t.Title(),
			Priority: t.Priority().String(),
			DueDate:  t.DueDate(),
			Reason:   entry.Reason,
		})
	}
	return recommendations, nil
}
