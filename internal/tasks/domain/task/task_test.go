package task_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindfuldo/mindfuldo/internal/tasks/domain/task"
	"github.com/mindfuldo/mindfuldo/internal/tasks/domain/value_objects"
)

func TestNewTask(t *testing.T) {
	due := time.Now().Add(2 * time.Hour)

	tsk, err := task.NewTask("Write quarterly report", value_objects.PriorityHigh, &due)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, tsk.ID())
	assert.Equal(t, "Write quarterly report", tsk.Title())
	assert.Equal(t, value_objects.PriorityHigh, tsk.Priority())
	assert.False(t, tsk.IsCompleted())
	require.NotNil(t, tsk.DueDate())
	assert.True(t, tsk.DueDate().Equal(due))
	assert.Empty(t, tsk.SubTasks())
}

func TestNewTask_EmitsCreatedEvent(t *testing.T) {
	tsk, err := task.NewTask("Test Task", value_objects.PriorityMedium, nil)

	require.NoError(t, err)
	events := tsk.DomainEvents()
	require.Len(t, events, 1)

	createdEvent, ok := events[0].(task.TaskCreated)
	require.True(t, ok)
	assert.Equal(t, tsk.ID(), createdEvent.AggregateID())
	assert.Equal(t, task.RoutingKeyCreated, createdEvent.RoutingKey())
	assert.Equal(t, "Test Task", createdEvent.Title)
	assert.Equal(t, "Medium", createdEvent.Priority)
}

func TestNewTask_EmptyTitle(t *testing.T) {
	tests := []string{"", "   ", "\t\n"}
	for _, title := range tests {
		t.Run(title, func(t *testing.T) {
			_, err := task.NewTask(title, value_objects.PriorityMedium, nil)
			require.Error(t, err)
			assert.ErrorIs(t, err, task.ErrEmptyTitle)
		})
	}
}

func TestNewTask_TrimsTitle(t *testing.T) {
	tsk, err := task.NewTask("  Buy groceries  ", value_objects.PriorityLow, nil)

	require.NoError(t, err)
	assert.Equal(t, "Buy groceries", tsk.Title())
}

func TestNewTask_InvalidPriorityDefaultsToMedium(t *testing.T) {
	tsk, err := task.NewTask("Test Task", value_objects.Priority(99), nil)

	require.NoError(t, err)
	assert.Equal(t, value_objects.PriorityMedium, tsk.Priority())
}

func TestToggle(t *testing.T) {
	tsk, err := task.NewTask("Test Task", value_objects.PriorityMedium, nil)
	require.NoError(t, err)
	tsk.ClearDomainEvents()

	completed := tsk.Toggle()

	assert.True(t, completed)
	assert.True(t, tsk.IsCompleted())
	events := tsk.DomainEvents()
	require.Len(t, events, 1)
	_, ok := events[0].(task.TaskCompleted)
	assert.True(t, ok)
}

func TestToggle_Reopen(t *testing.T) {
	tsk, err := task.NewTask("Test Task", value_objects.PriorityMedium, nil)
	require.NoError(t, err)
	tsk.Toggle()
	tsk.ClearDomainEvents()

	completed := tsk.Toggle()

	assert.False(t, completed)
	assert.False(t, tsk.IsCompleted())
	events := tsk.DomainEvents()
	require.Len(t, events, 1)
	reopened, ok := events[0].(task.TaskReopened)
	require.True(t, ok)
	assert.Equal(t, task.RoutingKeyReopened, reopened.RoutingKey())
}

func TestSetPriority(t *testing.T) {
	tsk, err := task.NewTask("Test Task", value_objects.PriorityLow, nil)
	require.NoError(t, err)

	require.NoError(t, tsk.SetPriority(value_objects.PriorityHigh))
	assert.Equal(t, value_objects.PriorityHigh, tsk.Priority())

	err = tsk.SetPriority(value_objects.Priority(42))
	assert.ErrorIs(t, err, value_objects.ErrInvalidPriority)
	assert.Equal(t, value_objects.PriorityHigh, tsk.Priority())
}

func TestSetDueDate(t *testing.T) {
	tsk, err := task.NewTask("Test Task", value_objects.PriorityMedium, nil)
	require.NoError(t, err)
	assert.Nil(t, tsk.DueDate())

	due := time.Now().Add(30 * time.Minute)
	tsk.SetDueDate(&due)
	require.NotNil(t, tsk.DueDate())
	assert.True(t, tsk.DueDate().Equal(due))

	tsk.SetDueDate(nil)
	assert.Nil(t, tsk.DueDate())
}

func TestAddSubtasks(t *testing.T) {
	tsk, err := task.NewTask("Plan the offsite", value_objects.PriorityMedium, nil)
	require.NoError(t, err)

	tsk.AddSubtasks([]task.SubTask{
		task.NewSubTask("Book the venue"),
		task.NewSubTask("Send invites"),
	})

	subtasks := tsk.SubTasks()
	require.Len(t, subtasks, 2)
	assert.Equal(t, "Book the venue", subtasks[0].Title)
	assert.Equal(t, "Send invites", subtasks[1].Title)
	assert.NotEqual(t, subtasks[0].ID, subtasks[1].ID)
	assert.False(t, subtasks[0].Completed)
}

func TestAddSubtasks_AppendsToExisting(t *testing.T) {
	tsk, err := task.NewTask("Plan the offsite", value_objects.PriorityMedium, nil)
	require.NoError(t, err)
	tsk.AddSubtasks([]task.SubTask{task.NewSubTask("First")})

	tsk.AddSubtasks([]task.SubTask{task.NewSubTask("Second")})

	subtasks := tsk.SubTasks()
	require.Len(t, subtasks, 2)
	assert.Equal(t, "First", subtasks[0].Title)
	assert.Equal(t, "Second", subtasks[1].Title)
}

func TestToggleSubtask(t *testing.T) {
	tsk, err := task.NewTask("Plan the offsite", value_objects.PriorityMedium, nil)
	require.NoError(t, err)
	sub := task.NewSubTask("Book the venue")
	tsk.AddSubtasks([]task.SubTask{sub})

	require.NoError(t, tsk.ToggleSubtask(sub.ID))
	assert.True(t, tsk.SubTasks()[0].Completed)
	assert.False(t, tsk.IsCompleted())

	require.NoError(t, tsk.ToggleSubtask(sub.ID))
	assert.False(t, tsk.SubTasks()[0].Completed)
}

func TestToggleSubtask_NotFound(t *testing.T) {
	tsk, err := task.NewTask("Plan the offsite", value_objects.PriorityMedium, nil)
	require.NoError(t, err)

	err = tsk.ToggleSubtask(uuid.New())
	assert.ErrorIs(t, err, task.ErrSubtaskNotFound)
}

func TestSubTasks_ReturnsCopy(t *testing.T) {
	tsk, err := task.NewTask("Plan the offsite", value_objects.PriorityMedium, nil)
	require.NoError(t, err)
	tsk.AddSubtasks([]task.SubTask{task.NewSubTask("Book the venue")})

	subtasks := tsk.SubTasks()
	subtasks[0].Completed = true

	assert.False(t, tsk.SubTasks()[0].Completed)
}

func TestRehydrate(t *testing.T) {
	id := uuid.New()
	createdAt := time.Now().Add(-24 * time.Hour).UTC()
	due := time.Now().Add(time.Hour)
	subtasks := []task.SubTask{{ID: uuid.New(), Title: "Step one", Completed: true}}

	tsk := task.Rehydrate(id, createdAt, "Restored", true, &due, value_objects.PriorityHigh, subtasks)

	assert.Equal(t, id, tsk.ID())
	assert.Equal(t, createdAt, tsk.CreatedAt())
	assert.Equal(t, "Restored", tsk.Title())
	assert.True(t, tsk.IsCompleted())
	assert.Equal(t, value_objects.PriorityHigh, tsk.Priority())
	require.Len(t, tsk.SubTasks(), 1)
	assert.True(t, tsk.SubTasks()[0].Completed)
	assert.Empty(t, tsk.DomainEvents())
}
