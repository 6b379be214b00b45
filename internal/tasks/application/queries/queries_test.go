package queries_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindfuldo/mindfuldo/internal/storage"
	"github.com/mindfuldo/mindfuldo/internal/tasks/application/queries"
	"github.com/mindfuldo/mindfuldo/internal/tasks/domain/task"
	"github.com/mindfuldo/mindfuldo/internal/tasks/domain/value_objects"
	"github.com/mindfuldo/mindfuldo/internal/tasks/infrastructure/persistence"
)

func seedTask(t *testing.T, repo task.Repository, title string) *task.Task {
	t.Helper()
	tsk, err := task.NewTask(title, value_objects.PriorityMedium, nil)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), tsk))
	return tsk
}

func TestGetTaskHandler(t *testing.T) {
	repo := persistence.NewStoreTaskRepository(context.Background(), storage.NewMemoryStore(), nil)
	tsk := seedTask(t, repo, "Find me")
	handler := queries.NewGetTaskHandler(repo)

	dto, err := handler.Handle(context.Background(), queries.GetTaskQuery{TaskID: tsk.ID()})

	require.NoError(t, err)
	assert.Equal(t, tsk.ID(), dto.ID)
	assert.Equal(t, "Find me", dto.Title)
	assert.Equal(t, "Medium", dto.Priority)
	assert.Empty(t, dto.Subtasks)
}

func TestGetTaskHandler_NotFound(t *testing.T) {
	repo := persistence.NewStoreTaskRepository(context.Background(), storage.NewMemoryStore(), nil)
	handler := queries.NewGetTaskHandler(repo)

	_, err := handler.Handle(context.Background(), queries.GetTaskQuery{TaskID: uuid.New()})

	assert.ErrorIs(t, err, task.ErrTaskNotFound)
}

func TestListTasksHandler_ActiveFirstStableOrder(t *testing.T) {
	repo := persistence.NewStoreTaskRepository(context.Background(), storage.NewMemoryStore(), nil)
	ctx := context.Background()

	// Stored order after three prepends: C, B, A.
	seedTask(t, repo, "A")
	b := seedTask(t, repo, "B")
	seedTask(t, repo, "C")

	b.Toggle()
	require.NoError(t, repo.Save(ctx, b))

	handler := queries.NewListTasksHandler(repo)
	dtos, err := handler.Handle(ctx, queries.ListTasksQuery{})

	require.NoError(t, err)
	require.Len(t, dtos, 3)
	assert.Equal(t, "C", dtos[0].Title)
	assert.Equal(t, "A", dtos[1].Title)
	assert.Equal(t, "B", dtos[2].Title)
	assert.True(t, dtos[2].Completed)
}

func TestListTasksHandler_ReopenRestoresPosition(t *testing.T) {
	repo := persistence.NewStoreTaskRepository(context.Background(), storage.NewMemoryStore(), nil)
	ctx := context.Background()

	seedTask(t, repo, "A")
	b := seedTask(t, repo, "B")
	seedTask(t, repo, "C")

	b.Toggle()
	require.NoError(t, repo.Save(ctx, b))
	b.Toggle()
	require.NoError(t, repo.Save(ctx, b))

	handler := queries.NewListTasksHandler(repo)
	dtos, err := handler.Handle(ctx, queries.ListTasksQuery{})

	require.NoError(t, err)
	require.Len(t, dtos, 3)
	assert.Equal(t, "C", dtos[0].Title)
	assert.Equal(t, "B", dtos[1].Title)
	assert.Equal(t, "A", dtos[2].Title)
}

func TestListTasksHandler_ActiveOnly(t *testing.T) {
	repo := persistence.NewStoreTaskRepository(context.Background(), storage.NewMemoryStore(), nil)
	ctx := context.Background()

	done := seedTask(t, repo, "Done")
	done.Toggle()
	require.NoError(t, repo.Save(ctx, done))
	seedTask(t, repo, "Open")

	handler := queries.NewListTasksHandler(repo)
	dtos, err := handler.Handle(ctx, queries.ListTasksQuery{ActiveOnly: true})

	require.NoError(t, err)
	require.Len(t, dtos, 1)
	assert.Equal(t, "Open", dtos[0].Title)
}

func TestListTasksHandler_Empty(t *testing.T) {
	repo := persistence.NewStoreTaskRepository(context.Background(), storage.NewMemoryStore(), nil)
	handler := queries.NewListTasksHandler(repo)

	dtos, err := handler.Handle(context.Background(), queries.ListTasksQuery{})

	require.NoError(t, err)
	assert.Empty(t, dtos)
}
