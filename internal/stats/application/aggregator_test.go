package application_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindfuldo/mindfuldo/internal/shared/infrastructure/eventbus"
	"github.com/mindfuldo/mindfuldo/internal/stats/application"
	"github.com/mindfuldo/mindfuldo/internal/stats/domain"
	"github.com/mindfuldo/mindfuldo/internal/storage"
	"github.com/mindfuldo/mindfuldo/internal/tasks/domain/task"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestRecordCompletion_CreatesEntry(t *testing.T) {
	store := storage.NewMemoryStore()
	day := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	agg := application.NewAggregator(store, nil, application.WithClock(fixedClock(day)))

	require.NoError(t, agg.RecordCompletion(context.Background()))

	history := agg.History(context.Background())
	require.Len(t, history, 1)
	assert.Equal(t, "2026-08-29", history[0].Date)
	assert.Equal(t, 1, history[0].CompletedCount)
}

func TestRecordCompletion_IncrementsExistingEntry(t *testing.T) {
	store := storage.NewMemoryStore()
	day := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	agg := application.NewAggregator(store, nil, application.WithClock(fixedClock(day)))
	ctx := context.Background()

	require.NoError(t, agg.RecordCompletion(ctx))
	require.NoError(t, agg.RecordCompletion(ctx))
	require.NoError(t, agg.RecordCompletion(ctx))

	history := agg.History(ctx)
	require.Len(t, history, 1)
	assert.Equal(t, 3, history[0].CompletedCount)
	assert.Equal(t, 3, agg.CompletedToday(ctx))
}

func TestRecordReopen_Decrements(t *testing.T) {
	store := storage.NewMemoryStore()
	day := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	agg := application.NewAggregator(store, nil, application.WithClock(fixedClock(day)))
	ctx := context.Background()

	require.NoError(t, agg.RecordCompletion(ctx))
	require.NoError(t, agg.RecordCompletion(ctx))
	require.NoError(t, agg.RecordReopen(ctx))

	assert.Equal(t, 1, agg.CompletedToday(ctx))
}

func TestRecordReopen_NeverGoesNegative(t *testing.T) {
	store := storage.NewMemoryStore()
	day := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	agg := application.NewAggregator(store, nil, application.WithClock(fixedClock(day)))
	ctx := context.Background()

	require.NoError(t, agg.RecordCompletion(ctx))
	require.NoError(t, agg.RecordReopen(ctx))
	require.NoError(t, agg.RecordReopen(ctx))

	history := agg.History(ctx)
	require.Len(t, history, 1)
	assert.Equal(t, 0, history[0].CompletedCount)
}

func TestRecordReopen_NoEntryIsNoop(t *testing.T) {
	store := storage.NewMemoryStore()
	day := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	agg := application.NewAggregator(store, nil, application.WithClock(fixedClock(day)))
	ctx := context.Background()

	require.NoError(t, agg.RecordReopen(ctx))

	// No entry was persisted.
	assert.Empty(t, agg.History(ctx))
	assert.Equal(t, 0, agg.CompletedToday(ctx))
}

func TestWindow_KeepsLastSevenDays(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 9; i++ {
		day := base.AddDate(0, 0, i)
		agg := application.NewAggregator(store, nil, application.WithClock(fixedClock(day)))
		require.NoError(t, agg.RecordCompletion(ctx))
	}

	agg := application.NewAggregator(store, nil)
	history := agg.History(ctx)
	require.Len(t, history, 7)
	assert.Equal(t, "2026-08-03", history[0].Date)
	assert.Equal(t, "2026-08-09", history[6].Date)
}

func TestDayRollover_StartsNewEntry(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()

	day1 := time.Date(2026, 8, 28, 23, 50, 0, 0, time.UTC)
	day2 := time.Date(2026, 8, 29, 0, 10, 0, 0, time.UTC)

	agg1 := application.NewAggregator(store, nil, application.WithClock(fixedClock(day1)))
	require.NoError(t, agg1.RecordCompletion(ctx))

	agg2 := application.NewAggregator(store, nil, application.WithClock(fixedClock(day2)))
	require.NoError(t, agg2.RecordCompletion(ctx))

	history := agg2.History(ctx)
	require.Len(t, history, 2)
	assert.Equal(t, "2026-08-28", history[0].Date)
	assert.Equal(t, "2026-08-29", history[1].Date)
	assert.Equal(t, 1, agg2.CompletedToday(ctx))
}

func TestHistory_CorruptRecordStartsEmpty(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, storage.StatsKey, []byte("[broken")))

	agg := application.NewAggregator(store, nil)
	assert.Empty(t, agg.History(ctx))
}

func TestCompletionSubscriber_RoutesEvents(t *testing.T) {
	store := storage.NewMemoryStore()
	day := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	agg := application.NewAggregator(store, nil, application.WithClock(fixedClock(day)))
	sub := application.NewCompletionSubscriber(agg)
	ctx := context.Background()

	assert.ElementsMatch(t,
		[]string{task.RoutingKeyCompleted, task.RoutingKeyReopened},
		sub.EventTypes(),
	)

	require.NoError(t, sub.Handle(ctx, &eventbus.ConsumedEvent{RoutingKey: task.RoutingKeyCompleted}))
	require.NoError(t, sub.Handle(ctx, &eventbus.ConsumedEvent{RoutingKey: task.RoutingKeyCompleted}))
	require.NoError(t, sub.Handle(ctx, &eventbus.ConsumedEvent{RoutingKey: task.RoutingKeyReopened}))

	assert.Equal(t, 1, agg.CompletedToday(ctx))
}

func TestCompletionSubscriber_IgnoresOtherEvents(t *testing.T) {
	store := storage.NewMemoryStore()
	agg := application.NewAggregator(store, nil)
	sub := application.NewCompletionSubscriber(agg)

	require.NoError(t, sub.Handle(context.Background(), &eventbus.ConsumedEvent{RoutingKey: task.RoutingKeyCreated}))

	assert.Empty(t, agg.History(context.Background()))
}

func TestPersistedShape(t *testing.T) {
	store := storage.NewMemoryStore()
	day := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	agg := application.NewAggregator(store, nil, application.WithClock(fixedClock(day)))
	ctx := context.Background()

	require.NoError(t, agg.RecordCompletion(ctx))

	raw, err := store.Get(ctx, storage.StatsKey)
	require.NoError(t, err)
	assert.JSONEq(t, fmt.Sprintf(`[{"date":%q,"completedCount":1}]`, domain.Day(day)), string(raw))
}
