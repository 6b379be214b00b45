package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBaseEntity(t *testing.T) {
	e := NewBaseEntity()

	assert.NotEqual(t, uuid.Nil, e.ID())
	assert.False(t, e.CreatedAt().IsZero())
	assert.Equal(t, e.CreatedAt(), e.UpdatedAt())
}

func TestBaseEntity_Touch(t *testing.T) {
	e := NewBaseEntity()
	before := e.UpdatedAt()

	time.Sleep(time.Millisecond)
	e.Touch()

	assert.True(t, e.UpdatedAt().After(before))
	assert.Equal(t, before, e.CreatedAt(), "Touch must not move createdAt")
}

func TestBaseEntity_Equals(t *testing.T) {
	a := NewBaseEntity()
	b := NewBaseEntity()

	assert.True(t, a.Equals(a))
	assert.False(t, a.Equals(b))
	assert.False(t, a.Equals(nil))
}

func TestRehydrateBaseEntity(t *testing.T) {
	id := uuid.New()
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	updated := created.Add(time.Hour)

	e := RehydrateBaseEntity(id, created, updated)

	assert.Equal(t, id, e.ID())
	assert.Equal(t, created, e.CreatedAt())
	assert.Equal(t, updated, e.UpdatedAt())
}

func TestBaseAggregateRoot_DomainEvents(t *testing.T) {
	a := NewBaseAggregateRoot()
	require.Empty(t, a.DomainEvents())

	evt := NewBaseEvent(a.ID(), "test", "test.created")
	a.AddDomainEvent(evt)
	assert.Len(t, a.DomainEvents(), 1)

	a.ClearDomainEvents()
	assert.Empty(t, a.DomainEvents())
}

func TestNewBaseEvent(t *testing.T) {
	aggID := uuid.New()
	evt := NewBaseEvent(aggID, "task", "tasks.task.completed")

	assert.NotEqual(t, uuid.Nil, evt.EventID())
	assert.Equal(t, aggID, evt.AggregateID())
	assert.Equal(t, "task", evt.AggregateType())
	assert.Equal(t, "tasks.task.completed", evt.RoutingKey())
	assert.False(t, evt.OccurredAt().IsZero())
}
