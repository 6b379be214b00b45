package application

import (
	"context"

	"github.com/mindfuldo/mindfuldo/internal/shared/infrastructure/eventbus"
	"github.com/mindfuldo/mindfuldo/internal/tasks/domain/task"
)

// CompletionSubscriber feeds task completion events into the aggregator.
type CompletionSubscriber struct {
	aggregator *Aggregator
}

// NewCompletionSubscriber creates a new CompletionSubscriber.
func NewCompletionSubscriber(aggregator *Aggregator) *CompletionSubscriber {
	return &CompletionSubscriber{aggregator: aggregator}
}

// EventTypes returns the routing keys this consumer handles.
func (s *CompletionSubscriber) EventTypes() []string {
	return []string{task.RoutingKeyCompleted, task.RoutingKeyReopened}
}

// Handle applies the event to the stats window.
func (s *CompletionSubscriber) Handle(ctx context.Context, event *eventbus.ConsumedEvent) error {
	switch event.RoutingKey {
	case task.RoutingKeyCompleted:
		return s.aggregator.RecordCompletion(ctx)
	case task.RoutingKeyReopened:
		return s.aggregator.RecordReopen(ctx)
	}
	return nil
}
