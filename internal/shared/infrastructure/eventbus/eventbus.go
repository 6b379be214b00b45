// Package eventbus carries domain events between the tasks context and its
// subscribers, either in-process (local mode) or over RabbitMQ (server mode).
package eventbus

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/mindfuldo/mindfuldo/internal/shared/domain"
)

// Publisher sends serialized events to the bus.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, payload []byte) error
	Close() error
}

// EventConsumer handles specific event types.
type EventConsumer interface {
	// EventTypes returns the routing keys this consumer handles,
	// e.g. ["tasks.task.completed"].
	EventTypes() []string

	// Handle processes the event.
	Handle(ctx context.Context, event *ConsumedEvent) error
}

// Consumer receives events from a message broker and dispatches them.
type Consumer interface {
	// Start begins consuming messages. This is a blocking call.
	Start(ctx context.Context) error

	// RegisterConsumer registers an event consumer.
	RegisterConsumer(consumer EventConsumer)

	// Close closes the consumer connection.
	Close() error
}

// ConsumedEvent is the wire form of a domain event.
type ConsumedEvent struct {
	EventID       uuid.UUID       `json:"event_id"`
	AggregateID   uuid.UUID       `json:"aggregate_id"`
	AggregateType string          `json:"aggregate_type"`
	RoutingKey    string          `json:"routing_key"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Payload       json.RawMessage `json:"payload"`
	CorrelationID string          `json:"correlation_id,omitempty"`
}

// Envelope wraps a domain event into its wire form.
func Envelope(event domain.DomainEvent) ([]byte, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}
	return json.Marshal(&ConsumedEvent{
		EventID:       event.EventID(),
		AggregateID:   event.AggregateID(),
		AggregateType: event.AggregateType(),
		RoutingKey:    event.RoutingKey(),
		OccurredAt:    event.OccurredAt(),
		Payload:       payload,
	})
}

// PublishDomainEvents publishes every uncommitted event on the aggregate and
// clears them. Events are published after the aggregate has been persisted.
func PublishDomainEvents(ctx context.Context, pub Publisher, aggregate domain.AggregateRoot) error {
	for _, event := range aggregate.DomainEvents() {
		body, err := Envelope(event)
		if err != nil {
			return err
		}
		if err := pub.Publish(ctx, event.RoutingKey(), body); err != nil {
			return err
		}
	}
	aggregate.ClearDomainEvents()
	return nil
}
