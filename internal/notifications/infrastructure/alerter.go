// Package infrastructure provides reminder delivery backends.
package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mindfuldo/mindfuldo/internal/notifications/application"
	"github.com/mindfuldo/mindfuldo/internal/shared/infrastructure/eventbus"
)

// RoutingKeyReminderDue is the routing key for published reminders.
const RoutingKeyReminderDue = "notifications.reminder.due"

// ConsoleAlerter writes reminders to a terminal.
type ConsoleAlerter struct {
	w  io.Writer
	mu sync.Mutex
}

// NewConsoleAlerter creates an alerter that writes to w.
func NewConsoleAlerter(w io.Writer) *ConsoleAlerter {
	return &ConsoleAlerter{w: w}
}

// Alert prints the reminder.
func (a *ConsoleAlerter) Alert(_ context.Context, reminder application.Reminder) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	_, err := fmt.Fprintf(a.w, "%s\n  %s\n", reminder.Title, reminder.Body)
	return err
}

// BusAlerter publishes reminders to the event bus so a separate process can
// deliver them.
type BusAlerter struct {
	publisher eventbus.Publisher
	logger    *slog.Logger
}

// NewBusAlerter creates an alerter that publishes reminders.
func NewBusAlerter(publisher eventbus.Publisher, logger *slog.Logger) *BusAlerter {
	if logger == nil {
		logger = slog.Default()
	}
	return &BusAlerter{publisher: publisher, logger: logger}
}

// Alert publishes the reminder wrapped in the event envelope.
func (a *BusAlerter) Alert(ctx context.Context, reminder application.Reminder) error {
	payload, err := json.Marshal(reminder)
	if err != nil {
		return err
	}

	taskID, err := uuid.Parse(reminder.TaskID)
	if err != nil {
		taskID = uuid.Nil
	}

	body, err := json.Marshal(&eventbus.ConsumedEvent{
		EventID:       uuid.New(),
		AggregateID:   taskID,
		AggregateType: "reminder",
		RoutingKey:    RoutingKeyReminderDue,
		OccurredAt:    time.Now().UTC(),
		Payload:       payload,
	})
	if err != nil {
		return err
	}
	return a.publisher.Publish(ctx, RoutingKeyReminderDue, body)
}
