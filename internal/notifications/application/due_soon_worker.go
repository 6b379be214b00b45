package application

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/mindfuldo/mindfuldo/internal/tasks/domain/task"
)

// DefaultCheckInterval is the default interval between reminder checks.
const DefaultCheckInterval = time.Minute

// The reminder fires once per task while its remaining time sits inside
// (windowLow, windowHigh). With one check per minute the task passes through
// the window exactly once, so no notified-flag is needed.
const (
	windowHigh = 15 * time.Minute
	windowLow  = 14 * time.Minute
)

// Reminder is a due-soon notification for one task.
type Reminder struct {
	TaskID   string
	Title    string
	Body     string
	Priority string
	DueDate  time.Time
}

// Alerter delivers reminders to the user.
type Alerter interface {
	Alert(ctx context.Context, reminder Reminder) error
}

// DueSoonWorkerConfig configures the reminder worker.
type DueSoonWorkerConfig struct {
	Interval time.Duration
}

// DefaultDueSoonWorkerConfig returns the default configuration.
func DefaultDueSoonWorkerConfig() DueSoonWorkerConfig {
	return DueSoonWorkerConfig{Interval: DefaultCheckInterval}
}

// DueSoonWorker periodically scans active tasks and alerts on those due in
// about fifteen minutes. Checks are skipped entirely unless the user has
// granted notification permission.
type DueSoonWorker struct {
	taskRepo task.Repository
	prefs    *Preferences
	alerter  Alerter
	config   DueSoonWorkerConfig
	logger   *slog.Logger
	now      func() time.Time
	running  atomic.Bool
	stopCh   chan struct{}
}

// DueSoonWorkerOption configures a DueSoonWorker.
type DueSoonWorkerOption func(*DueSoonWorker)

// WithClock overrides the time source. Used by tests.
func WithClock(now func() time.Time) DueSoonWorkerOption {
	return func(w *DueSoonWorker) { w.now = now }
}

// NewDueSoonWorker creates a new reminder worker.
func NewDueSoonWorker(
	taskRepo task.Repository,
	prefs *Preferences,
	alerter Alerter,
	config DueSoonWorkerConfig,
	logger *slog.Logger,
	opts ...DueSoonWorkerOption,
) *DueSoonWorker {
	if logger == nil {
		logger = slog.Default()
	}
	if config.Interval <= 0 {
		config.Interval = DefaultCheckInterval
	}
	w := &DueSoonWorker{
		taskRepo: taskRepo,
		prefs:    prefs,
		alerter:  alerter,
		config:   config,
		logger:   logger,
		now:      time.Now,
		stopCh:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run starts the worker and blocks until the context is cancelled or Stop is
// called. The first check runs immediately.
func (w *DueSoonWorker) Run(ctx context.Context) error {
	w.running.Store(true)
	w.logger.Info("due-soon worker started", "interval", w.config.Interval)

	if _, err := w.CheckOnce(ctx); err != nil {
		w.logger.Error("reminder check failed", "error", err)
	}

	ticker := time.NewTicker(w.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.running.Store(false)
			w.logger.Info("due-soon worker stopped (context cancelled)")
			return ctx.Err()
		case <-w.stopCh:
			w.running.Store(false)
			w.logger.Info("due-soon worker stopped (stop signal)")
			return nil
		case <-ticker.C:
			if _, err := w.CheckOnce(ctx); err != nil {
				w.logger.Error("reminder check failed", "error", err)
			}
		}
	}
}

// Stop signals the worker to stop gracefully.
func (w *DueSoonWorker) Stop() {
	if w.running.Load() {
		close(w.stopCh)
	}
}

// IsRunning reports whether the worker loop is active.
func (w *DueSoonWorker) IsRunning() bool {
	return w.running.Load()
}

// CheckOnce runs a single reminder scan and returns the number of alerts
// delivered.
func (w *DueSoonWorker) CheckOnce(ctx context.Context) (int, error) {
	if !w.prefs.Permission(ctx).CanNotify() {
		return 0, nil
	}

	active, err := w.taskRepo.FindActive(ctx)
	if err != nil {
		return 0, err
	}

	now := w.now()
	sent := 0
	for _, t := range active {
		if t.DueDate() == nil {
			continue
		}

		remaining := t.DueDate().Sub(now)
		if remaining <= 0 || remaining >= windowHigh || remaining <= windowLow {
			continue
		}

		reminder := Reminder{
			TaskID:   t.ID().String(),
			Title:    fmt.Sprintf("Reminder: %s", t.Title()),
			Body:     fmt.Sprintf("This task is due in 15 minutes! Priority: %s", t.Priority()),
			Priority: t.Priority().String(),
			DueDate:  *t.DueDate(),
		}
		if err := w.alerter.Alert(ctx, reminder); err != nil {
			w.logger.Error("failed to deliver reminder",
				"task_id", reminder.TaskID,
				"error", err,
			)
			continue
		}
		sent++
	}

	if sent > 0 {
		w.logger.Debug("reminders delivered", "count", sent)
	}
	return sent, nil
}
