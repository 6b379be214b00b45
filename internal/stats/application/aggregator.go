// Package application maintains the rolling window of daily completion
// counts.
package application

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/mindfuldo/mindfuldo/internal/stats/domain"
	"github.com/mindfuldo/mindfuldo/internal/storage"
)

// windowSize is the number of daily entries retained.
const windowSize = 7

// Aggregator applies completion events to the persisted stats window. Each
// event re-reads the stored window, so concurrent processes converge on the
// same record.
type Aggregator struct {
	store  storage.Store
	logger *slog.Logger
	now    func() time.Time
	mu     sync.Mutex
}

// AggregatorOption configures an Aggregator.
type AggregatorOption func(*Aggregator)

// WithClock overrides the time source. Used by tests to pin the day.
func WithClock(now func() time.Time) AggregatorOption {
	return func(a *Aggregator) { a.now = now }
}

// NewAggregator creates a new stats aggregator.
func NewAggregator(store storage.Store, logger *slog.Logger, opts ...AggregatorOption) *Aggregator {
	if logger == nil {
		logger = slog.Default()
	}
	a := &Aggregator{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// RecordCompletion increments today's count, creating the entry if today has
// none yet.
func (a *Aggregator) RecordCompletion(ctx context.Context) error {
	return a.apply(ctx, true)
}

// RecordReopen decrements today's count. A day with no entry or a count
// already at zero is left untouched; days never go negative.
func (a *Aggregator) RecordReopen(ctx context.Context) error {
	return a.apply(ctx, false)
}

func (a *Aggregator) apply(ctx context.Context, completed bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	entries := storage.LoadCollection[domain.DailyEntry](ctx, a.store, storage.StatsKey, a.logger)
	today := domain.Day(a.now())

	idx := -1
	for i := range entries {
		if entries[i].Date == today {
			idx = i
			break
		}
	}

	if completed {
		if idx >= 0 {
			entries[idx].CompletedCount++
		} else {
			entries = append(entries, domain.DailyEntry{Date: today, CompletedCount: 1})
		}
	} else if idx >= 0 && entries[idx].CompletedCount > 0 {
		entries[idx].CompletedCount--
	}

	// Keep only the most recent window, in append order.
	if len(entries) > windowSize {
		entries = entries[len(entries)-windowSize:]
	}

	return storage.SaveCollection(ctx, a.store, storage.StatsKey, entries)
}

// History returns the stored window in append order.
func (a *Aggregator) History(ctx context.Context) []domain.DailyEntry {
	a.mu.Lock()
	defer a.mu.Unlock()

	return storage.LoadCollection[domain.DailyEntry](ctx, a.store, storage.StatsKey, a.logger)
}

// CompletedToday returns today's count, zero when today has no entry.
func (a *Aggregator) CompletedToday(ctx context.Context) int {
	today := domain.Day(a.now())
	for _, entry := range a.History(ctx) {
		if entry.Date == today {
			return entry.CompletedCount
		}
	}
	return 0
}
