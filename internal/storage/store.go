// Package storage defines the key-value persistence port used by all
// collections, plus the JSON collection codec on top of it.
//
// The store holds a small number of independent records, each a full
// JSON-serialized collection written on every change. There are no partial
// updates and no transactions; last writer wins.
package storage

import (
	"context"
	"errors"
)

// Fixed record keys.
const (
	TasksKey    = "mindfuldo_tasks"
	StatsKey    = "mindfuldo_stats"
	SettingsKey = "mindfuldo_settings"
)

// ErrKeyNotFound is returned by Get when no value exists at the key.
var ErrKeyNotFound = errors.New("storage: key not found")

// Store is the key-value persistence port.
type Store interface {
	// Get retrieves the raw value at key. Returns ErrKeyNotFound when absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set writes value at key, unconditionally overwriting prior content.
	Set(ctx context.Context, key string, value []byte) error

	// Close releases any resources held by the store.
	Close() error
}
