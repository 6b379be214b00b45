package storage

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
)

// LoadCollection reads and decodes the JSON collection stored at key.
//
// An absent key yields an empty collection. A read failure or undecodable
// payload is logged and likewise degrades to an empty collection; corruption
// is never surfaced to the caller.
func LoadCollection[T any](ctx context.Context, store Store, key string, logger *slog.Logger) []T {
	if logger == nil {
		logger = slog.Default()
	}

	raw, err := store.Get(ctx, key)
	if errors.Is(err, ErrKeyNotFound) {
		return []T{}
	}
	if err != nil {
		logger.Error("failed to read collection, starting empty",
			"key", key,
			"error", err,
		)
		return []T{}
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		logger.Error("stored collection is corrupt, starting empty",
			"key", key,
			"error", err,
		)
		return []T{}
	}
	if items == nil {
		items = []T{}
	}
	return items
}

// SaveCollection serializes the full collection and overwrites the record at
// key.
func SaveCollection[T any](ctx context.Context, store Store, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return store.Set(ctx, key, raw)
}
