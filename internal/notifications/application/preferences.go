// Package application holds the notification preferences and the reminder
// worker.
package application

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"github.com/mindfuldo/mindfuldo/internal/notifications/domain"
	"github.com/mindfuldo/mindfuldo/internal/storage"
)

// settingsRecord is the stored JSON shape of the notification settings.
type settingsRecord struct {
	NotificationsPermission string `json:"notificationsPermission"`
}

// Preferences persists the notification permission in the settings record.
type Preferences struct {
	store  storage.Store
	logger *slog.Logger
	mu     sync.Mutex
}

// NewPreferences creates a new Preferences.
func NewPreferences(store storage.Store, logger *slog.Logger) *Preferences {
	if logger == nil {
		logger = slog.Default()
	}
	return &Preferences{store: store, logger: logger}
}

// Permission returns the stored permission. A missing or unreadable record
// yields PermissionDefault.
func (p *Preferences) Permission(ctx context.Context) domain.Permission {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.load(ctx)
}

// SetPermission stores a new permission value.
func (p *Preferences) SetPermission(ctx context.Context, permission domain.Permission) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	raw, err := json.Marshal(settingsRecord{
		NotificationsPermission: permission.String(),
	})
	if err != nil {
		return err
	}
	return p.store.Set(ctx, storage.SettingsKey, raw)
}

func (p *Preferences) load(ctx context.Context) domain.Permission {
	raw, err := p.store.Get(ctx, storage.SettingsKey)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return domain.PermissionDefault
	}
	if err != nil {
		p.logger.Error("failed to read settings", "error", err)
		return domain.PermissionDefault
	}

	var rec settingsRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		p.logger.Error("settings record is corrupt", "error", err)
		return domain.PermissionDefault
	}

	permission, err := domain.ParsePermission(rec.NotificationsPermission)
	if err != nil {
		p.logger.Warn("unknown permission value in settings",
			"value", rec.NotificationsPermission,
		)
	}
	return permission
}
