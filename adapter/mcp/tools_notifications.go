package mcp

import (
	"context"

	"github.com/felixgeelhaar/mcp-go"

	"github.com/mindfuldo/mindfuldo/internal/notifications/domain"
)

type notifyStatusInput struct{}

type notifyPermissionInput struct {
	Permission string `json:"permission" jsonschema:"required"`
}

func registerNotificationTools(srv *mcp.Server, deps ToolDependencies) error {
	c := deps.Container

	srv.Tool("notify.status").
		Description("Current notification permission (default, granted, or denied)").
		Handler(func(ctx context.Context, _ notifyStatusInput) (map[string]any, error) {
			permission := c.Preferences.Permission(ctx)
			return map[string]any{
				"permission": string(permission),
				"enabled":    permission.CanNotify(),
			}, nil
		})

	srv.Tool("notify.set").
		Description("Set the notification permission to granted or denied").
		Handler(func(ctx context.Context, input notifyPermissionInput) (map[string]any, error) {
			permission, err := domain.ParsePermission(input.Permission)
			if err != nil {
				return nil, err
			}
			if err := c.Preferences.SetPermission(ctx, permission); err != nil {
				return nil, err
			}
			return map[string]any{"permission": string(permission)}, nil
		})

	return nil
}
