// Package mcp exposes the MindfulDo operations as MCP tools so that AI
// agents can manage tasks the same way the CLI does.
package mcp

import (
	"errors"
	"fmt"

	"github.com/felixgeelhaar/mcp-go"
	"github.com/google/uuid"

	"github.com/mindfuldo/mindfuldo/internal/app"
)

// ToolDependencies provides handlers and context for MCP tools.
type ToolDependencies struct {
	Container *app.Container
}

// RegisterTools registers MCP tools that mirror CLI functionality.
func RegisterTools(srv *mcp.Server, deps ToolDependencies) error {
	if srv == nil {
		return errors.New("server is required")
	}
	if deps.Container == nil {
		return errors.New("container is required")
	}

	if err := registerTaskTools(srv, deps); err != nil {
		return err
	}
	if err := registerAssistantTools(srv, deps); err != nil {
		return err
	}
	if err := registerStatsTools(srv, deps); err != nil {
		return err
	}
	if err := registerNotificationTools(srv, deps); err != nil {
		return err
	}

	return nil
}

func parseUUID(value string) (uuid.UUID, error) {
	if value == "" {
		return uuid.UUID{}, errors.New("id is required")
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("invalid id %q: %w", value, err)
	}
	return id, nil
}
