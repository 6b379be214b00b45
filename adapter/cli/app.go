package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mindfuldo/mindfuldo/internal/app"
	"github.com/mindfuldo/mindfuldo/internal/tasks/application/queries"
)

// container is the global dependency container for all commands.
var container *app.Container

// SetContainer installs the dependency container.
func SetContainer(c *app.Container) {
	container = c
}

// GetContainer returns the installed container.
func GetContainer() *app.Container {
	return container
}

func requireContainer() (*app.Container, error) {
	if container == nil {
		return nil, fmt.Errorf("application not initialized")
	}
	return container, nil
}

// resolveTaskID matches an ID prefix against the stored tasks. The full ID
// never has to be typed; the first few characters are enough as long as they
// are unambiguous.
func resolveTaskID(ctx context.Context, c *app.Container, prefix string) (uuid.UUID, error) {
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	if prefix == "" {
		return uuid.Nil, fmt.Errorf("task id required")
	}

	if id, err := uuid.Parse(prefix); err == nil {
		return id, nil
	}

	tasks, err := c.ListTasksHandler.Handle(ctx, queries.ListTasksQuery{})
	if err != nil {
		return uuid.Nil, err
	}

	var matches []queries.TaskDTO
	for _, t := range tasks {
		if strings.HasPrefix(t.ID.String(), prefix) {
			matches = append(matches, t)
		}
	}

	switch len(matches) {
	case 0:
		return uuid.Nil, fmt.Errorf("no task matches %q", prefix)
	case 1:
		return matches[0].ID, nil
	default:
		var sb strings.Builder
		fmt.Fprintf(&sb, "%q matches %d tasks:\n", prefix, len(matches))
		for _, m := range matches {
			fmt.Fprintf(&sb, "  [%s] %s\n", m.ID.String()[:8], m.Title)
		}
		return uuid.Nil, fmt.Errorf("%s", sb.String())
	}
}
