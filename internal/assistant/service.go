package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sony/gobreaker/v2"
	"golang.org/x/sync/singleflight"
)

// DefaultPriority is returned when the model fails or answers nonsense.
const DefaultPriority = "Medium"

// ServiceConfig configures the assistant service.
type ServiceConfig struct {
	// MaxRequests is the number of probe requests allowed while half-open.
	MaxRequests uint32

	// Interval is the cyclic period of the closed state.
	Interval time.Duration

	// Timeout is how long the breaker stays open after tripping.
	Timeout time.Duration

	// FailureThreshold is the consecutive failures that trip the breaker.
	FailureThreshold uint32
}

// DefaultServiceConfig returns the default configuration.
func DefaultServiceConfig() ServiceConfig {
	return ServiceConfig{
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          30 * time.Second,
		FailureThreshold: 5,
	}
}

// Service fronts the model client with a circuit breaker and request
// coalescing. Every operation degrades to a safe default instead of failing:
// the app must stay usable when the model is down or no key is configured.
type Service struct {
	client  Client
	breaker *gobreaker.CircuitBreaker[any]
	group   singleflight.Group
	logger  *slog.Logger
}

// NewService creates a new assistant service.
func NewService(client Client, config ServiceConfig, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if config.FailureThreshold == 0 {
		config = DefaultServiceConfig()
	}

	s := &Service{client: client, logger: logger}
	s.breaker = gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        "assistant",
		MaxRequests: config.MaxRequests,
		Interval:    config.Interval,
		Timeout:     config.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= config.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info("circuit breaker state changed",
				"name", name,
				"from", from.String(),
				"to", to.String(),
			)
		},
	})
	return s
}

// BreakdownTask suggests steps for the task. Returns an empty slice when the
// model is unavailable.
func (s *Service) BreakdownTask(ctx context.Context, title string) []string {
	key := "breakdown:" + title
	result, err := s.do(ctx, key, func() (any, error) {
		return s.client.BreakdownTask(ctx, title)
	})
	if err != nil {
		s.logger.Error("breakdown failed", "title", title, "error", err)
		return []string{}
	}

	steps, ok := result.([]string)
	if !ok || steps == nil {
		return []string{}
	}
	return steps
}

// SuggestPriority suggests a priority for the task. Returns Medium when the
// model is unavailable or answers outside the expected set.
func (s *Service) SuggestPriority(ctx context.Context, title string, due *time.Time) string {
	key := "priority:" + title
	if due != nil {
		key += ":" + due.Format(time.RFC3339)
	}
	result, err := s.do(ctx, key, func() (any, error) {
		return s.client.SuggestPriority(ctx, title, due)
	})
	if err != nil {
		s.logger.Error("priority suggestion failed", "title", title, "error", err)
		return DefaultPriority
	}

	priority, _ := result.(string)
	switch priority {
	case "Low", "Medium", "High":
		return priority
	default:
		return DefaultPriority
	}
}

// SmartPlan suggests an execution order for the tasks. Returns an empty plan
// when there is nothing to plan or the model is unavailable.
func (s *Service) SmartPlan(ctx context.Context, tasks []PlanTask) []PlanEntry {
	if len(tasks) == 0 {
		return []PlanEntry{}
	}

	key := fmt.Sprintf("plan:%d:%s", len(tasks), tasks[0].ID)
	result, err := s.do(ctx, key, func() (any, error) {
		return s.client.SmartPlan(ctx, tasks)
	})
	if err != nil {
		s.logger.Error("smart plan failed", "task_count", len(tasks), "error", err)
		return []PlanEntry{}
	}

	plan, ok := result.([]PlanEntry)
	if !ok || plan == nil {
		return []PlanEntry{}
	}
	return plan
}

// do runs fn behind the breaker, coalescing concurrent identical requests.
func (s *Service) do(ctx context.Context, key string, fn func() (any, error)) (any, error) {
	result, err, _ := s.group.Do(key, func() (any, error) {
		return s.breaker.Execute(fn)
	})
	return result, err
}
