package assistant_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindfuldo/mindfuldo/internal/assistant"
)

type stubClient struct {
	steps    []string
	priority string
	plan     []assistant.PlanEntry
	err      error

	calls   atomic.Int32
	block   chan struct{}
	blockMu sync.Mutex
}

func (c *stubClient) BreakdownTask(ctx context.Context, title string) ([]string, error) {
	c.calls.Add(1)
	c.waitIfBlocked()
	return c.steps, c.err
}

func (c *stubClient) SuggestPriority(ctx context.Context, title string, due *time.Time) (string, error) {
	c.calls.Add(1)
	return c.priority, c.err
}

func (c *stubClient) SmartPlan(ctx context.Context, tasks []assistant.PlanTask) ([]assistant.PlanEntry, error) {
	c.calls.Add(1)
	return c.plan, c.err
}

func (c *stubClient) waitIfBlocked() {
	c.blockMu.Lock()
	block := c.block
	c.blockMu.Unlock()
	if block != nil {
		<-block
	}
}

func newService(client *stubClient) *assistant.Service {
	return assistant.NewService(client, assistant.DefaultServiceConfig(), nil)
}

func TestBreakdownTask(t *testing.T) {
	client := &stubClient{steps: []string{"Plan", "Do", "Review"}}
	svc := newService(client)

	steps := svc.BreakdownTask(context.Background(), "Ship the release")

	assert.Equal(t, []string{"Plan", "Do", "Review"}, steps)
}

func TestBreakdownTask_FailureReturnsEmpty(t *testing.T) {
	client := &stubClient{err: errors.New("model offline")}
	svc := newService(client)

	steps := svc.BreakdownTask(context.Background(), "Ship the release")

	assert.NotNil(t, steps)
	assert.Empty(t, steps)
}

func TestSuggestPriority(t *testing.T) {
	client := &stubClient{priority: "High"}
	svc := newService(client)

	assert.Equal(t, "High", svc.SuggestPriority(context.Background(), "Pay taxes", nil))
}

func TestSuggestPriority_FailureDefaultsToMedium(t *testing.T) {
	client := &stubClient{err: errors.New("model offline")}
	svc := newService(client)

	assert.Equal(t, "Medium", svc.SuggestPriority(context.Background(), "Pay taxes", nil))
}

func TestSuggestPriority_UnexpectedAnswerDefaultsToMedium(t *testing.T) {
	client := &stubClient{priority: "Urgent"}
	svc := newService(client)

	assert.Equal(t, "Medium", svc.SuggestPriority(context.Background(), "Pay taxes", nil))
}

func TestSmartPlan(t *testing.T) {
	plan := []assistant.PlanEntry{{TaskID: "t1", Reason: "due first"}}
	client := &stubClient{plan: plan}
	svc := newService(client)

	got := svc.SmartPlan(context.Background(), []assistant.PlanTask{{ID: "t1", Title: "A"}})

	assert.Equal(t, plan, got)
}

func TestSmartPlan_EmptyInputSkipsModel(t *testing.T) {
	client := &stubClient{}
	svc := newService(client)

	got := svc.SmartPlan(context.Background(), nil)

	assert.Empty(t, got)
	assert.Zero(t, client.calls.Load())
}

func TestSmartPlan_FailureReturnsEmpty(t *testing.T) {
	client := &stubClient{err: errors.New("model offline")}
	svc := newService(client)

	got := svc.SmartPlan(context.Background(), []assistant.PlanTask{{ID: "t1"}})

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestBreakerTripsAfterConsecutiveFailures(t *testing.T) {
	client := &stubClient{err: errors.New("model offline")}
	svc := assistant.NewService(client, assistant.ServiceConfig{
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          time.Minute,
		FailureThreshold: 3,
	}, nil)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		// Distinct titles so coalescing does not collapse the calls.
		svc.SuggestPriority(ctx, "task "+string(rune('a'+i)), nil)
	}

	// After three consecutive failures the breaker is open and the
	// remaining calls never reach the client.
	assert.Equal(t, int32(3), client.calls.Load())
}

func TestConcurrentIdenticalRequestsCoalesce(t *testing.T) {
	client := &stubClient{steps: []string{"one"}, block: make(chan struct{})}
	svc := newService(client)
	ctx := context.Background()

	var wg sync.WaitGroup
	results := make([][]string, 4)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = svc.BreakdownTask(ctx, "same title")
		}(i)
	}

	require.Eventually(t, func() bool {
		return client.calls.Load() >= 1
	}, time.Second, 5*time.Millisecond)
	close(client.block)
	wg.Wait()

	assert.Equal(t, int32(1), client.calls.Load())
	for _, r := range results {
		assert.Equal(t, []string{"one"}, r)
	}
}
