// Package gemini implements the assistant client against the Gemini
// generateContent REST API.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/mindfuldo/mindfuldo/internal/assistant"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultModel is the model used when none is configured.
	DefaultModel = "gemini-3-flash-preview"

	maxRetries   = 3
	initialDelay = time.Second
)

// Client calls the Gemini API.
type Client struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint. Used by tests.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) { c.client = client }
}

// NewClient creates a Gemini client.
func NewClient(apiKey, model string, opts ...Option) *Client {
	if model == "" {
		model = DefaultModel
	}
	c := &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// schema is the subset of the Gemini response schema language we use.
type schema struct {
	Type       string             `json:"type"`
	Properties map[string]*schema `json:"properties,omitempty"`
	Items      *schema            `json:"items,omitempty"`
	Enum       []string           `json:"enum,omitempty"`
	Required   []string           `json:"required,omitempty"`
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMIMEType string  `json:"responseMimeType"`
	ResponseSchema   *schema `json:"responseSchema,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// BreakdownTask suggests 3-5 concise steps for the given task.
func (c *Client) BreakdownTask(ctx context.Context, title string) ([]string, error) {
	prompt := fmt.Sprintf(
		"Break down this task into 3-5 smaller, actionable steps: %q. Keep them concise.",
		title,
	)
	respSchema := &schema{
		Type: "OBJECT",
		Properties: map[string]*schema{
			"steps": {Type: "ARRAY", Items: &schema{Type: "STRING"}},
		},
		Required: []string{"steps"},
	}

	raw, err := c.generate(ctx, prompt, respSchema)
	if err != nil {
		return nil, err
	}

	var result struct {
		Steps []string `json:"steps"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("failed to decode breakdown result: %w", err)
	}
	return result.Steps, nil
}

// SuggestPriority suggests Low, Medium, or High for the given task.
func (c *Client) SuggestPriority(ctx context.Context, title string, due *time.Time) (string, error) {
	dueText := "none"
	if due != nil {
		dueText = due.Format(time.RFC3339)
	}
	prompt := fmt.Sprintf(
		"Given the task %q and due date %q, suggest a priority level (Low, Medium, or High).",
		title, dueText,
	)
	respSchema := &schema{
		Type: "OBJECT",
		Properties: map[string]*schema{
			"priority": {Type: "STRING", Enum: []string{"Low", "Medium", "High"}},
		},
	}

	raw, err := c.generate(ctx, prompt, respSchema)
	if err != nil {
		return "", err
	}

	var result struct {
		Priority string `json:"priority"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return "", fmt.Errorf("failed to decode priority result: %w", err)
	}
	return result.Priority, nil
}

// SmartPlan suggests an execution order for the given tasks.
func (c *Client) SmartPlan(ctx context.Context, tasks []assistant.PlanTask) ([]assistant.PlanEntry, error) {
	if len(tasks) == 0 {
		return []assistant.PlanEntry{}, nil
	}

	summaries, err := json.Marshal(tasks)
	if err != nil {
		return nil, err
	}
	prompt := fmt.Sprintf(
		"Review these tasks and suggest an execution order to be most effective. "+
			"Provide a short reason for the top 3 recommendations. Tasks: %s",
		summaries,
	)
	respSchema := &schema{
		Type: "OBJECT",
		Properties: map[string]*schema{
			"plan": {
				Type: "ARRAY",
				Items: &schema{
					Type: "OBJECT",
					Properties: map[string]*schema{
						"taskId": {Type: "STRING"},
						"reason": {Type: "STRING"},
					},
				},
			},
		},
	}

	raw, err := c.generate(ctx, prompt, respSchema)
	if err != nil {
		return nil, err
	}

	var result struct {
		Plan []assistant.PlanEntry `json:"plan"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("failed to decode plan result: %w", err)
	}
	return result.Plan, nil
}

// generate issues one structured generateContent call and returns the JSON
// text of the first candidate. Rate limits and server errors are retried
// with exponential backoff.
func (c *Client) generate(ctx context.Context, prompt string, respSchema *schema) ([]byte, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   respSchema,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)

	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			delay := time.Duration(math.Pow(2, float64(attempt-1))) * initialDelay
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		httpReq.Header.Set("Content-Type", "application/json")
		httpReq.Header.Set("x-goog-api-key", c.apiKey)

		resp, err := c.client.Do(httpReq)
		if err != nil {
			lastErr = fmt.Errorf("HTTP request failed: %w", err)
			continue
		}

		respBody, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = fmt.Errorf("failed to read response body: %w", err)
			continue
		}

		if resp.StatusCode != http.StatusOK {
			var ae apiError
			if json.Unmarshal(respBody, &ae) == nil && ae.Error.Message != "" {
				lastErr = fmt.Errorf("Gemini API error (%d): %s", resp.StatusCode, ae.Error.Message)
			} else {
				lastErr = fmt.Errorf("Gemini API error (%d): %s", resp.StatusCode, string(respBody))
			}

			if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
				continue
			}
			return nil, lastErr
		}

		var gr generateResponse
		if err := json.Unmarshal(respBody, &gr); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}
		if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
			return nil, fmt.Errorf("empty response from model")
		}

		return []byte(gr.Candidates[0].Content.Parts[0].Text), nil
	}

	return nil, lastErr
}
