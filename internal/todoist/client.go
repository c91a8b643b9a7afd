// Package todoist implements the task source against the Todoist REST v2
// API.
package todoist

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/fyrsmithlabs/briefd/internal/config"
	"github.com/fyrsmithlabs/briefd/internal/source"
)

const defaultBaseURL = "https://api.todoist.com/rest/v2"

// Client is a Todoist REST v2 client.
type Client struct {
	baseURL    string
	token      config.Secret
	httpClient *http.Client
	limiter    *rate.Limiter
	now        func() time.Time
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL. Used in tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a Todoist client. Requests are rate limited well below
// Todoist's documented 450 requests per 15 minutes.
func NewClient(token config.Secret, opts ...Option) (*Client, error) {
	if !token.IsSet() {
		return nil, fmt.Errorf("todoist token not set")
	}
	c := &Client{
		baseURL:    defaultBaseURL,
		token:      token,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		limiter:    rate.NewLimiter(rate.Every(2*time.Second), 5),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// SetClock overrides the clock. Used in tests.
func (c *Client) SetClock(now func() time.Time) {
	c.now = now
}

// apiTask mirrors the fields we read from a Todoist task payload.
type apiTask struct {
	ID          string   `json:"id"`
	Content     string   `json:"content"`
	Description string   `json:"description"`
	IsCompleted bool     `json:"is_completed"`
	Priority    int      `json:"priority"`
	Labels      []string `json:"labels"`
	Due         *struct {
		Date     string `json:"date"`
		Datetime string `json:"datetime"`
		String   string `json:"string"`
	} `json:"due"`
	Duration *struct {
		Amount int    `json:"amount"`
		Unit   string `json:"unit"`
	} `json:"duration"`
}

// DailyTasks fetches the tasks due today or overdue.
func (c *Client) DailyTasks(ctx context.Context) ([]source.Task, error) {
	return c.fetchTasks(ctx, "today|overdue")
}

// AllTasks fetches every active task.
func (c *Client) AllTasks(ctx context.Context) ([]source.Task, error) {
	return c.fetchTasks(ctx, "")
}

func (c *Client) fetchTasks(ctx context.Context, filter string) ([]source.Task, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	endpoint := c.baseURL + "/tasks"
	if filter != "" {
		endpoint += "?filter=" + url.QueryEscape(filter)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token.Value())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("todoist API returned status %d", resp.StatusCode)
	}

	var raw []apiTask
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	tasks := make([]source.Task, 0, len(raw))
	for _, t := range raw {
		tasks = append(tasks, normalizeTask(t))
	}
	return tasks, nil
}

// normalizeTask maps a Todoist payload to the pipeline's task record.
// Todoist priority is 4=highest on the wire but presented as p1..p4 in its
// UI; we keep the 1-is-highest convention, so the wire value is inverted.
func normalizeTask(t apiTask) source.Task {
	task := source.Task{
		ID:          t.ID,
		Content:     t.Content,
		Description: t.Description,
		Completed:   t.IsCompleted,
		Labels:      t.Labels,
	}

	if t.Priority >= 1 && t.Priority <= 4 {
		task.Priority = 5 - t.Priority
	}

	if t.Due != nil {
		due := &source.Due{Date: t.Due.Date, Text: t.Due.String}
		if t.Due.Datetime != "" {
			if parsed, err := time.Parse(time.RFC3339, t.Due.Datetime); err == nil {
				due.Datetime = &parsed
			} else if parsed, err := time.Parse("2006-01-02T15:04:05", t.Due.Datetime); err == nil {
				due.Datetime = &parsed
			}
		}
		task.Due = due
	}

	if t.Duration != nil {
		switch t.Duration.Unit {
		case "minute":
			task.DurationMinutes = t.Duration.Amount
		case "day":
			task.DurationMinutes = t.Duration.Amount * 24 * 60
		}
	}

	return task
}

// Stats summarizes the full task list for dashboard widgets.
type Stats struct {
	Total        int `json:"total"`
	Completed    int `json:"completed"`
	HighPriority int `json:"highPriority"`
	DueToday     int `json:"dueToday"`
}

// TaskStats fetches all tasks and aggregates counts.
func (c *Client) TaskStats(ctx context.Context) (*Stats, error) {
	tasks, err := c.AllTasks(ctx)
	if err != nil {
		return nil, err
	}

	today := c.now().Format("2006-01-02")
	stats := &Stats{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			stats.Completed++
		}
		if t.Priority >= 1 && t.Priority <= 2 {
			stats.HighPriority++
		}
		if t.Due != nil && t.Due.Date == today {
			stats.DueToday++
		}
	}
	return stats, nil
}
