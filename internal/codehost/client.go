// Package codehost implements the code-hosting activity source against the
// GitHub API: recent public events through the REST API and the contribution
// calendar through the GraphQL endpoint.
package codehost

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"github.com/fyrsmithlabs/briefd/internal/config"
	"github.com/fyrsmithlabs/briefd/internal/source"
)

const (
	defaultGraphQLURL = "https://api.github.com/graphql"
	eventPageSize     = 30
)

// Client reads a user's activity from GitHub.
type Client struct {
	gh         *github.Client
	httpClient *http.Client
	graphqlURL string
	username   string
	limiter    *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURLs overrides the REST and GraphQL endpoints. Used in tests.
func WithBaseURLs(restURL, graphqlURL string) Option {
	return func(c *Client) {
		if restURL != "" {
			if u, err := url.Parse(restURL); err == nil {
				c.gh.BaseURL = u
			}
		}
		if graphqlURL != "" {
			c.graphqlURL = graphqlURL
		}
	}
}

// NewClient creates a GitHub activity client for username.
func NewClient(ctx context.Context, token config.Secret, username string, opts ...Option) (*Client, error) {
	if !token.IsSet() {
		return nil, fmt.Errorf("github token not set")
	}
	if username == "" {
		return nil, fmt.Errorf("github username not set")
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token.Value()})
	httpClient := oauth2.NewClient(ctx, ts)

	c := &Client{
		gh:         github.NewClient(httpClient),
		httpClient: httpClient,
		graphqlURL: defaultGraphQLURL,
		username:   username,
		limiter:    rate.NewLimiter(rate.Every(time.Second), 3),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// RecentActivity fetches the user's most recent public events.
func (c *Client) RecentActivity(ctx context.Context) ([]source.Activity, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	events, _, err := c.gh.Activity.ListEventsPerformedByUser(ctx, c.username, false,
		&github.ListOptions{PerPage: eventPageSize})
	if err != nil {
		return nil, fmt.Errorf("list user events: %w", err)
	}

	activity := make([]source.Activity, 0, len(events))
	for _, ev := range events {
		a := source.Activity{
			ID:   ev.GetID(),
			Kind: ev.GetType(),
			Repo: ev.GetRepo().GetName(),
		}
		if ev.CreatedAt != nil {
			a.CreatedAt = ev.CreatedAt.Time
		}
		activity = append(activity, a)
	}
	return activity, nil
}

// contributionsQuery pulls the contribution calendar for a user.
const contributionsQuery = `
query($userName:String!) {
  user(login: $userName) {
    contributionsCollection {
      contributionCalendar {
        totalContributions
        weeks {
          contributionDays {
            contributionCount
            date
          }
        }
      }
    }
  }
}`

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type contributionsResponse struct {
	Data struct {
		User struct {
			ContributionsCollection struct {
				ContributionCalendar struct {
					TotalContributions int `json:"totalContributions"`
					Weeks              []struct {
						ContributionDays []struct {
							ContributionCount int    `json:"contributionCount"`
							Date              string `json:"date"`
						} `json:"contributionDays"`
					} `json:"weeks"`
				} `json:"contributionCalendar"`
			} `json:"contributionsCollection"`
		} `json:"user"`
	} `json:"data"`
}

// Contributions fetches the user's contribution calendar, flattened to days.
func (c *Client) Contributions(ctx context.Context) ([]source.ContributionDay, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	payload, err := json.Marshal(graphqlRequest{
		Query:     contributionsQuery,
		Variables: map[string]any{"userName": c.username},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.graphqlURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("github GraphQL returned status %d", resp.StatusCode)
	}

	var body contributionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	var days []source.ContributionDay
	for _, week := range body.Data.User.ContributionsCollection.ContributionCalendar.Weeks {
		for _, day := range week.ContributionDays {
			days = append(days, source.ContributionDay{
				Date:  day.Date,
				Count: day.ContributionCount,
				Level: contributionLevel(day.ContributionCount),
			})
		}
	}
	return days, nil
}

// contributionLevel buckets a daily count into the 0-4 intensity scale.
func contributionLevel(count int) int {
	switch {
	case count == 0:
		return 0
	case count <= 3:
		return 1
	case count <= 6:
		return 2
	case count <= 9:
		return 3
	default:
		return 4
	}
}
