package codehost

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(context.Background(), "test-token", "octocat",
		WithBaseURLs(srv.URL+"/", srv.URL+"/graphql"))
	require.NoError(t, err)
	return client
}

func TestNewClientValidation(t *testing.T) {
	_, err := NewClient(context.Background(), "", "octocat")
	assert.ErrorContains(t, err, "token not set")

	_, err = NewClient(context.Background(), "tok", "")
	assert.ErrorContains(t, err, "username not set")
}

func TestRecentActivity(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/octocat/events", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "30", r.URL.Query().Get("per_page"))
		fmt.Fprint(w, `[
			{
				"id": "1001",
				"type": "PullRequestEvent",
				"repo": {"name": "octocat/hello"},
				"created_at": "2026-08-25T10:00:00Z"
			},
			{
				"id": "1002",
				"type": "PushEvent",
				"repo": {"name": "octocat/hello"},
				"created_at": "2026-08-27T08:30:00Z"
			}
		]`)
	})

	client := newTestClient(t, mux)
	activity, err := client.RecentActivity(context.Background())
	require.NoError(t, err)
	require.Len(t, activity, 2)

	assert.Equal(t, "1001", activity[0].ID)
	assert.Equal(t, "PullRequestEvent", activity[0].Kind)
	assert.Equal(t, "octocat/hello", activity[0].Repo)
	assert.True(t, activity[0].IsPullRequest())
	assert.False(t, activity[1].IsPullRequest())
	assert.Equal(t, 2026, activity[0].CreatedAt.Year())
}

func TestContributions(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/graphql", func(w http.ResponseWriter, r *http.Request) {
		var req graphqlRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "octocat", req.Variables["userName"])
		assert.Contains(t, req.Query, "contributionCalendar")

		fmt.Fprint(w, `{"data": {"user": {"contributionsCollection": {"contributionCalendar": {
			"totalContributions": 20,
			"weeks": [
				{"contributionDays": [
					{"contributionCount": 0, "date": "2026-08-24"},
					{"contributionCount": 2, "date": "2026-08-25"},
					{"contributionCount": 5, "date": "2026-08-26"},
					{"contributionCount": 8, "date": "2026-08-27"},
					{"contributionCount": 12, "date": "2026-08-28"}
				]}
			]
		}}}}}`)
	})

	client := newTestClient(t, mux)
	days, err := client.Contributions(context.Background())
	require.NoError(t, err)
	require.Len(t, days, 5)

	wantLevels := []int{0, 1, 2, 3, 4}
	for i, day := range days {
		assert.Equal(t, wantLevels[i], day.Level, "day %s", day.Date)
	}
	assert.Equal(t, 12, days[4].Count)
}

func TestContributionsServerError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/graphql", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	client := newTestClient(t, mux)
	_, err := client.Contributions(context.Background())
	assert.ErrorContains(t, err, "status 502")
}

func TestContributionLevel(t *testing.T) {
	tests := []struct {
		count int
		want  int
	}{
		{0, 0}, {1, 1}, {3, 1}, {4, 2}, {6, 2}, {7, 3}, {9, 3}, {10, 4}, {50, 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, contributionLevel(tt.count), "count %d", tt.count)
	}
}
