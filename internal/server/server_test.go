package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrsmithlabs/briefd/internal/briefing"
	"github.com/fyrsmithlabs/briefd/internal/config"
)

type stubService struct {
	briefing *briefing.DailyBriefing
	greeting string
	focus    int
}

func (s stubService) Generate(ctx context.Context) *briefing.DailyBriefing { return s.briefing }
func (s stubService) Greeting(b *briefing.DailyBriefing) string            { return s.greeting }
func (s stubService) FocusScore(ctx context.Context) int                   { return s.focus }

func newTestServer(t *testing.T, svc BriefingService) *Server {
	t.Helper()
	cfg := config.ServerConfig{Port: 0, ShutdownTimeout: config.Duration(time.Second)}
	return New(cfg, svc, nil)
}

func testBriefing() *briefing.DailyBriefing {
	return &briefing.DailyBriefing{
		Date: time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC),
		Summary: briefing.Summary{
			TotalTasks:     3,
			WeatherSummary: "21°C, Clear sky",
			OverallMood:    briefing.MoodProductive,
		},
		IntegrationStatus: map[string]bool{"todoist": true, "weather": false},
	}
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, stubService{})

	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "briefd", resp.Service)
}

func TestBriefingEndpoint(t *testing.T) {
	srv := newTestServer(t, stubService{briefing: testBriefing()})

	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/briefing", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got briefing.DailyBriefing
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 3, got.Summary.TotalTasks)
	assert.Equal(t, briefing.MoodProductive, got.Summary.OverallMood)
	assert.False(t, got.IntegrationStatus["weather"])
}

func TestGreetingEndpoint(t *testing.T) {
	srv := newTestServer(t, stubService{
		briefing: testBriefing(),
		greeting: "Good morning, Sam! Let's have a productive day!",
	})

	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/greeting", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp GreetingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Good morning, Sam! Let's have a productive day!", resp.Greeting)
	assert.Equal(t, "productive", resp.Mood)
}

func TestFocusScoreEndpoint(t *testing.T) {
	srv := newTestServer(t, stubService{focus: 85})

	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/focus-score", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp FocusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 85, resp.Score)
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t, stubService{})

	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStartShutsDownOnContextCancel(t *testing.T) {
	cfg := config.ServerConfig{Port: 0, ShutdownTimeout: config.Duration(time.Second)}
	srv := New(cfg, stubService{briefing: testBriefing()}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Start(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, http.ErrServerClosed)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not shut down")
	}
}
