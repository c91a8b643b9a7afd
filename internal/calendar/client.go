// Package calendar implements the event source against the Google Calendar
// API.
package calendar

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/fyrsmithlabs/briefd/internal/source"
)

// lookaheadDays bounds how far ahead UpcomingEvents looks.
const lookaheadDays = 7

// Client reads events from a single Google calendar.
type Client struct {
	srv        *gcal.Service
	calendarID string
	now        func() time.Time
}

// NewClient creates a calendar client from an OAuth access token. The
// calendarID is usually "primary".
func NewClient(ctx context.Context, token string, calendarID string, opts ...option.ClientOption) (*Client, error) {
	if token == "" {
		return nil, fmt.Errorf("calendar access token not set")
	}
	if calendarID == "" {
		calendarID = "primary"
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	all := append([]option.ClientOption{option.WithTokenSource(ts)}, opts...)
	srv, err := gcal.NewService(ctx, all...)
	if err != nil {
		return nil, fmt.Errorf("create calendar service: %w", err)
	}

	return &Client{srv: srv, calendarID: calendarID, now: time.Now}, nil
}

// NewClientFromService wraps an existing calendar service. Used in tests.
func NewClientFromService(srv *gcal.Service, calendarID string, now func() time.Time) *Client {
	if calendarID == "" {
		calendarID = "primary"
	}
	if now == nil {
		now = time.Now
	}
	return &Client{srv: srv, calendarID: calendarID, now: now}
}

// UpcomingEvents fetches up to max events starting within the next seven
// days, ordered by start time.
func (c *Client) UpcomingEvents(ctx context.Context, max int) ([]source.Event, error) {
	now := c.now()
	return c.list(ctx, now, now.AddDate(0, 0, lookaheadDays), max)
}

// TodayEvents fetches up to max events for the current local day.
func (c *Client) TodayEvents(ctx context.Context, max int) ([]source.Event, error) {
	now := c.now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return c.list(ctx, dayStart, dayStart.AddDate(0, 0, 1), max)
}

func (c *Client) list(ctx context.Context, timeMin, timeMax time.Time, max int) ([]source.Event, error) {
	call := c.srv.Events.List(c.calendarID).
		Context(ctx).
		SingleEvents(true).
		OrderBy("startTime").
		TimeMin(timeMin.Format(time.RFC3339)).
		TimeMax(timeMax.Format(time.RFC3339))
	if max > 0 {
		call = call.MaxResults(int64(max))
	}

	res, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	events := make([]source.Event, 0, len(res.Items))
	for _, item := range res.Items {
		events = append(events, normalizeEvent(item, timeMin.Location()))
	}
	return events, nil
}

// normalizeEvent maps a calendar API event to the pipeline's event record.
// All-day events carry a bare date which resolves to local midnight.
func normalizeEvent(item *gcal.Event, loc *time.Location) source.Event {
	event := source.Event{
		ID:          item.Id,
		Summary:     item.Summary,
		Description: item.Description,
		Location:    item.Location,
		Attendees:   len(item.Attendees),
	}

	if start, allDay, ok := resolveEventTime(item.Start, loc); ok {
		event.Start = &start
		event.AllDay = allDay
	}
	if end, _, ok := resolveEventTime(item.End, loc); ok {
		event.End = &end
	}

	return event
}

func resolveEventTime(edt *gcal.EventDateTime, loc *time.Location) (t time.Time, allDay, ok bool) {
	if edt == nil {
		return time.Time{}, false, false
	}
	if edt.DateTime != "" {
		parsed, err := time.Parse(time.RFC3339, edt.DateTime)
		if err == nil {
			return parsed, false, true
		}
	}
	if edt.Date != "" {
		parsed, err := time.ParseInLocation("2006-01-02", edt.Date, loc)
		if err == nil {
			return parsed, true, true
		}
	}
	return time.Time{}, false, false
}
