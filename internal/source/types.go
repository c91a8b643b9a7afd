// Package source defines the normalized records the briefing pipeline
// consumes, the provider interfaces the external integrations implement, and
// the settle-all Gather that fans out across them.
package source

import (
	"time"
)

// Task is a normalized task record. Priority follows the Todoist convention:
// 1 is highest, 4 is lowest, 0 means unset.
type Task struct {
	ID              string     `json:"id"`
	Content         string     `json:"content"`
	Description     string     `json:"description,omitempty"`
	Priority        int        `json:"priority,omitempty"`
	Completed       bool       `json:"completed"`
	Due             *Due       `json:"due,omitempty"`
	Labels          []string   `json:"labels,omitempty"`
	DurationMinutes int        `json:"durationMinutes,omitempty"` // 0 = no explicit estimate
	EnergyLevel     string     `json:"energyLevel,omitempty"`     // "", "high", "medium", "low"
}

// Due carries a task deadline as either a bare date or a full instant.
type Due struct {
	Date     string     `json:"date,omitempty"` // YYYY-MM-DD
	Datetime *time.Time `json:"datetime,omitempty"`
	Text     string     `json:"string,omitempty"` // source's human-readable form
}

// Time resolves the due instant. A datetime wins; a bare date resolves to
// local midnight in loc. Returns false when the task has no usable deadline.
func (d *Due) Time(loc *time.Location) (time.Time, bool) {
	if d == nil {
		return time.Time{}, false
	}
	if d.Datetime != nil {
		return *d.Datetime, true
	}
	if d.Date != "" {
		t, err := time.ParseInLocation("2006-01-02", d.Date, loc)
		if err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Event is a normalized calendar event. Start and End are nil for records the
// source returned without usable instants; AllDay marks date-only events,
// whose Start/End resolve to local midnight.
type Event struct {
	ID          string     `json:"id"`
	Summary     string     `json:"summary"`
	Description string     `json:"description,omitempty"`
	Start       *time.Time `json:"start,omitempty"`
	End         *time.Time `json:"end,omitempty"`
	AllDay      bool       `json:"allDay,omitempty"`
	Location    string     `json:"location,omitempty"`
	Attendees   int        `json:"attendees,omitempty"`
}

// EndOrStart returns the event end, falling back to the start instant for
// events without one. ok is false when neither is set.
func (e Event) EndOrStart() (time.Time, bool) {
	if e.End != nil {
		return *e.End, true
	}
	if e.Start != nil {
		return *e.Start, true
	}
	return time.Time{}, false
}

// Habit is a normalized habit record. Persistence of the streak and
// last-completed state belongs to the habit store, not the briefing core.
type Habit struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Streak          int        `json:"streak"`
	LastCompletedAt *time.Time `json:"lastCompletedAt,omitempty"`
	TimeOfDay       string     `json:"timeOfDay,omitempty"` // "", "morning", "afternoon", "evening"
}

// CompletedToday reports whether the habit was completed on or after local
// midnight of now's day.
func (h Habit) CompletedToday(now time.Time) bool {
	if h.LastCompletedAt == nil {
		return false
	}
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return !h.LastCompletedAt.Before(midnight)
}

// Activity is a single code-hosting activity event.
type Activity struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"` // e.g. "PullRequestEvent", "PushEvent"
	Repo      string    `json:"repo,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// IsPullRequest reports whether the activity record is a pull request.
func (a Activity) IsPullRequest() bool {
	return a.Kind == "PullRequestEvent" || a.Kind == "pullRequest"
}

// ContributionDay is one day of the contribution calendar. Level buckets
// Count into the familiar 0-4 intensity scale.
type ContributionDay struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int    `json:"count"`
	Level int    `json:"level"`
}

// EnergyPattern is an observed productivity score for an (hour, weekday)
// cell, on a 0-100 scale.
type EnergyPattern struct {
	HourOfDay int `json:"hourOfDay"`
	DayOfWeek int `json:"dayOfWeek"` // time.Weekday numbering, Sunday = 0
	Score     int `json:"score"`
}
