package priority

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// outdoorKeywords mark tasks whose value depends on the weather.
// Case-insensitive substring match against the task title.
var outdoorKeywords = []string{"outdoor", "walk", "run", "errand", "shopping", "park"}

// Scorer computes urgency/importance/score triples for items against a fixed
// set of cross-integration factors and a fixed reference instant. It has no
// mutable state and never fails: absent or malformed fields degrade to
// defaults.
type Scorer struct {
	factors Factors
	now     time.Time
}

// NewScorer creates a scorer. All time arithmetic is relative to now, so
// callers (and tests) control the clock.
func NewScorer(factors Factors, now time.Time) *Scorer {
	return &Scorer{factors: factors, now: now}
}

// Score computes the priority of a single item.
//
// Rules are applied in a fixed order and each appends its justification to
// Reasoning as it fires:
//
//  1. time pressure (task due / event start thresholds, tightest wins)
//  2. source-declared task priority
//  3. habit streak protection
//  4. weather fit for outdoor tasks
//  5. upcoming-meeting proximity for tasks
//  6. stale pull request age
//
// Urgency and importance start at 5, may exceed the scale mid-computation,
// and are clamped to [0,10] only at the end.
func (s *Scorer) Score(item Item) PriorityItem {
	var reasoning []string
	urgency := 5
	importance := 5

	// Rule 1: time-based urgency.
	if item.Kind == KindTask && item.Task != nil {
		if due, ok := item.Task.Due.Time(s.now.Location()); ok {
			hoursUntilDue := due.Sub(s.now).Hours()
			switch {
			case hoursUntilDue < 2:
				urgency = 10
				reasoning = append(reasoning, "Due in less than 2 hours!")
			case hoursUntilDue < 6:
				urgency = 8
				reasoning = append(reasoning, "Due today within 6 hours")
			case hoursUntilDue < 24:
				urgency = 6
				reasoning = append(reasoning, "Due later today")
			}
		}
	}

	if item.Kind == KindEvent && item.Event != nil && item.Event.Start != nil {
		hoursUntilStart := item.Event.Start.Sub(s.now).Hours()
		switch {
		case hoursUntilStart < 1:
			urgency = 10
			reasoning = append(reasoning, "Starting in less than an hour")
		case hoursUntilStart < 3:
			urgency = 8
			reasoning = append(reasoning, "Starting soon")
		}
	}

	// Rule 2: priority declared by the task source (1 = highest).
	if item.Kind == KindTask && item.Task != nil && item.Task.Priority > 0 {
		importance = 11 - item.Task.Priority*2
		if importance < 1 {
			importance = 1
		}
		if item.Task.Priority == 1 {
			reasoning = append(reasoning, "Marked as P1 (highest priority)")
		}
	}

	// Rule 3: habit streak protection.
	if item.Kind == KindHabit && item.Habit != nil {
		streak := item.Habit.Streak
		if streak >= 7 {
			importance = 9
			urgency = 8
			reasoning = append(reasoning, fmt.Sprintf("Protect your %d-day streak! 🔥", streak))
		} else if streak >= 3 {
			importance = 7
			reasoning = append(reasoning, fmt.Sprintf("Keep building your %d-day streak", streak))
		}
	}

	// Rule 4: weather fit for outdoor tasks.
	if s.factors.Weather != nil && item.Kind == KindTask && item.Task != nil {
		title := strings.ToLower(item.Task.Content)
		outdoor := false
		for _, kw := range outdoorKeywords {
			if strings.Contains(title, kw) {
				outdoor = true
				break
			}
		}

		if outdoor {
			temp := s.factors.Weather.Temperature
			code := s.factors.Weather.Code

			if code <= 3 && temp >= 15 && temp <= 30 {
				importance += 2
				reasoning = append(reasoning, "Perfect weather for outdoor activities! ☀️")
			} else if code >= 50 {
				importance -= 2
				reasoning = append(reasoning, "Consider postponing - weather is poor 🌧️")
			}
		}
	}

	// Rule 5: tasks get a nudge when meetings are coming up.
	if item.Kind == KindTask {
		hasUpcomingMeetings := false
		for _, ev := range s.factors.Events {
			if ev.Start == nil {
				continue
			}
			hoursUntil := ev.Start.Sub(s.now).Hours()
			if hoursUntil > 0 && hoursUntil < 4 {
				hasUpcomingMeetings = true
				break
			}
		}
		if hasUpcomingMeetings {
			reasoning = append(reasoning, "Do this before your upcoming meetings")
			urgency++
		}
	}

	// Rule 6: pull requests left open for 3+ days.
	if item.Kind == KindGitHub && item.Activity != nil && item.Activity.IsPullRequest() {
		ageDays := s.now.Sub(item.Activity.CreatedAt).Hours() / 24
		if ageDays > 3 {
			importance = 8
			reasoning = append(reasoning, "PR has been open for 3+ days")
		}
	}

	urgency = clampScale(urgency)
	importance = clampScale(importance)

	score := urgency*5 + importance*5
	if score > 100 {
		score = 100
	}

	return PriorityItem{
		ID:          itemID(item),
		Type:        item.Kind,
		Title:       itemTitle(item),
		Description: itemDescription(item),
		Score:       score,
		Urgency:     urgency,
		Importance:  importance,
		Reasoning:   reasoning,
		Item:        item,
	}
}

// itemID returns the source record's ID, or a generated one for records
// without.
func itemID(item Item) string {
	var id string
	switch item.Kind {
	case KindTask:
		if item.Task != nil {
			id = item.Task.ID
		}
	case KindEvent:
		if item.Event != nil {
			id = item.Event.ID
		}
	case KindHabit:
		if item.Habit != nil {
			id = item.Habit.ID
		}
	case KindGitHub:
		if item.Activity != nil {
			id = item.Activity.ID
		}
	}
	if id == "" {
		id = fmt.Sprintf("%s-%s", item.Kind, uuid.NewString())
	}
	return id
}

// itemTitle resolves the display title: task content, then event summary,
// then habit name, then "Untitled".
func itemTitle(item Item) string {
	switch item.Kind {
	case KindTask:
		if item.Task != nil && item.Task.Content != "" {
			return item.Task.Content
		}
	case KindEvent:
		if item.Event != nil && item.Event.Summary != "" {
			return item.Event.Summary
		}
	case KindHabit:
		if item.Habit != nil && item.Habit.Name != "" {
			return item.Habit.Name
		}
	}
	return "Untitled"
}

// itemDescription resolves the secondary display line: the record's own
// description, falling back to an event's location.
func itemDescription(item Item) string {
	switch item.Kind {
	case KindTask:
		if item.Task != nil {
			return item.Task.Description
		}
	case KindEvent:
		if item.Event != nil {
			if item.Event.Description != "" {
				return item.Event.Description
			}
			return item.Event.Location
		}
	}
	return ""
}
