// Package priority scores and ranks heterogeneous daily items (tasks,
// events, habits, code-hosting activity) into a single explainable priority
// list.
//
// Scoring is deterministic rule-based arithmetic: every rule that fires
// appends a human-readable justification to the item's Reasoning list, in
// rule order. Nothing here is learned or probabilistic.
package priority

import (
	"github.com/fyrsmithlabs/briefd/internal/source"
	"github.com/fyrsmithlabs/briefd/internal/weather"
)

// Kind discriminates the item union.
type Kind string

const (
	KindTask   Kind = "task"
	KindEvent  Kind = "event"
	KindHabit  Kind = "habit"
	KindGitHub Kind = "github"
)

// Item is a tagged union over the four scoreable record variants. Exactly
// the field matching Kind is non-nil.
type Item struct {
	Kind     Kind
	Task     *source.Task
	Event    *source.Event
	Habit    *source.Habit
	Activity *source.Activity
}

// TaskItem wraps a task record.
func TaskItem(t source.Task) Item { return Item{Kind: KindTask, Task: &t} }

// EventItem wraps an event record.
func EventItem(e source.Event) Item { return Item{Kind: KindEvent, Event: &e} }

// HabitItem wraps a habit record.
func HabitItem(h source.Habit) Item { return Item{Kind: KindHabit, Habit: &h} }

// ActivityItem wraps a code-hosting activity record.
func ActivityItem(a source.Activity) Item { return Item{Kind: KindGitHub, Activity: &a} }

// PriorityItem is the scorer's output for a single item.
//
// Invariant: Score = min(100, 5*Urgency + 5*Importance) with Urgency and
// Importance clamped to [0,10] before use. Reasoning is append-only and
// ordered by rule evaluation; it is never sorted or deduplicated.
type PriorityItem struct {
	ID          string   `json:"id"`
	Type        Kind     `json:"type"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Score       int      `json:"score"`
	Urgency     int      `json:"urgency"`
	Importance  int      `json:"importance"`
	Reasoning   []string `json:"reasoning"`
	Item        Item     `json:"-"`
}

// Factors is the full cross-integration context a scorer consults.
type Factors struct {
	Tasks          []source.Task
	Events         []source.Event
	Weather        *weather.Observation
	Habits         []source.Habit
	Activity       []source.Activity
	EnergyPatterns []source.EnergyPattern
}

// ByTimeOfDay buckets priorities into the part of day they belong to.
type ByTimeOfDay struct {
	Morning   []PriorityItem `json:"morning"`
	Afternoon []PriorityItem `json:"afternoon"`
	Evening   []PriorityItem `json:"evening"`
	Anytime   []PriorityItem `json:"anytime"`
}

func clampScale(v int) int {
	if v < 0 {
		return 0
	}
	if v > 10 {
		return 10
	}
	return v
}
