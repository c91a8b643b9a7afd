// Package briefing assembles the daily briefing: it gathers every
// integration with settle-all semantics, runs the priority and time-block
// engines, detects schedule conflicts, and derives mood and insight text.
package briefing

import (
	"time"

	"github.com/fyrsmithlabs/briefd/internal/priority"
	"github.com/fyrsmithlabs/briefd/internal/timeblock"
)

// Mood is the day's overall classification.
type Mood string

const (
	MoodProductive  Mood = "productive"
	MoodBusy        Mood = "busy"
	MoodRelaxed     Mood = "relaxed"
	MoodChallenging Mood = "challenging"
)

// Summary holds the briefing's headline numbers.
type Summary struct {
	TotalTasks      int    `json:"totalTasks"`
	TotalEvents     int    `json:"totalEvents"`
	CompletedHabits int    `json:"completedHabits"`
	WeatherSummary  string `json:"weatherSummary"`
	OverallMood     Mood   `json:"overallMood"`
}

// Priorities holds the three derived priority subsets.
type Priorities struct {
	Top3      []priority.PriorityItem `json:"top3"`
	QuickWins []priority.PriorityItem `json:"quickWins"`
	MustDo    []priority.PriorityItem `json:"mustDo"`
}

// Insights holds the rule-generated advice text. Each list is ordered by
// rule evaluation order, not by importance.
type Insights struct {
	WeatherImpact      []string `json:"weatherImpact"`
	ScheduleAdvice     []string `json:"scheduleAdvice"`
	EnergyOptimization []string `json:"energyOptimization"`
	HabitReminders     []string `json:"habitReminders"`
}

// Schedule holds the planner output and detected conflicts.
type Schedule struct {
	Suggestions []timeblock.Suggestion `json:"suggestions"`
	Conflicts   []Conflict             `json:"conflicts"`
}

// DailyBriefing is the one synthesized artifact per invocation. It is a
// derived snapshot: computed once, never patched in place.
type DailyBriefing struct {
	Date              time.Time       `json:"date"`
	Summary           Summary         `json:"summary"`
	Priorities        Priorities      `json:"priorities"`
	Insights          Insights        `json:"insights"`
	Schedule          Schedule        `json:"schedule"`
	IntegrationStatus map[string]bool `json:"integrationStatus"`
}
