package timeblock

import (
	"strings"

	"github.com/fyrsmithlabs/briefd/internal/source"
)

// Lexical keyword buckets, checked top to bottom; first match wins.
// These are deliberately crude heuristics, not classifiers.
var (
	quickKeywords  = []string{"email", "call", "reply", "check", "review", "quick", "send", "update"}
	mediumKeywords = []string{"write", "draft", "plan", "meeting", "discuss", "prepare"}
	longKeywords   = []string{"build", "develop", "create", "design", "implement", "project", "research"}

	highEnergyKeywords   = []string{"build", "create", "develop", "implement", "design", "write", "code", "analyze"}
	mediumEnergyKeywords = []string{"review", "plan", "organize", "prepare", "research", "meeting"}
	lowEnergyKeywords    = []string{"email", "check", "update", "send", "reply", "file", "archive"}
)

func titleMatches(title string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(title, kw) {
			return true
		}
	}
	return false
}

// EstimateDuration estimates how many minutes a task needs. An explicit
// duration on the record wins; otherwise the title is matched against the
// quick (20), medium (45), and long (90) keyword buckets in that order.
// Defaults to 30.
func EstimateDuration(task source.Task) int {
	if task.DurationMinutes > 0 {
		return task.DurationMinutes
	}

	title := strings.ToLower(task.Content)
	switch {
	case titleMatches(title, quickKeywords):
		return 20
	case titleMatches(title, mediumKeywords):
		return 45
	case titleMatches(title, longKeywords):
		return 90
	default:
		return 30
	}
}

// EnergyRequirement estimates the energy a task demands on a 0-10 scale. An
// explicit energy level on the record wins; otherwise the title keyword
// buckets decide (high 8, medium 5, low 2). Defaults to 5.
func EnergyRequirement(task source.Task) int {
	switch task.EnergyLevel {
	case "high":
		return 8
	case "medium":
		return 5
	case "low":
		return 2
	}

	title := strings.ToLower(task.Content)
	switch {
	case titleMatches(title, highEnergyKeywords):
		return 8
	case titleMatches(title, mediumEnergyKeywords):
		return 5
	case titleMatches(title, lowEnergyKeywords):
		return 2
	default:
		return 5
	}
}

// SlotEnergy estimates the energy available in a slot on a 0-10 scale.
//
// A historical pattern matching the slot's hour and weekday wins (its 0-100
// score scaled down). Otherwise a fixed default curve applies: morning peak
// 9-11, shoulders at 8-9 and 11-12, post-lunch dip 13-15, afternoon recovery
// 15-17, evening 18-20, late night 4.
func SlotEnergy(slot Slot, patterns []source.EnergyPattern) int {
	hour := slot.Start.Hour()
	dayOfWeek := int(slot.Start.Weekday())

	for _, p := range patterns {
		if p.HourOfDay == hour && p.DayOfWeek == dayOfWeek {
			return p.Score / 10
		}
	}

	switch {
	case hour >= 9 && hour < 11:
		return 9
	case (hour >= 8 && hour < 9) || (hour >= 11 && hour < 12):
		return 7
	case hour >= 13 && hour < 15:
		return 5
	case hour >= 15 && hour < 17:
		return 6
	case hour >= 18 && hour < 20:
		return 5
	case hour >= 20:
		return 4
	default:
		return 6
	}
}
