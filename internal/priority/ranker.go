package priority

import (
	"sort"
	"time"
)

// eventLookaheadHours bounds which events are worth ranking at all.
const eventLookaheadHours = 8

// RankAll scores every relevant item and returns the global priority list,
// sorted by score descending.
//
// Every task is scored unconditionally. Events are scored only when they
// start within the next eight hours. Habits are scored only when not yet
// completed today. The sort is stable, so items with equal scores keep their
// encounter order: tasks first, then events, then habits, each in source
// order.
func RankAll(factors Factors, now time.Time) []PriorityItem {
	scorer := NewScorer(factors, now)
	var all []PriorityItem

	for _, task := range factors.Tasks {
		all = append(all, scorer.Score(TaskItem(task)))
	}

	for _, event := range factors.Events {
		if event.Start == nil {
			continue
		}
		hoursUntil := event.Start.Sub(now).Hours()
		if hoursUntil > 0 && hoursUntil < eventLookaheadHours {
			all = append(all, scorer.Score(EventItem(event)))
		}
	}

	for _, habit := range factors.Habits {
		if !habit.CompletedToday(now) {
			all = append(all, scorer.Score(HabitItem(habit)))
		}
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Score > all[j].Score
	})
	return all
}

// TopPriorities returns the first n ranked items.
func TopPriorities(factors Factors, n int, now time.Time) []PriorityItem {
	ranked := RankAll(factors, now)
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// QuickWins returns up to three tasks that are important but not
// time-critical and carry no explicit duration estimate, in rank order.
func QuickWins(factors Factors, now time.Time) []PriorityItem {
	var wins []PriorityItem
	for _, item := range RankAll(factors, now) {
		if item.Type != KindTask {
			continue
		}
		if item.Importance < 6 || item.Urgency > 7 {
			continue
		}
		if item.Item.Task != nil && item.Item.Task.DurationMinutes > 0 {
			continue
		}
		wins = append(wins, item)
		if len(wins) == 3 {
			break
		}
	}
	return wins
}

// MustDo returns up to five ranked items with urgency 8 or higher, in rank
// order.
func MustDo(factors Factors, now time.Time) []PriorityItem {
	return MustDoFrom(RankAll(factors, now))
}

// MustDoFrom filters an already-ranked priority list down to the must-do
// subset, preserving rank order. The orchestrator uses it to avoid ranking
// twice.
func MustDoFrom(ranked []PriorityItem) []PriorityItem {
	var urgent []PriorityItem
	for _, item := range ranked {
		if item.Urgency >= 8 {
			urgent = append(urgent, item)
			if len(urgent) == 5 {
				break
			}
		}
	}
	return urgent
}
