package timeblock

import (
	"fmt"
	"sort"
	"time"

	"github.com/fyrsmithlabs/briefd/internal/source"
)

// assignBufferMinutes separates a placed task from the remainder of its slot.
const assignBufferMinutes = 5

// Suggestion proposes a slot for a task. EnergyMatch is 10 minus the
// distance between the slot's energy and the task's requirement.
type Suggestion struct {
	Task        source.Task `json:"task"`
	Slot        Slot        `json:"suggestedSlot"`
	Reasoning   []string    `json:"reasoning"`
	EnergyMatch int         `json:"energyMatch"`
}

// Planner allocates tasks to free slots for a single day.
type Planner struct {
	window Window
	now    time.Time
}

// NewPlanner creates a planner for the day containing now. A zero window
// falls back to DefaultWindow.
func NewPlanner(window Window, now time.Time) *Planner {
	if window.StartHour == 0 && window.EndHour == 0 {
		window = DefaultWindow
	}
	return &Planner{window: window, now: now}
}

// Suggest greedily allocates tasks to free slots.
//
// Tasks are taken in ascending source priority (missing priority counts as
// 5), so higher-priority tasks pick their slot first. For each task, every
// pooled slot long enough is scored by
//
//	match = 0.5*energyMatch + 0.3*durationMatch + 0.2*proximity
//
// and the best slot (first encountered on ties) is carved out of the pool:
// the suggestion covers start..start+duration, and whatever remains after a
// 5-minute buffer is pushed back into the pool as a fresh free slot. The
// pool mutation makes this inherently sequential and order-dependent; a task
// with no qualifying slot simply gets no suggestion.
func (p *Planner) Suggest(tasks []source.Task, events []source.Event, patterns []source.EnergyPattern) []Suggestion {
	var suggestions []Suggestion
	pool := FreeSlots(events, p.now, p.window)

	ordered := make([]source.Task, len(tasks))
	copy(ordered, tasks)
	sort.SliceStable(ordered, func(i, j int) bool {
		return effectivePriority(ordered[i]) < effectivePriority(ordered[j])
	})

	for _, task := range ordered {
		taskDuration := EstimateDuration(task)
		taskEnergy := EnergyRequirement(task)

		bestIdx := -1
		bestMatch := 0.0

		for i, slot := range pool {
			if slot.DurationMinutes < taskDuration {
				continue
			}

			slotEnergy := SlotEnergy(slot, patterns)
			energyMatch := float64(10 - abs(slotEnergy-taskEnergy))
			durationMatch := float64(slot.DurationMinutes) / float64(taskDuration) * 5
			if durationMatch > 10 {
				durationMatch = 10
			}
			hoursFromNow := slot.Start.Sub(p.now).Hours()
			if hoursFromNow > 10 {
				hoursFromNow = 10
			}
			proximity := 10 - hoursFromNow

			match := energyMatch*0.5 + durationMatch*0.3 + proximity*0.2
			if match > bestMatch {
				bestMatch = match
				bestIdx = i
			}
		}

		if bestIdx < 0 {
			continue
		}

		chosen := pool[bestIdx]
		slotEnergy := SlotEnergy(chosen, patterns)
		energyMatch := 10 - abs(slotEnergy-taskEnergy)

		var reasoning []string
		reasoning = append(reasoning, fmt.Sprintf("Available %dmin slot at %s",
			chosen.DurationMinutes, chosen.Start.Format(time.Kitchen)))
		if energyMatch >= 8 {
			reasoning = append(reasoning, "Perfect energy match for this task type")
		} else if energyMatch >= 6 {
			reasoning = append(reasoning, "Good energy level for this task")
		}
		if slotEnergy >= 8 && taskEnergy >= 7 {
			reasoning = append(reasoning, "Peak productivity time - great for deep work")
		}
		if float64(chosen.DurationMinutes) > float64(taskDuration)*1.5 {
			reasoning = append(reasoning, "Extra buffer time available if needed")
		}

		taskEnd := chosen.Start.Add(time.Duration(taskDuration) * time.Minute)
		suggestions = append(suggestions, Suggestion{
			Task: task,
			Slot: Slot{
				Start:           chosen.Start,
				End:             taskEnd,
				DurationMinutes: taskDuration,
				Kind:            SlotFree,
			},
			Reasoning:   reasoning,
			EnergyMatch: energyMatch,
		})

		// Carve the chosen slot out of the pool, returning the tail after
		// the buffer as a fresh slot.
		pool = append(pool[:bestIdx], pool[bestIdx+1:]...)
		remainingStart := taskEnd.Add(assignBufferMinutes * time.Minute)
		if remainingStart.Before(chosen.End) {
			pool = append(pool, Slot{
				Start:           remainingStart,
				End:             chosen.End,
				DurationMinutes: int(chosen.End.Sub(remainingStart).Minutes()),
				Kind:            SlotFree,
			})
		}
	}

	return suggestions
}

func effectivePriority(t source.Task) int {
	if t.Priority == 0 {
		return 5
	}
	return t.Priority
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
