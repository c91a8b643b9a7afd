// Package timeblock computes free calendar slots and greedily matches tasks
// to them by energy, duration, and proximity.
package timeblock

import (
	"sort"
	"time"

	"github.com/fyrsmithlabs/briefd/internal/source"
)

// SlotKind classifies a time slot.
type SlotKind string

const (
	SlotFree   SlotKind = "free"
	SlotBusy   SlotKind = "busy"
	SlotBuffer SlotKind = "buffer"
)

// Slot is a contiguous span of the planning day.
// Invariant: End is after Start and DurationMinutes is the floor of the
// span in minutes.
type Slot struct {
	Start           time.Time `json:"start"`
	End             time.Time `json:"end"`
	DurationMinutes int       `json:"durationMinutes"`
	Kind            SlotKind  `json:"kind"`
}

// Window is the planning day's bounds, in local hours.
type Window struct {
	StartHour int
	EndHour   int
}

// DefaultWindow plans between 08:00 and 22:00 local.
var DefaultWindow = Window{StartHour: 8, EndHour: 22}

// minSlotMinutes drops gaps too short to schedule anything into.
const minSlotMinutes = 15

// FreeSlots returns the non-overlapping, time-ordered free slots of the
// given day, within the window.
//
// Events without a start instant are ignored. Events fully outside the
// window are skipped; an event straddling a window edge is clipped
// implicitly because the cursor only ever advances. Gaps shorter than 15
// minutes are dropped.
func FreeSlots(events []source.Event, day time.Time, window Window) []Slot {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), window.StartHour, 0, 0, 0, day.Location())
	dayEnd := time.Date(day.Year(), day.Month(), day.Day(), window.EndHour, 0, 0, 0, day.Location())

	timed := make([]source.Event, 0, len(events))
	for _, e := range events {
		if e.Start != nil {
			timed = append(timed, e)
		}
	}
	sort.SliceStable(timed, func(i, j int) bool {
		return timed[i].Start.Before(*timed[j].Start)
	})

	var slots []Slot
	cursor := dayStart

	for _, event := range timed {
		eventStart := *event.Start
		eventEnd, _ := event.EndOrStart()

		if eventEnd.Before(dayStart) || eventStart.After(dayEnd) {
			continue
		}

		if eventStart.After(cursor) {
			if minutes := int(eventStart.Sub(cursor).Minutes()); minutes >= minSlotMinutes {
				slots = append(slots, Slot{
					Start:           cursor,
					End:             eventStart,
					DurationMinutes: minutes,
					Kind:            SlotFree,
				})
			}
		}

		if eventEnd.After(cursor) {
			cursor = eventEnd
		}
	}

	if cursor.Before(dayEnd) {
		if minutes := int(dayEnd.Sub(cursor).Minutes()); minutes >= minSlotMinutes {
			slots = append(slots, Slot{
				Start:           cursor,
				End:             dayEnd,
				DurationMinutes: minutes,
				Kind:            SlotFree,
			})
		}
	}

	return slots
}
