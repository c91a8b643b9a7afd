package briefing

import (
	"fmt"
	"sort"
	"time"

	"github.com/fyrsmithlabs/briefd/internal/source"
)

// Conflict types.
const (
	ConflictTaskDuringMeeting = "task_during_meeting"
	ConflictNoBuffer          = "no_buffer"
)

// minBufferMinutes is the smallest acceptable gap between adjacent meetings.
const minBufferMinutes = 5

// Conflict flags a scheduling problem. Task/Event/Time are set for
// task_during_meeting; Event/SecondEvent/Message for no_buffer.
type Conflict struct {
	Type        string     `json:"type"`
	Task        string     `json:"task,omitempty"`
	Event       string     `json:"event,omitempty"`
	SecondEvent string     `json:"event2,omitempty"`
	Time        *time.Time `json:"time,omitempty"`
	Message     string     `json:"message,omitempty"`
}

// String renders the conflict for terminal output. Each type carries a
// different subset of fields, so rendering branches on Type.
func (c Conflict) String() string {
	switch c.Type {
	case ConflictTaskDuringMeeting:
		s := fmt.Sprintf("Task %q is due during %q", c.Task, c.Event)
		if c.Time != nil {
			s += " at " + c.Time.Format("15:04")
		}
		return s
	case ConflictNoBuffer:
		return fmt.Sprintf("%s: %q -> %q", c.Message, c.Event, c.SecondEvent)
	}
	return c.Message
}

// FindConflicts flags tasks due inside a meeting window and adjacent
// meetings with less than five minutes between them (overlaps included).
func FindConflicts(tasks []source.Task, events []source.Event, loc *time.Location) []Conflict {
	var conflicts []Conflict

	for _, task := range tasks {
		due, ok := task.Due.Time(loc)
		if !ok {
			continue
		}
		for _, event := range events {
			if event.Start == nil {
				continue
			}
			end, _ := event.EndOrStart()
			if !due.Before(*event.Start) && !due.After(end) {
				dueCopy := due
				conflicts = append(conflicts, Conflict{
					Type:  ConflictTaskDuringMeeting,
					Task:  task.Content,
					Event: event.Summary,
					Time:  &dueCopy,
				})
			}
		}
	}

	timed := make([]source.Event, 0, len(events))
	for _, e := range events {
		if e.Start != nil {
			timed = append(timed, e)
		}
	}
	sort.SliceStable(timed, func(i, j int) bool {
		return timed[i].Start.Before(*timed[j].Start)
	})

	for i := 0; i+1 < len(timed); i++ {
		currentEnd, _ := timed[i].EndOrStart()
		nextStart := *timed[i+1].Start

		if nextStart.Sub(currentEnd).Minutes() < minBufferMinutes {
			conflicts = append(conflicts, Conflict{
				Type:        ConflictNoBuffer,
				Event:       timed[i].Summary,
				SecondEvent: timed[i+1].Summary,
				Message:     "No buffer between meetings",
			})
		}
	}

	return conflicts
}
