package timeblock

import (
	"fmt"
	"strings"
	"time"
)

// FormatSchedule renders suggestions as a human-readable daily schedule,
// one block per suggestion with its reasoning.
func FormatSchedule(suggestions []Suggestion) string {
	var b strings.Builder
	b.WriteString("Suggested Schedule:\n\n")

	for _, s := range suggestions {
		title := s.Task.Content
		if title == "" {
			title = "Untitled"
		}
		fmt.Fprintf(&b, "%s - %s: %s\n",
			s.Slot.Start.Format(time.Kitchen),
			s.Slot.End.Format(time.Kitchen),
			title)
		fmt.Fprintf(&b, "  💡 %s\n\n", strings.Join(s.Reasoning, ", "))
	}

	return b.String()
}
