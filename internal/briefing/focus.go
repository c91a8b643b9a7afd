package briefing

import "github.com/fyrsmithlabs/briefd/internal/source"

// FocusScore is the crude scalar "showed up and has things going on" score a
// dashboard widget displays. It is not part of the ranking pipeline: 50 base
// points plus 10 per task, 5 per event, and 5 per code-activity record,
// capped at 100.
func FocusScore(tasks []source.Task, events []source.Event, activity []source.Activity) int {
	score := 50
	score += len(tasks) * 10
	score += len(events) * 5
	score += len(activity) * 5

	if score > 100 {
		score = 100
	}
	return score
}
