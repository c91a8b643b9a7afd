package briefing

// determineMood classifies the day from raw workload counts. The branches
// are checked in order; the first match wins.
func determineMood(taskCount, eventCount, urgentCount int) Mood {
	switch {
	case urgentCount >= 5 || (taskCount >= 15 && eventCount >= 5):
		return MoodChallenging
	case taskCount >= 10 || eventCount >= 4:
		return MoodBusy
	case taskCount <= 5 && eventCount <= 2:
		return MoodRelaxed
	default:
		return MoodProductive
	}
}
