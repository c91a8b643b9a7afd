package briefing

import (
	"fmt"
	"time"
)

// moodPhrases pair a closing phrase with each mood classification.
var moodPhrases = map[Mood]string{
	MoodProductive:  "Let's have a productive day!",
	MoodBusy:        "It's a busy day, but you've got this!",
	MoodRelaxed:     "Enjoy your relatively light day!",
	MoodChallenging: "Today's packed, but tackle it one step at a time.",
}

// Greeting builds the salutation shown above the briefing: a time-of-day
// greeting for name, plus a phrase matching the day's mood.
func Greeting(b *DailyBriefing, name string, now time.Time) string {
	hour := now.Hour()

	timeGreeting := "Good evening"
	if hour < 12 {
		timeGreeting = "Good morning"
	} else if hour < 17 {
		timeGreeting = "Good afternoon"
	}

	phrase := moodPhrases[b.Summary.OverallMood]
	if phrase == "" {
		phrase = moodPhrases[MoodProductive]
	}

	return fmt.Sprintf("%s, %s! %s", timeGreeting, name, phrase)
}
