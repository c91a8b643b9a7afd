package briefing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fyrsmithlabs/briefd/internal/source"
)

func briefingWithMood(mood Mood) *DailyBriefing {
	return &DailyBriefing{Summary: Summary{OverallMood: mood}}
}

func TestGreetingTimeOfDay(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{6, "Good morning"},
		{11, "Good morning"},
		{12, "Good afternoon"},
		{16, "Good afternoon"},
		{17, "Good evening"},
		{23, "Good evening"},
	}
	for _, tt := range tests {
		now := time.Date(2026, 8, 28, tt.hour, 0, 0, 0, time.UTC)
		got := Greeting(briefingWithMood(MoodProductive), "Sam", now)
		assert.Contains(t, got, tt.want+", Sam!", "hour %d", tt.hour)
	}
}

func TestGreetingMoodPhrase(t *testing.T) {
	now := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		mood Mood
		want string
	}{
		{MoodProductive, "Let's have a productive day!"},
		{MoodBusy, "It's a busy day, but you've got this!"},
		{MoodRelaxed, "Enjoy your relatively light day!"},
		{MoodChallenging, "Today's packed, but tackle it one step at a time."},
		{Mood("unknown"), "Let's have a productive day!"},
	}
	for _, tt := range tests {
		got := Greeting(briefingWithMood(tt.mood), "Sam", now)
		assert.Contains(t, got, tt.want, "mood %s", tt.mood)
	}
}

func TestFocusScore(t *testing.T) {
	assert.Equal(t, 50, FocusScore(nil, nil, nil))

	tasks := []source.Task{{ID: "1"}, {ID: "2"}}
	events := []source.Event{{ID: "e"}}
	activity := []source.Activity{{ID: "a"}}
	assert.Equal(t, 50+20+5+5, FocusScore(tasks, events, activity))

	many := make([]source.Task, 20)
	assert.Equal(t, 100, FocusScore(many, events, activity))
}
