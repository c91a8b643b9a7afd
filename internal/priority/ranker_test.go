package priority

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrsmithlabs/briefd/internal/source"
)

func TestRankAllOrdering(t *testing.T) {
	soonEvent := testNow.Add(30 * time.Minute)
	factors := Factors{
		Tasks: []source.Task{
			{ID: "low", Content: "Tidy desk"},
			{ID: "urgent", Content: "Submit filing", Due: dueIn(time.Hour)},
		},
		Events: []source.Event{
			{ID: "e1", Summary: "Standup", Start: &soonEvent},
		},
	}

	ranked := RankAll(factors, testNow)
	require.Len(t, ranked, 3)
	assert.Equal(t, "urgent", ranked[0].ID)
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Score, ranked[i].Score)
	}
}

func TestRankAllEventWindow(t *testing.T) {
	within := testNow.Add(3 * time.Hour)
	tooFar := testNow.Add(9 * time.Hour)
	past := testNow.Add(-time.Hour)

	factors := Factors{Events: []source.Event{
		{ID: "within", Summary: "Soon", Start: &within},
		{ID: "far", Summary: "Later", Start: &tooFar},
		{ID: "past", Summary: "Done", Start: &past},
		{ID: "untimed", Summary: "No start"},
	}}

	ranked := RankAll(factors, testNow)
	require.Len(t, ranked, 1)
	assert.Equal(t, "within", ranked[0].ID)
}

func TestRankAllSkipsCompletedHabits(t *testing.T) {
	doneAt := testNow.Add(-time.Hour)
	factors := Factors{Habits: []source.Habit{
		{ID: "done", Name: "meditate", LastCompletedAt: &doneAt},
		{ID: "pending", Name: "journal"},
	}}

	ranked := RankAll(factors, testNow)
	require.Len(t, ranked, 1)
	assert.Equal(t, "pending", ranked[0].ID)
}

func TestRankAllStableOnTies(t *testing.T) {
	factors := Factors{Tasks: []source.Task{
		{ID: "a", Content: "First"},
		{ID: "b", Content: "Second"},
		{ID: "c", Content: "Third"},
	}}

	ranked := RankAll(factors, testNow)
	require.Len(t, ranked, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{ranked[0].ID, ranked[1].ID, ranked[2].ID})
}

func TestTopPriorities(t *testing.T) {
	factors := Factors{Tasks: []source.Task{
		{ID: "a", Content: "One"},
		{ID: "b", Content: "Two"},
		{ID: "c", Content: "Three"},
		{ID: "d", Content: "Four"},
	}}
	assert.Len(t, TopPriorities(factors, 3, testNow), 3)
	assert.Len(t, TopPriorities(factors, 10, testNow), 4)
}

func TestQuickWins(t *testing.T) {
	factors := Factors{Tasks: []source.Task{
		{ID: "win", Content: "Important but not urgent", Priority: 1},
		{ID: "urgent", Content: "On fire", Priority: 1, Due: dueIn(time.Hour)},
		{ID: "estimated", Content: "Sized work", Priority: 1, DurationMinutes: 60},
		{ID: "minor", Content: "Low stakes", Priority: 4},
	}}

	wins := QuickWins(factors, testNow)
	require.Len(t, wins, 1)
	assert.Equal(t, "win", wins[0].ID)
}

func TestQuickWinsCapAtThree(t *testing.T) {
	factors := Factors{Tasks: []source.Task{
		{ID: "a", Content: "One", Priority: 1},
		{ID: "b", Content: "Two", Priority: 1},
		{ID: "c", Content: "Three", Priority: 1},
		{ID: "d", Content: "Four", Priority: 1},
	}}
	assert.Len(t, QuickWins(factors, testNow), 3)
}

func TestMustDo(t *testing.T) {
	factors := Factors{Tasks: []source.Task{
		{ID: "due-now", Content: "Pay invoice", Due: dueIn(time.Hour)},
		{ID: "someday", Content: "Read book"},
	}}

	urgent := MustDo(factors, testNow)
	require.Len(t, urgent, 1)
	assert.Equal(t, "due-now", urgent[0].ID)
}

func TestMustDoCapAtFive(t *testing.T) {
	var tasks []source.Task
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		tasks = append(tasks, source.Task{ID: id, Content: "Task " + id, Due: dueIn(time.Hour)})
	}
	assert.Len(t, MustDo(Factors{Tasks: tasks}, testNow), 5)
}

func TestCategorizeByTime(t *testing.T) {
	morning := time.Date(2026, 8, 28, 9, 30, 0, 0, time.UTC)
	afternoon := time.Date(2026, 8, 28, 14, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 8, 28, 19, 0, 0, 0, time.UTC)

	items := []PriorityItem{
		{Type: KindEvent, Item: EventItem(source.Event{Start: &morning})},
		{Type: KindEvent, Item: EventItem(source.Event{Start: &afternoon})},
		{Type: KindEvent, Item: EventItem(source.Event{Start: &evening})},
		{Type: KindHabit, Item: HabitItem(source.Habit{TimeOfDay: "evening"})},
		{Type: KindTask, Item: TaskItem(source.Task{Content: "anywhere"})},
	}

	got := CategorizeByTime(items)
	assert.Len(t, got.Morning, 1)
	assert.Len(t, got.Afternoon, 1)
	assert.Len(t, got.Evening, 2)
	assert.Len(t, got.Anytime, 1)
}
