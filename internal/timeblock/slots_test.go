package timeblock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrsmithlabs/briefd/internal/source"
)

var day = time.Date(2026, 8, 28, 7, 0, 0, 0, time.UTC)

func at(hour, minute int) *time.Time {
	t := time.Date(2026, 8, 28, hour, minute, 0, 0, time.UTC)
	return &t
}

func TestFreeSlotsEmptyDay(t *testing.T) {
	slots := FreeSlots(nil, day, DefaultWindow)
	require.Len(t, slots, 1)
	assert.Equal(t, *at(8, 0), slots[0].Start)
	assert.Equal(t, *at(22, 0), slots[0].End)
	assert.Equal(t, 14*60, slots[0].DurationMinutes)
	assert.Equal(t, SlotFree, slots[0].Kind)
}

func TestFreeSlotsTiling(t *testing.T) {
	events := []source.Event{
		{Summary: "Standup", Start: at(9, 0), End: at(9, 30)},
		{Summary: "Review", Start: at(13, 0), End: at(14, 0)},
	}

	slots := FreeSlots(events, day, DefaultWindow)
	require.Len(t, slots, 3)

	assert.Equal(t, *at(8, 0), slots[0].Start)
	assert.Equal(t, *at(9, 0), slots[0].End)
	assert.Equal(t, *at(9, 30), slots[1].Start)
	assert.Equal(t, *at(13, 0), slots[1].End)
	assert.Equal(t, *at(14, 0), slots[2].Start)
	assert.Equal(t, *at(22, 0), slots[2].End)

	// Slots never overlap the events or each other.
	for i := 1; i < len(slots); i++ {
		assert.False(t, slots[i].Start.Before(slots[i-1].End))
	}
}

func TestFreeSlotsDropsShortGaps(t *testing.T) {
	events := []source.Event{
		{Summary: "A", Start: at(9, 0), End: at(9, 50)},
		{Summary: "B", Start: at(10, 0), End: at(11, 0)}, // 10min gap after A
	}

	slots := FreeSlots(events, day, DefaultWindow)
	for _, s := range slots {
		assert.GreaterOrEqual(t, s.DurationMinutes, 15)
	}
}

func TestFreeSlotsUnsortedAndOverlappingEvents(t *testing.T) {
	events := []source.Event{
		{Summary: "Late", Start: at(15, 0), End: at(16, 0)},
		{Summary: "Early", Start: at(9, 0), End: at(11, 0)},
		{Summary: "Inside early", Start: at(10, 0), End: at(10, 30)},
	}

	slots := FreeSlots(events, day, DefaultWindow)
	require.Len(t, slots, 3)
	assert.Equal(t, *at(11, 0), slots[1].Start)
	assert.Equal(t, *at(15, 0), slots[1].End)
}

func TestFreeSlotsIgnoresUntimedAndOutOfWindowEvents(t *testing.T) {
	early := time.Date(2026, 8, 28, 6, 0, 0, 0, time.UTC)
	earlyEnd := time.Date(2026, 8, 28, 7, 0, 0, 0, time.UTC)
	events := []source.Event{
		{Summary: "No time"},
		{Summary: "Before window", Start: &early, End: &earlyEnd},
	}

	slots := FreeSlots(events, day, DefaultWindow)
	require.Len(t, slots, 1)
	assert.Equal(t, *at(8, 0), slots[0].Start)
}

func TestEstimateDuration(t *testing.T) {
	tests := []struct {
		name string
		task source.Task
		want int
	}{
		{"explicit duration wins", source.Task{Content: "build the thing", DurationMinutes: 25}, 25},
		{"quick keyword", source.Task{Content: "Reply to email"}, 20},
		{"medium keyword", source.Task{Content: "Draft proposal"}, 45},
		{"long keyword", source.Task{Content: "Implement caching layer"}, 90},
		{"quick beats long on both", source.Task{Content: "Review the design"}, 20},
		{"default", source.Task{Content: "Groceries"}, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EstimateDuration(tt.task))
		})
	}
}

func TestEnergyRequirement(t *testing.T) {
	tests := []struct {
		name string
		task source.Task
		want int
	}{
		{"explicit high wins over low keyword", source.Task{Content: "check email", EnergyLevel: "high"}, 8},
		{"explicit low", source.Task{Content: "build system", EnergyLevel: "low"}, 2},
		{"high keyword", source.Task{Content: "Design schema"}, 8},
		{"medium keyword", source.Task{Content: "Organize files"}, 5},
		{"low keyword", source.Task{Content: "Archive old docs"}, 2},
		{"default", source.Task{Content: "Groceries"}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EnergyRequirement(tt.task))
		})
	}
}

func TestSlotEnergy(t *testing.T) {
	slotAt := func(hour int) Slot {
		return Slot{Start: time.Date(2026, 8, 28, hour, 0, 0, 0, time.UTC)}
	}

	assert.Equal(t, 9, SlotEnergy(slotAt(10), nil))
	assert.Equal(t, 7, SlotEnergy(slotAt(8), nil))
	assert.Equal(t, 7, SlotEnergy(slotAt(11), nil))
	assert.Equal(t, 5, SlotEnergy(slotAt(14), nil))
	assert.Equal(t, 6, SlotEnergy(slotAt(16), nil))
	assert.Equal(t, 5, SlotEnergy(slotAt(19), nil))
	assert.Equal(t, 4, SlotEnergy(slotAt(21), nil))
	assert.Equal(t, 6, SlotEnergy(slotAt(12), nil))
}

func TestSlotEnergyPatternWins(t *testing.T) {
	slot := Slot{Start: time.Date(2026, 8, 28, 14, 0, 0, 0, time.UTC)} // a Friday
	patterns := []source.EnergyPattern{
		{HourOfDay: 14, DayOfWeek: int(time.Friday), Score: 90},
		{HourOfDay: 14, DayOfWeek: int(time.Monday), Score: 10},
	}
	assert.Equal(t, 9, SlotEnergy(slot, patterns))
}
