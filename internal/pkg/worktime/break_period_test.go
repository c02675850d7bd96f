package worktime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalMinutes(t *testing.T) {
	assert.Equal(t, 0, TotalMinutes(nil, false))

	day := []BreakPeriod{
		{Name: "Lunch", Interval: iv("12:00", "13:00")},
		{Name: "Coffee", Interval: iv("15:00", "15:15"), IsFlexible: true},
	}
	assert.Equal(t, 75, TotalMinutes(day, false))

	night := []BreakPeriod{
		{Name: "Midnight", Interval: iv("23:30", "00:30")},
		{Name: "Meal", Interval: iv("02:00", "02:30")},
	}
	assert.Equal(t, 90, TotalMinutes(night, true))
	assert.Equal(t, 30, TotalMinutes(night, false), "inverted break is worth nothing in a day frame")

	// no overlap correction
	dup := []BreakPeriod{
		{Name: "Lunch", Interval: iv("12:00", "13:00")},
		{Name: "Lunch", Interval: iv("12:00", "13:00")},
	}
	assert.Equal(t, 120, TotalMinutes(dup, false))
}

func TestFirstOverlap(t *testing.T) {
	periods := []BreakPeriod{
		{Interval: iv("12:00", "13:00")},
		{Interval: iv("15:00", "16:00")},
		{Interval: iv("12:30", "13:30")},
		{Interval: iv("15:30", "16:30")},
	}
	i, j, ok := FirstOverlap(periods, false)
	assert.True(t, ok)
	assert.Equal(t, 0, i)
	assert.Equal(t, 2, j)

	_, _, ok = FirstOverlap(periods[:2], false)
	assert.False(t, ok)

	_, _, ok = FirstOverlap(nil, true)
	assert.False(t, ok)
}
