package rrule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestByMonthDayStage_ExpandsNegativeIndexAtMonthlyScope(t *testing.T) {
	r := resolvedRule{RecurrenceRule: RecurrenceRule{Freq: Monthly, ByMonthDay: []int{-1}}}
	stage, ok := byMonthDayStage(r)
	require.True(t, ok)

	cal := NewCalendar(time.Monday)
	in := emptyIntervalSet()
	in.add(newSeedInstance(cal, 1997, 8, 4, 9, 0, 0)) // September: 30 days

	out := stage.Apply(cal, in)
	items := out.Items()
	require.Len(t, items, 1)
	require.Equal(t, 30, items[0].DayOfMonth)
}

func TestByMonthDayStage_FiltersAtFinerScope(t *testing.T) {
	r := resolvedRule{RecurrenceRule: RecurrenceRule{Freq: Daily, ByMonthDay: []int{-1}}}
	stage, ok := byMonthDayStage(r)
	require.True(t, ok)

	cal := NewCalendar(time.Monday)
	in := emptyIntervalSet()
	in.add(newSeedInstance(cal, 1997, 8, 30, 9, 0, 0)) // last day of September
	in.add(newSeedInstance(cal, 1997, 8, 15, 9, 0, 0))

	out := stage.Apply(cal, in)
	items := out.Items()
	require.Len(t, items, 1)
	require.Equal(t, 30, items[0].DayOfMonth)
}
