package rrule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestByWeekNoStage_YearlyExpandsToPinnedWeek(t *testing.T) {
	r := resolvedRule{RecurrenceRule: RecurrenceRule{Freq: Yearly, ByWeekNo: []int{20}}}
	stage, ok := byWeekNoStage(r)
	require.True(t, ok)

	cal := NewCalendar(time.Monday)
	in := emptyIntervalSet()
	in.add(newSeedInstance(cal, 1997, 0, 1, 9, 0, 0))

	out := stage.Apply(cal, in)
	items := out.rawItems()
	require.Len(t, items, 1)
	require.Equal(t, 20, items[0].WeekOfYear)
}

func TestByWeekNoStage_FilterModeChecksWeekMembership(t *testing.T) {
	r := resolvedRule{RecurrenceRule: RecurrenceRule{Freq: Daily, ByWeekNo: []int{20}}}
	stage, ok := byWeekNoStage(r)
	require.True(t, ok)

	cal := NewCalendar(time.Monday)
	// 1997-05-12 falls in ISO week 20 of 1997.
	in := emptyIntervalSet()
	in.add(newSeedInstance(cal, 1997, 4, 12, 9, 0, 0))
	in.add(newSeedInstance(cal, 1997, 0, 1, 9, 0, 0))

	out := stage.Apply(cal, in)
	items := out.Items()
	require.Len(t, items, 1)
	require.Equal(t, 12, items[0].DayOfMonth)
}

func TestByWeekNoStage_AbsentWhenNoValues(t *testing.T) {
	r := resolvedRule{}
	_, ok := byWeekNoStage(r)
	require.False(t, ok)
}
