package rrule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestByDayStage_MonthlyPrefixedPicksNthOccurrence(t *testing.T) {
	r := resolvedRule{RecurrenceRule: RecurrenceRule{Freq: Monthly, ByDay: []Weekday{FR.Nth(1)}}}
	stage, ok := byDayStage(r)
	require.True(t, ok)

	cal := NewCalendar(time.Monday)
	in := emptyIntervalSet()
	in.add(newSeedInstance(cal, 1997, 8, 1, 9, 0, 0)) // September 1997

	out := stage.Apply(cal, in)
	items := out.Items()
	require.Len(t, items, 1)
	require.Equal(t, 5, items[0].DayOfMonth) // first Friday of Sep 1997
}

func TestByDayStage_WeeklyExpandsEveryListedWeekday(t *testing.T) {
	r := resolvedRule{RecurrenceRule: RecurrenceRule{Freq: Weekly, ByDay: []Weekday{MO, WE, FR}}}
	stage, ok := byDayStage(r)
	require.True(t, ok)

	cal := NewCalendar(time.Monday)
	in := emptyIntervalSet()
	in.add(newSeedInstance(cal, 1997, 8, 2, 9, 0, 0)) // Tuesday in that week

	out := stage.Apply(cal, in)
	items := out.Items()
	require.Len(t, items, 3)
	for _, it := range items {
		wd := WeekdayISO(it.Year, it.Month, it.DayOfMonth)
		require.Contains(t, []int{1, 3, 5}, wd)
	}
}

func TestByDayStage_FilterScopeIgnoresPrefix(t *testing.T) {
	r := resolvedRule{RecurrenceRule: RecurrenceRule{Freq: Daily, ByDay: []Weekday{MO.Nth(2)}}}
	stage, ok := byDayStage(r)
	require.True(t, ok)

	cal := NewCalendar(time.Monday)
	in := emptyIntervalSet()
	in.add(newSeedInstance(cal, 1997, 8, 1, 9, 0, 0)) // a Monday

	out := stage.Apply(cal, in)
	require.Len(t, out.Items(), 1)
}
