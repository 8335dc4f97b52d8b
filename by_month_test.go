package rrule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestByMonthStage_ExpandsAtYearlyScope(t *testing.T) {
	r := resolvedRule{RecurrenceRule: RecurrenceRule{Freq: Yearly, ByMonth: []int{1, 3}}}
	stage, ok := byMonthStage(r)
	require.True(t, ok)

	cal := NewCalendar(time.Monday)
	in := emptyIntervalSet()
	in.add(newSeedInstance(cal, 1997, 0, 31, 9, 0, 0))

	out := stage.Apply(cal, in)
	items := out.Items()
	require.Len(t, items, 2)
	require.Equal(t, 0, items[0].Month)
	require.Equal(t, 2, items[1].Month)
}

func TestByMonthStage_ExpansionDropsImpossibleDay(t *testing.T) {
	r := resolvedRule{RecurrenceRule: RecurrenceRule{Freq: Yearly, ByMonth: []int{1, 2}}}
	stage, ok := byMonthStage(r)
	require.True(t, ok)

	cal := NewCalendar(time.Monday)
	in := emptyIntervalSet()
	in.add(newSeedInstance(cal, 1997, 0, 31, 9, 0, 0))

	out := stage.Apply(cal, in)
	// February 31 is invalid and excluded from Items(); only January 31 survives.
	items := out.Items()
	require.Len(t, items, 1)
	require.Equal(t, 0, items[0].Month)
}

func TestByMonthStage_FiltersAtFinerScope(t *testing.T) {
	r := resolvedRule{RecurrenceRule: RecurrenceRule{Freq: Monthly, ByMonth: []int{9}}}
	stage, ok := byMonthStage(r)
	require.True(t, ok)

	cal := NewCalendar(time.Monday)
	in := emptyIntervalSet()
	in.add(newSeedInstance(cal, 1997, 8, 2, 9, 0, 0))
	in.add(newSeedInstance(cal, 1997, 9, 2, 9, 0, 0))

	out := stage.Apply(cal, in)
	require.Len(t, out.Items(), 1)
}
