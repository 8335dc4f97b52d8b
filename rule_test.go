package rrule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestResolve_MonthlyInheritsDtstartDayOfMonth(t *testing.T) {
	dtstart := time.Date(1997, 9, 2, 9, 0, 0, 0, time.UTC)
	r := resolve(RecurrenceRule{Freq: Monthly}, dtstart)
	require.Equal(t, []int{2}, r.ByMonthDay)
}

func TestResolve_WeeklyInheritsDtstartWeekday(t *testing.T) {
	dtstart := time.Date(1997, 9, 2, 9, 0, 0, 0, time.UTC) // Tuesday
	r := resolve(RecurrenceRule{Freq: Weekly}, dtstart)
	require.Len(t, r.ByDay, 1)
	require.Equal(t, TU.Day(), r.ByDay[0].Day())
}

func TestResolve_YearlyInheritsMonthAndDay(t *testing.T) {
	dtstart := time.Date(1997, 9, 2, 9, 0, 0, 0, time.UTC)
	r := resolve(RecurrenceRule{Freq: Yearly}, dtstart)
	require.Equal(t, []int{9}, r.ByMonth)
	require.Equal(t, []int{2}, r.ByMonthDay)
}

func TestResolve_ExplicitByDaySuppressesMonthDayDefault(t *testing.T) {
	dtstart := time.Date(1997, 9, 2, 9, 0, 0, 0, time.UTC)
	r := resolve(RecurrenceRule{Freq: Monthly, ByDay: []Weekday{MO}}, dtstart)
	require.Empty(t, r.ByMonthDay)
}

func TestResolve_IntervalDefaultsToOne(t *testing.T) {
	dtstart := time.Date(1997, 9, 2, 9, 0, 0, 0, time.UTC)
	r := resolve(RecurrenceRule{Freq: Daily}, dtstart)
	require.Equal(t, 1, r.Interval)
}

func TestEffectiveScope_YearlyWithByMonthNarrowsToMonthly(t *testing.T) {
	r := resolvedRule{RecurrenceRule: RecurrenceRule{Freq: Yearly, ByMonth: []int{1}}}
	require.Equal(t, Monthly, r.effectiveScope())
}

func TestEffectiveScope_YearlyWithoutByMonthStaysYearly(t *testing.T) {
	r := resolvedRule{RecurrenceRule: RecurrenceRule{Freq: Yearly}}
	require.Equal(t, Yearly, r.effectiveScope())
}

func TestWeekday_NthAndAccessors(t *testing.T) {
	w := FR.Nth(-1)
	require.Equal(t, -1, w.N())
	require.Equal(t, FR.Day(), w.Day())
}
