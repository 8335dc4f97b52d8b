package rrule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIsLeapYear(t *testing.T) {
	require.True(t, isLeapYear(1996))
	require.True(t, isLeapYear(2000))
	require.False(t, isLeapYear(1900))
	require.False(t, isLeapYear(1997))
}

func TestDaysInMonthFebruary(t *testing.T) {
	require.Equal(t, 29, DaysInMonth(1996, 1))
	require.Equal(t, 28, DaysInMonth(1997, 1))
}

func TestYDayFromDateAndBack(t *testing.T) {
	yday := YDayFromDate(1997, 8, 2) // Sep 2
	require.Equal(t, 245, yday)
	m, d := DateFromYDay(1997, yday)
	require.Equal(t, 8, m)
	require.Equal(t, 2, d)
}

func TestWeekdayISO(t *testing.T) {
	// 1997-09-02 is a Tuesday.
	require.Equal(t, 2, WeekdayISO(1997, 8, 2))
	// 1997-01-05 is a Sunday.
	require.Equal(t, 7, WeekdayISO(1997, 0, 5))
}

func TestWeekInfo_ISOMondayStart(t *testing.T) {
	cal := NewCalendar(time.Monday)
	// 1997-01-01 is a Wednesday; ISO week 1 of 1997 contains it.
	weekYear, week, _ := cal.WeekInfo(1997, 0, 1)
	require.Equal(t, 1997, weekYear)
	require.Equal(t, 1, week)
}

func TestWeekInfo_YearBoundarySpillsForward(t *testing.T) {
	cal := NewCalendar(time.Monday)
	// 1997-12-29 (Monday) starts ISO week 1 of 1998.
	weekYear, week, _ := cal.WeekInfo(1997, 11, 29)
	require.Equal(t, 1998, weekYear)
	require.Equal(t, 1, week)
}

func TestDateForWeek_RoundTripsWeekInfo(t *testing.T) {
	cal := NewCalendar(time.Monday)
	weekYear, week, _ := cal.WeekInfo(1997, 4, 12) // 1997-05-12
	y, m, d := cal.DateForWeek(weekYear, week, WeekdayISO(1997, 4, 12))
	require.Equal(t, 1997, y)
	require.Equal(t, 4, m)
	require.Equal(t, 12, d)
}

func TestAddMonths_ClampsShortMonth(t *testing.T) {
	y, m, d, valid := AddMonths(1997, 0, 31, 1) // Jan 31 + 1mo -> Feb
	require.Equal(t, 1997, y)
	require.Equal(t, 1, m)
	require.Equal(t, 28, d)
	require.False(t, valid)
}

func TestAddMonths_NegativeWrapsYear(t *testing.T) {
	y, m, d, valid := AddMonths(1997, 0, 15, -1)
	require.True(t, valid)
	require.Equal(t, 1996, y)
	require.Equal(t, 11, m)
	require.Equal(t, 15, d)
}

func TestAddYears_ClampsLeapDay(t *testing.T) {
	y, m, d, valid := AddYears(1996, 1, 29, 1)
	require.Equal(t, 1997, y)
	require.Equal(t, 1, m)
	require.Equal(t, 28, d)
	require.False(t, valid)
}
