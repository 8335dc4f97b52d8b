package rrule

import "time"

// Instance is an in-flight candidate carried between pipeline stages
// (spec §3). It is a value: stages that alter it copy rather than mutate
// shared state.
type Instance struct {
	Year       int
	Month      int // 0-11
	DayOfMonth int // 1-31
	DayOfYear  int // 1-366
	DayOfWeek  int // 1 = Monday ... 7 = Sunday (ISO)
	WeekOfYear int // 1-53
	Hour       int
	Minute     int
	Second     int // 0-60, tolerating a leap-second seed

	// valid is cleared by any stage that produces a calendar-impossible
	// date (e.g. a clamped AddMonths, or a BYYEARDAY value with no
	// matching day in a non-leap year). SanityFilter drops these; it is
	// not exported because nothing outside the pipeline should ever see
	// an instance in this state.
	valid bool
}

// newSeedInstance builds the DTSTART-derived instance for year/month/day,
// copying dtstart's time-of-day fields, and deriving the dependent fields
// via cal.
func newSeedInstance(cal Calendar, year, month, day, hour, minute, second int) Instance {
	in := Instance{Year: year, Month: month, DayOfMonth: day, Hour: hour, Minute: minute, Second: second, valid: true}
	in.deriveFromYMD(cal)
	return in
}

// deriveFromYMD recomputes DayOfYear/DayOfWeek/WeekOfYear from
// Year/Month/DayOfMonth, maintaining the spec §3 cross-field invariant.
// Any stage that changes Year/Month/DayOfMonth must call this before
// passing the instance downstream.
func (in *Instance) deriveFromYMD(cal Calendar) {
	if in.Month < 0 || in.Month > 11 || in.DayOfMonth < 1 || in.DayOfMonth > DaysInMonth(in.Year, in.Month) {
		in.valid = false
		return
	}
	in.DayOfYear = YDayFromDate(in.Year, in.Month, in.DayOfMonth)
	in.DayOfWeek = WeekdayISO(in.Year, in.Month, in.DayOfMonth)
	_, week, _ := cal.WeekInfo(in.Year, in.Month, in.DayOfMonth)
	in.WeekOfYear = week
}

// deriveFromYDay recomputes Month/DayOfMonth/DayOfWeek/WeekOfYear from
// Year/DayOfYear. Used by stages (BYYEARDAY, BYWEEKNO) whose natural unit
// is an offset into the year rather than a month/day pair.
func (in *Instance) deriveFromYDay(cal Calendar) {
	if in.DayOfYear < 1 || in.DayOfYear > DaysInYear(in.Year) {
		in.valid = false
		return
	}
	in.Month, in.DayOfMonth = DateFromYDay(in.Year, in.DayOfYear)
	in.DayOfWeek = WeekdayISO(in.Year, in.Month, in.DayOfMonth)
	_, week, _ := cal.WeekInfo(in.Year, in.Month, in.DayOfMonth)
	in.WeekOfYear = week
}

// Time renders the instance as an absolute time.Time in loc. Seconds above
// 59 (the leap-second tolerance carried in the field, spec §3) are folded
// forward by time.Date's own normalization.
func (in Instance) Time(loc *time.Location) time.Time {
	return time.Date(in.Year, time.Month(in.Month+1), in.DayOfMonth, in.Hour, in.Minute, in.Second, 0, loc)
}

// before reports whether in sorts strictly before other under the
// (year, month, day, hour, minute, second) ordering of spec §3's
// IntervalSet.
func (in Instance) before(other Instance) bool {
	if in.Year != other.Year {
		return in.Year < other.Year
	}
	if in.Month != other.Month {
		return in.Month < other.Month
	}
	if in.DayOfMonth != other.DayOfMonth {
		return in.DayOfMonth < other.DayOfMonth
	}
	if in.Hour != other.Hour {
		return in.Hour < other.Hour
	}
	if in.Minute != other.Minute {
		return in.Minute < other.Minute
	}
	return in.Second < other.Second
}

func (in Instance) equal(other Instance) bool {
	return in.Year == other.Year && in.Month == other.Month && in.DayOfMonth == other.DayOfMonth &&
		in.Hour == other.Hour && in.Minute == other.Minute && in.Second == other.Second
}
