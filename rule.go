package rrule

import "time"

// Frequency denotes the outer periodicity of a rule. The ordering is
// significant: several BY-part classification rules in spec §4.2 are
// expressed as "expander when freq is at least as coarse as X", which this
// package implements as plain integer comparison (e.g. freq <= Daily).
type Frequency int

const (
	Yearly Frequency = iota
	Monthly
	Weekly
	Daily
	Hourly
	Minutely
	Secondly
)

// Weekday identifies a weekday with an optional signed occurrence-within-
// scope prefix (BYDAY's "2MO" / "-1FR" forms, spec §3).
type Weekday struct {
	day int // 0 = Monday ... 6 = Sunday
	n   int // 0 = unprefixed
}

// Nth returns the weekday with a positional prefix attached.
func (w Weekday) Nth(n int) Weekday { return Weekday{day: w.day, n: n} }

// N returns the occurrence prefix (0 if unprefixed).
func (w Weekday) N() int { return w.n }

// Day returns the weekday index, 0 (Monday) through 6 (Sunday).
func (w Weekday) Day() int { return w.day }

// Weekday constants, Monday-first to match Instance.DayOfWeek's ISO
// numbering once adjusted by +1.
var (
	MO = Weekday{day: 0}
	TU = Weekday{day: 1}
	WE = Weekday{day: 2}
	TH = Weekday{day: 3}
	FR = Weekday{day: 4}
	SA = Weekday{day: 5}
	SU = Weekday{day: 6}
)

func isoFromWeekday(w Weekday) int { return w.day + 1 }

// RecurrenceRule is the immutable, structured rule consumed by the
// pipeline (spec §3's input contract). It is produced by an external
// parser; this package assumes per-part value lists are already
// range-validated but does not assume cross-part consistency.
type RecurrenceRule struct {
	Freq     Frequency
	Interval int // default 1 when zero
	WeekStart Weekday // default Monday

	Until time.Time // mutually exclusive with Count
	Count int

	ByMonth    []int
	ByWeekNo   []int
	ByYearDay  []int
	ByMonthDay []int
	ByDay      []Weekday
	ByHour     []int
	ByMinute   []int
	BySecond   []int
	BySetPos   []int
}

// resolvedRule is the rule after construction-time defaulting: interval
// floored to 1, and the implicit BY-part defaults RFC 5545 attaches to a
// rule with no explicit BY-parts (spec §4.1's note that FreqIterator's
// seed copies all non-frequency fields from DTSTART is only the first
// half of that story — the rest is which BY-parts get silently seeded).
type resolvedRule struct {
	RecurrenceRule
	dtstart time.Time
}

// resolve applies the teacher's defaulting behavior (rrule.go:149-217)
// against the new field names: a rule with no day-selecting BY-part at
// all inherits one derived from DTSTART so that, e.g., a bare
// FREQ=MONTHLY rule recurs on DTSTART's day-of-month rather than on every
// day of the month.
func resolve(rule RecurrenceRule, dtstart time.Time) resolvedRule {
	r := rule
	if r.Interval == 0 {
		r.Interval = 1
	}
	noDaySelector := len(r.ByWeekNo) == 0 && len(r.ByYearDay) == 0 &&
		len(r.ByMonthDay) == 0 && len(r.ByDay) == 0

	if noDaySelector {
		switch r.Freq {
		case Yearly:
			if len(r.ByMonth) == 0 {
				r.ByMonth = []int{int(dtstart.Month())}
			}
			r.ByMonthDay = []int{dtstart.Day()}
		case Monthly:
			r.ByMonthDay = []int{dtstart.Day()}
		case Weekly:
			r.ByDay = []Weekday{{day: toMondayFirst(dtstart.Weekday())}}
		}
	}

	if len(r.ByHour) == 0 && r.Freq < Hourly {
		r.ByHour = []int{dtstart.Hour()}
	}
	if len(r.ByMinute) == 0 && r.Freq < Minutely {
		r.ByMinute = []int{dtstart.Minute()}
	}
	if len(r.BySecond) == 0 && r.Freq < Secondly {
		r.BySecond = []int{dtstart.Second()}
	}

	return resolvedRule{RecurrenceRule: r, dtstart: dtstart}
}

func toMondayFirst(wd time.Weekday) int {
	return int((wd + 6) % 7)
}

// timeWeekday converts a Monday-first Weekday back into a stdlib
// time.Weekday (Sunday-first), the form Calendar expects.
func timeWeekday(w Weekday) time.Weekday {
	return time.Weekday((w.day + 1) % 7)
}

// effectiveScope returns the narrowed scope spec's glossary describes:
// YEARLY+BYMONTH behaves like MONTHLY for BYWEEKNO/BYDAY prefix-legality
// purposes. Every other frequency maps to itself.
func (r resolvedRule) effectiveScope() Frequency {
	if r.Freq == Yearly && len(r.ByMonth) > 0 {
		return Monthly
	}
	return r.Freq
}
