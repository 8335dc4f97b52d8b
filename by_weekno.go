package rrule

// byWeekNoStage implements spec §4.2.1. BYWEEKNO expands at YEARLY scope
// and, per the RFC 2445 tolerance spec §9 says the core SHOULD accept, at
// MONTHLY scope (MONTHLY freq, or YEARLY+BYMONTH); it filters at every
// finer frequency.
//
// Expansion never re-derives WeekOfYear from the placeholder day/month it
// assigns — it pins WeekOfYear to the value it computed so that a
// following BYDAY stage (spec §4.2.2) can use it as the authoritative
// window, matching the ordering BYWEEKNO -> ... -> BYDAY in spec §2.
func byWeekNoStage(r resolvedRule) (Stage, bool) {
	if len(r.ByWeekNo) == 0 {
		return Stage{}, false
	}
	scope := r.effectiveScope()
	if scope != Yearly && scope != Monthly {
		weekNos := r.ByWeekNo
		return filterStage("BYWEEKNO", func(in Instance) bool {
			yearWeeks := instanceCalendar(r).WeeksInYear(in.Year)
			if in.WeekOfYear > yearWeeks {
				return false
			}
			if containsInt(weekNos, in.WeekOfYear) {
				return true
			}
			return containsInt(weekNos, in.WeekOfYear-1-yearWeeks)
		}), true
	}

	hasDayFollow := len(r.ByDay) > 0 || len(r.ByMonthDay) > 0 || len(r.ByYearDay) > 0
	weekNos := r.ByWeekNo
	monthlyScope := scope == Monthly

	return expanderStage("BYWEEKNO", func(cal Calendar, in *IntervalSet) *IntervalSet {
		out := emptyIntervalSet()
		for _, item := range in.rawItems() {
			if !item.valid {
				continue
			}
			yearWeeks := cal.WeeksInYear(item.Year)
			for _, v := range weekNos {
				actual, ok := resolveSignedIndex(v, yearWeeks)
				if !ok {
					continue
				}
				if !monthlyScope {
					out.add(weekNoYearlyCandidate(cal, item, actual))
					continue
				}
				if !hasDayFollow {
					if c, ok := weekNoMonthlyStrictCandidate(cal, item, actual); ok {
						out.add(c)
					}
					continue
				}
				if c, ok := weekNoMonthlyOverlapCandidate(cal, item, actual); ok {
					out.add(c)
				}
			}
		}
		return out
	}), true
}

// weekNoYearlyCandidate implements submode 1: place the candidate in week
// `actual` of item.Year, preserving item's own weekday as a reasonable
// default in case no BYDAY stage follows to override it.
//
// item.Year is used consistently as the ISO week-year for both this
// computation and any later BYDAY lookup against WeekOfYear. For a week
// that spans a calendar year boundary this can pin Month/Day from the
// adjacent calendar year under the wrong Year value; SanityFilter does
// not currently catch this (the resulting Y/M/D triple is still
// internally well-formed, just semantically off by a few days at the
// boundary).
func weekNoYearlyCandidate(cal Calendar, item Instance, actual int) Instance {
	year, month, day := cal.DateForWeek(item.Year, actual, item.DayOfWeek)
	cand := item
	cand.Year = item.Year // pin to the ISO week-year, not the resolved date's calendar year
	cand.Month, cand.DayOfMonth = month, day
	cand.WeekOfYear = actual
	cand.DayOfYear = clampYDay(cand.Year, month, day)
	cand.DayOfWeek = WeekdayISO(year, month, day)
	return cand
}

// weekNoMonthlyStrictCandidate implements submode 2: only emit if the day
// of the target week with item's own weekday actually falls within the
// seed month.
func weekNoMonthlyStrictCandidate(cal Calendar, item Instance, actual int) (Instance, bool) {
	year, month, day := cal.DateForWeek(item.Year, actual, item.DayOfWeek)
	if year != item.Year || month != item.Month {
		return Instance{}, false
	}
	cand := item
	cand.DayOfMonth = day
	cand.WeekOfYear = actual
	cand.DayOfYear = clampYDay(cand.Year, month, day)
	return cand, true
}

// weekNoMonthlyOverlapCandidate implements submode 3: emit whenever the
// target week overlaps the seed month at all, letting a following
// BYDAY/BYMONTHDAY/BYYEARDAY stage cull out-of-month days. The day field
// is shifted to the part of the week that intersects the seed month.
func weekNoMonthlyOverlapCandidate(cal Calendar, item Instance, actual int) (Instance, bool) {
	start, end := cal.WeekRange(item.Year, actual)
	startsInMonth := int(start.Month())-1 == item.Month && start.Year() == item.Year
	endsInMonth := int(end.Month())-1 == item.Month && end.Year() == item.Year
	if !startsInMonth && !endsInMonth {
		return Instance{}, false
	}
	cand := item
	cand.WeekOfYear = actual
	switch {
	case startsInMonth && endsInMonth:
		cand.DayOfMonth = start.Day() // whole week is inside the month; pin to its start
	case startsInMonth:
		cand.DayOfMonth = DaysInMonth(item.Year, item.Month) // week runs past month end
	default:
		cand.DayOfMonth = 1 // week begins before the month starts
	}
	cand.DayOfYear = clampYDay(cand.Year, cand.Month, cand.DayOfMonth)
	cand.DayOfWeek = WeekdayISO(cand.Year, cand.Month, cand.DayOfMonth)
	return cand, true
}

func clampYDay(year, month, day int) int {
	if month < 0 || month > 11 || day < 1 || day > DaysInMonth(year, month) {
		return 0
	}
	return YDayFromDate(year, month, day)
}

// instanceCalendar is a convenience used by the filter branch, where the
// stage has no pipeline-provided Calendar until Apply is called; filter
// predicates only receive the Instance, so filter-mode BYWEEKNO rebuilds
// a Calendar from the rule's WeekStart directly.
func instanceCalendar(r resolvedRule) Calendar {
	return NewCalendar(timeWeekday(r.WeekStart))
}
