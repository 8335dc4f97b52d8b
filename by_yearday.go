package rrule

// byYearDayStage implements spec §4.2.4's BYYEARDAY. It expands at
// YEARLY, MONTHLY, and WEEKLY scope (the latter two per the spec's
// "RFC 2445 tolerance" column) and filters otherwise. Since the interval
// set for MONTHLY/WEEKLY scope is bounded to one month/week (spec §3),
// expansion constrains each resolved year-day to fall inside the
// candidate's current month/week — otherwise a single BYYEARDAY value
// could leak occurrences into an interval set that doesn't own it.
func byYearDayStage(r resolvedRule) (Stage, bool) {
	if len(r.ByYearDay) == 0 {
		return Stage{}, false
	}
	values := r.ByYearDay
	switch r.Freq {
	case Yearly, Monthly, Weekly:
		freq := r.Freq
		return expanderStage("BYYEARDAY", func(cal Calendar, in *IntervalSet) *IntervalSet {
			out := emptyIntervalSet()
			for _, item := range in.rawItems() {
				if !item.valid {
					continue
				}
				length := DaysInYear(item.Year)
				var itemWeekYear, itemWeek int
				if freq == Weekly {
					itemWeekYear, itemWeek, _ = cal.WeekInfo(item.Year, item.Month, item.DayOfMonth)
				}
				for _, v := range values {
					actual, ok := resolveSignedIndex(v, length)
					if !ok {
						continue
					}
					cand := item
					cand.DayOfYear = actual
					cand.deriveFromYDay(cal)
					if !cand.valid {
						continue
					}
					switch freq {
					case Monthly:
						if cand.Month != item.Month {
							continue
						}
					case Weekly:
						wy, wk, _ := cal.WeekInfo(cand.Year, cand.Month, cand.DayOfMonth)
						if wy != itemWeekYear || wk != itemWeek {
							continue
						}
					}
					out.add(cand)
				}
			}
			return out
		}), true
	default:
		return filterStage("BYYEARDAY", func(in Instance) bool {
			length := DaysInYear(in.Year)
			if containsInt(values, in.DayOfYear) {
				return true
			}
			return containsInt(values, in.DayOfYear-length-1)
		}), true
	}
}
