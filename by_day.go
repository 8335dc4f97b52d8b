package rrule

import "time"

// byDayStage implements spec §4.2.2. BYDAY is the most combinatorially
// involved BY-part: it expands at YEARLY, MONTHLY, and WEEKLY scope (each
// with its own window and prefix-legality rule) and filters otherwise.
func byDayStage(r resolvedRule) (Stage, bool) {
	if len(r.ByDay) == 0 {
		return Stage{}, false
	}

	if r.Freq == Weekly {
		days := r.ByDay
		weekStart := timeWeekday(r.WeekStart)
		return expanderStage("BYDAY", func(cal Calendar, in *IntervalSet) *IntervalSet {
			out := emptyIntervalSet()
			for _, item := range in.rawItems() {
				if !item.valid {
					continue
				}
				base := time.Date(item.Year, time.Month(item.Month+1), item.DayOfMonth, 0, 0, 0, 0, time.UTC)
				weekStartDate := base.AddDate(0, 0, -dayIndex(base.Weekday(), weekStart))
				for _, wd := range days {
					target := weekStartDate.AddDate(0, 0, dayIndex(time.Weekday(isoFromWeekday(wd)%7), weekStart))
					cand := item
					cand.Year, cand.Month, cand.DayOfMonth = target.Year(), int(target.Month())-1, target.Day()
					cand.deriveFromYMD(cal)
					out.add(cand)
				}
			}
			return out
		}), true
	}

	scope := r.effectiveScope()
	if scope == Yearly || scope == Monthly {
		useWeekWindow := len(r.ByWeekNo) > 0
		prefixLegal := true // scope is already restricted to Yearly/Monthly here
		days := r.ByDay
		return expanderStage("BYDAY", func(cal Calendar, in *IntervalSet) *IntervalSet {
			out := emptyIntervalSet()
			for _, item := range in.rawItems() {
				if !item.valid {
					continue
				}
				var win []dateTriple
				if useWeekWindow {
					win = weekWindow(cal, item.Year, item.WeekOfYear)
				} else if scope == Monthly {
					win = monthWindow(item.Year, item.Month)
				} else {
					win = yearWindow(item.Year)
				}
				for _, wd := range days {
					n := wd.N()
					if !prefixLegal {
						n = 0
					}
					target := isoFromWeekday(wd)
					var matches []dateTriple
					for _, dt := range win {
						// A BYWEEKNO week at MONTHLY scope may overlap an
						// adjacent month; only the seed month's days count.
						if useWeekWindow && scope == Monthly && (dt.year != item.Year || dt.month != item.Month) {
							continue
						}
						if WeekdayISO(dt.year, dt.month, dt.day) == target {
							matches = append(matches, dt)
						}
					}
					if n == 0 {
						for _, dt := range matches {
							out.add(buildYMDCandidate(cal, item, dt))
						}
					} else if dt, ok := pick(matches, n); ok {
						out.add(buildYMDCandidate(cal, item, dt))
					}
				}
			}
			return out
		}), true
	}

	// Daily, Hourly, Minutely, Secondly: filter. A positional prefix is
	// illegal at this scope and is treated as a plain weekday (spec
	// §4.2.2), so only the weekday component is consulted.
	days := r.ByDay
	return filterStage("BYDAY", func(in Instance) bool {
		for _, wd := range days {
			if isoFromWeekday(wd) == in.DayOfWeek {
				return true
			}
		}
		return false
	}), true
}

// dateTriple is a plain (year, month 0-11, day) tuple used to enumerate a
// BYDAY/BYYEARDAY candidate window before an Instance is built from it.
type dateTriple struct {
	year, month, day int
}

func monthWindow(year, month int) []dateTriple {
	dim := DaysInMonth(year, month)
	win := make([]dateTriple, dim)
	for d := 1; d <= dim; d++ {
		win[d-1] = dateTriple{year, month, d}
	}
	return win
}

func yearWindow(year int) []dateTriple {
	n := DaysInYear(year)
	win := make([]dateTriple, n)
	for yday := 1; yday <= n; yday++ {
		m, d := DateFromYDay(year, yday)
		win[yday-1] = dateTriple{year, m, d}
	}
	return win
}

// weekWindow enumerates the 7 calendar days of ISO-like week `week` of
// weekYear, in ascending order.
func weekWindow(cal Calendar, weekYear, week int) []dateTriple {
	start, _ := cal.WeekRange(weekYear, week)
	win := make([]dateTriple, 7)
	for i := 0; i < 7; i++ {
		d := start.AddDate(0, 0, i)
		win[i] = dateTriple{d.Year(), int(d.Month()) - 1, d.Day()}
	}
	return win
}

func buildYMDCandidate(cal Calendar, item Instance, dt dateTriple) Instance {
	cand := item
	cand.Year, cand.Month, cand.DayOfMonth = dt.year, dt.month, dt.day
	cand.deriveFromYMD(cal)
	return cand
}
