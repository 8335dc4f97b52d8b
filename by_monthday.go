package rrule

// byMonthDayStage implements spec §4.2.4's BYMONTHDAY. It runs after
// byMonthStage in the pipeline (spec §2), so item.Month is already
// authoritative — either the seed's own month or one of BYMONTH's
// expanded months.
func byMonthDayStage(r resolvedRule) (Stage, bool) {
	if len(r.ByMonthDay) == 0 {
		return Stage{}, false
	}
	values := r.ByMonthDay
	switch r.Freq {
	case Yearly, Monthly:
		return expanderStage("BYMONTHDAY", func(cal Calendar, in *IntervalSet) *IntervalSet {
			out := emptyIntervalSet()
			for _, item := range in.rawItems() {
				if !item.valid {
					continue
				}
				length := DaysInMonth(item.Year, item.Month)
				for _, v := range values {
					actual, ok := resolveSignedIndex(v, length)
					if !ok {
						continue
					}
					cand := item
					cand.DayOfMonth = actual
					cand.deriveFromYMD(cal)
					out.add(cand)
				}
			}
			return out
		}), true
	default:
		return filterStage("BYMONTHDAY", func(in Instance) bool {
			length := DaysInMonth(in.Year, in.Month)
			if containsInt(values, in.DayOfMonth) {
				return true
			}
			return containsInt(values, in.DayOfMonth-length-1)
		}), true
	}
}
