package rrule

// byMonthStage implements spec §4.2.4's BYMONTH: an expander at YEARLY
// scope (duplicating each candidate across every listed month, preserving
// day-of-month and letting later stages/SanityFilter reject an
// impossible day), a filter otherwise.
func byMonthStage(r resolvedRule) (Stage, bool) {
	if len(r.ByMonth) == 0 {
		return Stage{}, false
	}
	if r.Freq == Yearly {
		months := r.ByMonth
		return expanderStage("BYMONTH", func(cal Calendar, in *IntervalSet) *IntervalSet {
			out := emptyIntervalSet()
			for _, item := range in.rawItems() {
				if !item.valid {
					continue
				}
				for _, m := range months {
					cand := item
					cand.Month = m - 1
					cand.deriveFromYMD(cal)
					out.add(cand)
				}
			}
			return out
		}), true
	}
	months := r.ByMonth
	return filterStage("BYMONTH", func(in Instance) bool {
		return containsInt(months, in.Month+1)
	}), true
}
