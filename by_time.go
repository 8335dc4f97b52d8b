package rrule

// byHourStage, byMinuteStage, bySecondStage implement spec §4.2.4's
// BYHOUR/BYMINUTE/BYSECOND: structurally identical cross-product
// expanders or plain filters, differing only in which field they touch
// and at which frequency threshold they switch mode.

func byHourStage(r resolvedRule) (Stage, bool) {
	if len(r.ByHour) == 0 {
		return Stage{}, false
	}
	values := r.ByHour
	if r.Freq <= Daily {
		return expanderStage("BYHOUR", func(cal Calendar, in *IntervalSet) *IntervalSet {
			out := emptyIntervalSet()
			for _, item := range in.rawItems() {
				if !item.valid {
					continue
				}
				for _, h := range values {
					cand := item
					cand.Hour = h
					out.add(cand)
				}
			}
			return out
		}), true
	}
	return filterStage("BYHOUR", func(in Instance) bool {
		return containsInt(values, in.Hour)
	}), true
}

func byMinuteStage(r resolvedRule) (Stage, bool) {
	if len(r.ByMinute) == 0 {
		return Stage{}, false
	}
	values := r.ByMinute
	if r.Freq <= Hourly {
		return expanderStage("BYMINUTE", func(cal Calendar, in *IntervalSet) *IntervalSet {
			out := emptyIntervalSet()
			for _, item := range in.rawItems() {
				if !item.valid {
					continue
				}
				for _, m := range values {
					cand := item
					cand.Minute = m
					out.add(cand)
				}
			}
			return out
		}), true
	}
	return filterStage("BYMINUTE", func(in Instance) bool {
		return containsInt(values, in.Minute)
	}), true
}

func bySecondStage(r resolvedRule) (Stage, bool) {
	if len(r.BySecond) == 0 {
		return Stage{}, false
	}
	values := r.BySecond
	// spec §9 Open Questions: never synthesise a :60 leap-second instant
	// that the seed itself didn't already have.
	seedHadLeapSecond := r.dtstart.Second() == 60
	if r.Freq <= Minutely {
		return expanderStage("BYSECOND", func(cal Calendar, in *IntervalSet) *IntervalSet {
			out := emptyIntervalSet()
			for _, item := range in.rawItems() {
				if !item.valid {
					continue
				}
				for _, s := range values {
					if s == 60 && !seedHadLeapSecond {
						continue
					}
					cand := item
					cand.Second = s
					out.add(cand)
				}
			}
			return out
		}), true
	}
	return filterStage("BYSECOND", func(in Instance) bool {
		return containsInt(values, in.Second)
	}), true
}
