package rrule

import "time"

// maxYear bounds runaway iteration the way the teacher's MAXYEAR constant
// did (rrule.go references to MAXYEAR guarding the YEARLY/MONTHLY/day-
// rollover branches); an UNTIL-less, COUNT-less rule still terminates
// rather than iterating forever past a date nobody cares about.
const maxYear = 9999

// FreqIterator is spec §4.1's seed producer: it has no notion of BY-parts
// at all, unlike the teacher's interleaved mask-rebuilding cursor. Each
// call computes the k-th interval's seed directly from DTSTART rather
// than stepping through intermediate candidates, so it costs the same
// whether interval is 1 or 1000.
type FreqIterator struct {
	rule resolvedRule
	cal  Calendar
}

func newFreqIterator(rule resolvedRule, cal Calendar) *FreqIterator {
	return &FreqIterator{rule: rule, cal: cal}
}

// SeedAt returns the seed instance for the k-th outer interval (k = 0, 1,
// 2, ...) and false once the computed year would exceed maxYear.
func (f *FreqIterator) SeedAt(k int) (Instance, bool) {
	r := f.rule
	dy, dm, dd := r.dtstart.Year(), int(r.dtstart.Month())-1, r.dtstart.Day()
	dh, dmin, dsec := r.dtstart.Hour(), r.dtstart.Minute(), r.dtstart.Second()

	switch r.Freq {
	case Yearly:
		ny, nm, nd, valid := AddYears(dy, dm, dd, k*r.Interval)
		if ny > maxYear {
			return Instance{}, false
		}
		return f.seedWithValidity(ny, nm, nd, dh, dmin, dsec, valid), true
	case Monthly:
		ny, nm, nd, valid := AddMonths(dy, dm, dd, k*r.Interval)
		if ny > maxYear {
			return Instance{}, false
		}
		return f.seedWithValidity(ny, nm, nd, dh, dmin, dsec, valid), true
	case Weekly:
		t := r.dtstart.AddDate(0, 0, 7*k*r.Interval)
		if t.Year() > maxYear {
			return Instance{}, false
		}
		return f.seedFromTime(t), true
	case Daily:
		t := r.dtstart.AddDate(0, 0, k*r.Interval)
		if t.Year() > maxYear {
			return Instance{}, false
		}
		return f.seedFromTime(t), true
	case Hourly:
		t := r.dtstart.Add(time.Duration(k*r.Interval) * time.Hour)
		if t.Year() > maxYear {
			return Instance{}, false
		}
		return f.seedFromTime(t), true
	case Minutely:
		t := r.dtstart.Add(time.Duration(k*r.Interval) * time.Minute)
		if t.Year() > maxYear {
			return Instance{}, false
		}
		return f.seedFromTime(t), true
	default: // Secondly
		t := r.dtstart.Add(time.Duration(k*r.Interval) * time.Second)
		if t.Year() > maxYear {
			return Instance{}, false
		}
		return f.seedFromTime(t), true
	}
}

func (f *FreqIterator) seedWithValidity(year, month, day, hour, minute, second int, valid bool) Instance {
	in := newSeedInstance(f.cal, year, month, day, hour, minute, second)
	in.valid = in.valid && valid
	return in
}

func (f *FreqIterator) seedFromTime(t time.Time) Instance {
	return newSeedInstance(f.cal, t.Year(), int(t.Month())-1, t.Day(), t.Hour(), t.Minute(), t.Second())
}
