package rrule

import "time"

// Iterator is the public pull-driver spec §6 describes: Next/Peek/
// FastForward, with no way to observe an Instance's internal validity
// flag. Construction is the only place an error can occur; once built, an
// Iterator either yields an Instance or reports exhaustion — it never
// returns a runtime error (spec §7).
type Iterator struct {
	rule resolvedRule
	cal  Calendar
	freq *FreqIterator
	pipe []Stage
	sink *limitSink

	loc *time.Location

	k       int // next outer interval index FreqIterator has not yet produced
	buffer  []Instance
	lastOut *Instance

	peeked    *Instance
	hasPeeked bool
}

// NewIterator validates rule against dtstart and, if it passes, returns a
// ready-to-pull Iterator. Construction-time failures are exactly spec §7's
// InvalidSeed and RuleUnsatisfiable; nothing past this point ever returns
// an error.
func NewIterator(rule RecurrenceRule, dtstart time.Time) (*Iterator, error) {
	if !dateIsValid(dtstart) {
		return nil, InvalidSeed
	}
	if err := validateBounds(rule); err != nil {
		return nil, err
	}

	// Weekday's zero value already equals MO, so an unset WeekStart
	// defaults to Monday without needing a separate check.
	cal := NewCalendar(timeWeekday(rule.WeekStart))

	r := resolve(rule, dtstart)
	if err := checkSatisfiable(r); err != nil {
		return nil, err
	}

	it := &Iterator{
		rule: r,
		cal:  cal,
		freq: newFreqIterator(r, cal),
		pipe: buildPipeline(r),
		sink: newLimitSink(r),
		loc:  dtstart.Location(),
	}
	return it, nil
}

// dateIsValid exists for spec §7's InvalidSeed path. A time.Time is always
// a valid instant by the time Go code holds one -- time.Date normalizes
// out-of-range fields forward at construction rather than preserving an
// invalid state -- so this is a no-op kept as the documented hook a future
// parser integration (accepting raw Y/M/D ints instead of a time.Time)
// would plug into.
func dateIsValid(t time.Time) bool {
	return true
}

// checkSatisfiable rejects the narrow class of rules spec §7 says can be
// recognised impossible purely from their static fields, without running
// the pipeline: a BYMONTH list with no value in [1, 12] is already caught
// by validateBounds, so this covers the cross-field cases validateBounds
// cannot — e.g. UNTIL strictly before DTSTART.
func checkSatisfiable(r resolvedRule) error {
	if !r.Until.IsZero() && r.Until.Before(r.dtstart) {
		return &RuleUnsatisfiable{Reason: "Until is before DTSTART"}
	}
	return nil
}

// Next returns the next instance's time and true, or the zero time.Time and false
// once the rule is exhausted (COUNT reached, UNTIL passed, or the
// 1,000-empty-interval Drained heuristic of spec §4.4 tripped).
func (it *Iterator) Next() (time.Time, bool) {
	if it.hasPeeked {
		it.hasPeeked = false
		p := it.peeked
		it.peeked = nil
		if p == nil {
			return time.Time{}, false
		}
		return p.Time(it.loc), true
	}
	in, ok := it.next()
	if !ok {
		return time.Time{}, false
	}
	return in.Time(it.loc), true
}

// Peek reports the next instance Next() would return, without consuming
// it (spec §6).
func (it *Iterator) Peek() (time.Time, bool) {
	if !it.hasPeeked {
		in, ok := it.next()
		if ok {
			it.peeked = &in
		} else {
			it.peeked = nil
		}
		it.hasPeeked = true
	}
	if it.peeked == nil {
		return time.Time{}, false
	}
	return it.peeked.Time(it.loc), true
}

// FastForward discards instances strictly before `to`, the shortcut spec
// §6 asks for so a caller rendering a visible window doesn't have to pull
// and throw away every instance before it. It degrades to repeated Next()
// calls for sub-daily frequencies, where there is no cheaper closed-form
// jump; for Yearly/Monthly/Weekly/Daily frequencies without COUNT it
// advances FreqIterator's interval index directly instead of pulling each
// intermediate interval through the pipeline. A rule with COUNT is always
// walked instance by instance, so skipped instances still count.
func (it *Iterator) FastForward(to time.Time) {
	if it.hasPeeked {
		if it.peeked == nil || !it.peeked.Time(it.loc).Before(to) {
			return
		}
		it.hasPeeked = false
		it.peeked = nil
	}

	if it.rule.Freq <= Daily && it.rule.Count == 0 && len(it.buffer) == 0 {
		if skip := it.intervalsBefore(to); skip > it.k {
			it.k = skip
		}
	}

	for {
		in, ok := it.peekInternal()
		if !ok || !in.Time(it.loc).Before(to) {
			return
		}
		it.next()
	}
}

func (it *Iterator) peekInternal() (Instance, bool) {
	for len(it.buffer) == 0 {
		if !it.fillBuffer() {
			return Instance{}, false
		}
	}
	return it.buffer[0], true
}

// next drains the buffer one instance at a time, refilling it from
// successive outer intervals as needed.
func (it *Iterator) next() (Instance, bool) {
	for len(it.buffer) == 0 {
		if !it.fillBuffer() {
			return Instance{}, false
		}
	}
	in := it.buffer[0]
	it.buffer = it.buffer[1:]
	return in, true
}

// fillBuffer pulls the next outer interval through the full pipeline --
// FreqIterator, the BY-part stages, SanityFilter, and the limit sink --
// and stores whatever survives. It returns false once FreqIterator is
// exhausted or the limit sink has reached a terminal state.
func (it *Iterator) fillBuffer() bool {
	if it.sink.Done() {
		return false
	}
	seed, ok := it.freq.SeedAt(it.k)
	if !ok {
		return false
	}
	it.k++

	set := NewIntervalSet(seed)
	for _, stage := range it.pipe {
		set = stage.Apply(it.cal, set)
	}

	sane := sanityFilter(set, it.dtstartInstance(), it.lastOut)
	accepted := it.sink.accept(sane)
	if len(accepted) > 0 {
		it.lastOut = &accepted[len(accepted)-1]
		it.buffer = accepted
		return true
	}
	return !it.sink.Done()
}

func (it *Iterator) dtstartInstance() Instance {
	d := it.rule.dtstart
	return newSeedInstance(it.cal, d.Year(), int(d.Month())-1, d.Day(), d.Hour(), d.Minute(), d.Second())
}

// intervalsBefore estimates how many outer intervals lie strictly before
// `to`, for FastForward's Yearly/Monthly/Weekly/Daily shortcut. It is
// intentionally conservative (floor, never overshoots into intervals that
// might contain `to` or later) since fillBuffer still walks forward one
// interval at a time from wherever this lands.
func (it *Iterator) intervalsBefore(to time.Time) int {
	d := it.rule.dtstart
	if !to.After(d) {
		return 0
	}
	switch it.rule.Freq {
	case Yearly:
		years := to.Year() - d.Year()
		if years <= 0 {
			return 0
		}
		return (years - 1) / it.rule.Interval
	case Monthly:
		months := (to.Year()-d.Year())*12 + int(to.Month()) - int(d.Month())
		if months <= 0 {
			return 0
		}
		return (months - 1) / it.rule.Interval
	case Weekly:
		days := int(to.Sub(d).Hours() / 24)
		weeks := days / 7
		if weeks <= 0 {
			return 0
		}
		return (weeks - 1) / it.rule.Interval
	case Daily:
		days := int(to.Sub(d).Hours() / 24)
		if days <= 0 {
			return 0
		}
		return (days - 1) / it.rule.Interval
	default:
		return 0
	}
}
