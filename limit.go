package rrule

// limitState is the Active/Drained/Terminated state machine from spec
// §4.4. It is the sink: the last thing each interval's surviving
// instances pass through before the driver hands them to the caller.
type limitState int

const (
	stateActive limitState = iota
	stateDrained
	stateTerminated
)

// emptyStreakDrainLimit is the "1,000 consecutive empty intervals" heuristic
// spec §4.4 recommends for recognising a rule that can structurally never
// produce another instance (e.g. FEB 30th requested every year) without
// requiring the driver to prove unsatisfiability up front.
const emptyStreakDrainLimit = 1000

// limitSink tracks COUNT/UNTIL exhaustion and the empty-interval streak
// across repeated calls to accept.
type limitSink struct {
	rule       resolvedRule
	state      limitState
	emitted    int
	emptyRun   int
	lastEmit   *Instance
}

func newLimitSink(rule resolvedRule) *limitSink {
	return &limitSink{rule: rule, state: stateActive}
}

// accept filters one interval's sanity-checked instances against
// COUNT/UNTIL, advances the state machine, and returns the instances the
// driver should actually emit from this interval. Once it has moved the
// state to stateTerminated or stateDrained, the driver must stop calling
// SeedAt for further intervals.
func (l *limitSink) accept(candidates []Instance) []Instance {
	if l.state != stateActive {
		return nil
	}

	if len(candidates) == 0 {
		l.emptyRun++
		if l.emptyRun >= emptyStreakDrainLimit {
			l.state = stateDrained
		}
		return nil
	}
	l.emptyRun = 0

	hasUntil := !l.rule.Until.IsZero()
	loc := l.rule.dtstart.Location()

	out := make([]Instance, 0, len(candidates))
	for _, cand := range candidates {
		if hasUntil && cand.Time(loc).After(l.rule.Until) {
			// cand is strictly after UNTIL (inclusive boundary per spec
			// §4.4): terminate without emitting it or anything after.
			l.state = stateTerminated
			break
		}
		out = append(out, cand)
		l.emitted++
		c := cand
		l.lastEmit = &c
		if l.rule.Count > 0 && l.emitted >= l.rule.Count {
			l.state = stateTerminated
			break
		}
	}
	return out
}

// Done reports whether the sink has reached a terminal state (Drained or
// Terminated) and will never accept further candidates.
func (l *limitSink) Done() bool {
	return l.state != stateActive
}
