package rrule

// bySetPosStage implements spec §4.2.3. Unlike every other BY-part it is
// never conditional on frequency: it always runs last, against the
// complete interval set, selecting candidates by their position in sort
// order rather than by any field predicate — hence it is modeled as an
// expander (it produces a fresh set) even though it can only ever shrink
// the candidate count.
func bySetPosStage(r resolvedRule) (Stage, bool) {
	if len(r.BySetPos) == 0 {
		return Stage{}, false
	}
	positions := r.BySetPos
	return expanderStage("BYSETPOS", func(cal Calendar, in *IntervalSet) *IntervalSet {
		sorted := in.Items()
		picked := emptyIntervalSet()
		for _, p := range positions {
			if item, ok := pick(sorted, p); ok {
				picked.add(item)
			}
		}
		// Re-sort and dedupe: spec's step 3 ("a value selected twice
		// yields one output") and the overall "output in sorted order"
		// requirement both fall out of IntervalSet's own Items().
		out := emptyIntervalSet()
		for _, item := range picked.Items() {
			out.add(item)
		}
		return out
	}), true
}
