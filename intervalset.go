package rrule

import "sort"

// IntervalSet is the ordered, deduplicated collection of candidates
// belonging to one outer interval (spec §3). It is built by the innermost
// stage that begins a new interval, accumulated as it rises through
// expanders, and drained by the sink.
type IntervalSet struct {
	items []Instance
}

// NewIntervalSet builds a set from a single seed instance, as produced by
// FreqIterator.
func NewIntervalSet(seed Instance) *IntervalSet {
	return &IntervalSet{items: []Instance{seed}}
}

// Len reports the number of candidates currently in the set.
func (s *IntervalSet) Len() int { return len(s.items) }

// Items returns the set's candidates, sorted ascending by
// (year, month, day, hour, minute, second). Invalid candidates are
// excluded; only SanityFilter is entitled to observe them.
func (s *IntervalSet) Items() []Instance {
	out := make([]Instance, 0, len(s.items))
	for _, in := range s.items {
		if in.valid {
			out = append(out, in)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].before(out[j]) })
	return dedupe(out)
}

// rawItems exposes every candidate, including ones already marked invalid,
// for SanityFilter's consumption.
func (s *IntervalSet) rawItems() []Instance {
	return s.items
}

func dedupe(sorted []Instance) []Instance {
	if len(sorted) < 2 {
		return sorted
	}
	out := sorted[:1]
	for _, in := range sorted[1:] {
		if !in.equal(out[len(out)-1]) {
			out = append(out, in)
		}
	}
	return out
}

// emptyIntervalSet returns a fresh, empty set for expanders to populate.
func emptyIntervalSet() *IntervalSet {
	return &IntervalSet{}
}

// add appends a candidate to the set under construction (expander use).
func (s *IntervalSet) add(in Instance) {
	s.items = append(s.items, in)
}
