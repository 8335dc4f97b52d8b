package rrule

// Kind tags a Stage as one of the two operations spec §9 names: a stage
// implements one and forwards the other trivially.
type Kind int

const (
	// KindExpander stages add candidates derived from a BY-part to the
	// incoming set.
	KindExpander Kind = iota
	// KindFilter stages retain only candidates matching a BY-part's
	// predicate.
	KindFilter
)

// ExpandFunc materializes a fresh IntervalSet from the upstream one.
type ExpandFunc func(cal Calendar, in *IntervalSet) *IntervalSet

// FilterPredicate reports whether a single candidate survives a filter
// stage.
type FilterPredicate func(in Instance) bool

// Stage is the tagged-variant pipeline element spec §9 calls for: a vector
// of these drives the pipeline by data rather than by virtual-dispatch
// chains of filter/expander subclasses.
type Stage struct {
	Name   string
	kind   Kind
	expand ExpandFunc
	filter FilterPredicate
}

// Apply runs the stage against an incoming interval set, returning the
// (possibly identical) outgoing one.
func (s Stage) Apply(cal Calendar, in *IntervalSet) *IntervalSet {
	if s.kind == KindExpander {
		return s.expand(cal, in)
	}
	return filterSet(in, s.filter)
}

func filterSet(in *IntervalSet, pred FilterPredicate) *IntervalSet {
	out := emptyIntervalSet()
	for _, item := range in.items {
		if !item.valid {
			continue
		}
		if pred(item) {
			out.add(item)
		}
	}
	return out
}

func expanderStage(name string, fn ExpandFunc) Stage {
	return Stage{Name: name, kind: KindExpander, expand: fn}
}

func filterStage(name string, pred FilterPredicate) Stage {
	return Stage{Name: name, kind: KindFilter, filter: pred}
}

// buildPipeline assembles the fixed stage order of spec §2 (steps 2-8;
// FreqIterator is step 1 and lives in the driver, SanityFilter/limit sink
// are steps 9-10 and are likewise driver-owned), choosing expander vs.
// filter per BY-part from the classification table in spec §4.2.
func buildPipeline(r resolvedRule) []Stage {
	var stages []Stage
	if s, ok := byMonthStage(r); ok {
		stages = append(stages, s)
	}
	if s, ok := byWeekNoStage(r); ok {
		stages = append(stages, s)
	}
	if s, ok := byYearDayStage(r); ok {
		stages = append(stages, s)
	}
	if s, ok := byMonthDayStage(r); ok {
		stages = append(stages, s)
	}
	if s, ok := byDayStage(r); ok {
		stages = append(stages, s)
	}
	if s, ok := byHourStage(r); ok {
		stages = append(stages, s)
	}
	if s, ok := byMinuteStage(r); ok {
		stages = append(stages, s)
	}
	if s, ok := bySecondStage(r); ok {
		stages = append(stages, s)
	}
	if s, ok := bySetPosStage(r); ok {
		stages = append(stages, s)
	}
	return stages
}
