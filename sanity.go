package rrule

// sanityFilter implements spec §4.3: the pipeline's final gate before the
// limit sink. It drops anything already marked invalid by an upstream
// stage, drops anything strictly before DTSTART, and enforces that output
// never regresses relative to the last instant this rule has already
// emitted — guarding against a BY-part combination (e.g. the BYWEEKNO
// week-overlap submode) that produces a candidate landing in an earlier
// interval than the one it was generated for. It also drops any candidate
// whose DayOfYear does not match its Year/Month/DayOfMonth, rather than
// trusting a day-of-year set by a shifting stage such as BYWEEKNO.
//
// last is the most recently emitted instance across prior calls, or nil
// before the first call. sanityFilter does not mutate it; the caller
// advances its own cursor from the returned slice.
func sanityFilter(set *IntervalSet, dtstart Instance, last *Instance) []Instance {
	candidates := set.Items()
	out := make([]Instance, 0, len(candidates))
	for _, cand := range candidates {
		if cand.DayOfYear != YDayFromDate(cand.Year, cand.Month, cand.DayOfMonth) {
			continue
		}
		if cand.before(dtstart) {
			continue
		}
		if last != nil && !last.before(cand) {
			continue
		}
		out = append(out, cand)
	}
	return out
}
