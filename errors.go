package rrule

import "errors"

// InvalidSeed is returned from NewIterator when DTSTART itself has
// invalid date fields (spec §7).
var InvalidSeed = errors.New("rrule: invalid seed instant")

// RuleUnsatisfiable is returned from NewIterator when the rule is
// trivially impossible to ever satisfy (spec §7), e.g. a BYMONTH value
// outside [1, 12].
type RuleUnsatisfiable struct {
	Reason string
}

func (e *RuleUnsatisfiable) Error() string {
	return "rrule: rule can never be satisfied: " + e.Reason
}

// errRuntimeDrain names the RuntimeDrain outcome: not a failure, but a
// rule that has permanently stopped producing instances after an
// empty-interval streak (spec §4.4). The state machine in limit.go records
// that outcome as stateDrained and does not use this value; no function
// returns it, and Next() reports draining via its boolean return.
var errRuntimeDrain = errors.New("rrule: iterator drained")
