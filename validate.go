package rrule

import "fmt"

// validateBounds checks per-part value lists against the ranges RFC 5545
// assigns them, exactly mirroring the teacher's validateBounds
// (rrule.go:230-279) against the renamed fields. Spec §6 says the parser
// already range-validates these lists; this is construction's own
// backstop against a caller that builds a RecurrenceRule by hand.
func validateBounds(r RecurrenceRule) error {
	bounds := []struct {
		field     []int
		param     string
		bound     [2]int
		plusMinus bool
	}{
		{r.BySecond, "BySecond", [2]int{0, 59}, false},
		{r.ByMinute, "ByMinute", [2]int{0, 59}, false},
		{r.ByHour, "ByHour", [2]int{0, 23}, false},
		{r.ByMonthDay, "ByMonthDay", [2]int{1, 31}, true},
		{r.ByYearDay, "ByYearDay", [2]int{1, 366}, true},
		{r.ByWeekNo, "ByWeekNo", [2]int{1, 53}, true},
		{r.ByMonth, "ByMonth", [2]int{1, 12}, false},
		{r.BySetPos, "BySetPos", [2]int{1, 366}, true},
	}

	check := func(param string, value int, bound [2]int, plusMinus bool) error {
		inPositive := value >= bound[0] && value <= bound[1]
		inNegative := plusMinus && value <= -bound[0] && value >= -bound[1]
		if !inPositive && !inNegative {
			if plusMinus {
				return &RuleUnsatisfiable{Reason: fmt.Sprintf("%s must be between %d and %d or %d and %d", param, bound[0], bound[1], -bound[0], -bound[1])}
			}
			return &RuleUnsatisfiable{Reason: fmt.Sprintf("%s must be between %d and %d", param, bound[0], bound[1])}
		}
		return nil
	}

	for _, b := range bounds {
		for _, v := range b.field {
			if v == 0 && b.plusMinus {
				return &RuleUnsatisfiable{Reason: fmt.Sprintf("%s must not be 0", b.param)}
			}
			if err := check(b.param, v, b.bound, b.plusMinus); err != nil {
				return err
			}
		}
	}

	for _, w := range r.ByDay {
		if w.n > 53 || w.n < -53 {
			return &RuleUnsatisfiable{Reason: "ByDay occurrence prefix must be between 1 and 53 or -1 and -53"}
		}
	}

	if r.Interval < 0 {
		return &RuleUnsatisfiable{Reason: "Interval must not be negative"}
	}

	if !r.Until.IsZero() && r.Count != 0 {
		return &RuleUnsatisfiable{Reason: "Until and Count are mutually exclusive"}
	}

	return nil
}
