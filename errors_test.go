package rrule

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRuleUnsatisfiable_ErrorMessageIncludesReason(t *testing.T) {
	err := &RuleUnsatisfiable{Reason: "ByHour must be between 0 and 23"}
	require.Contains(t, err.Error(), "ByHour must be between 0 and 23")
}

func TestInvalidSeed_IsASentinelError(t *testing.T) {
	require.EqualError(t, InvalidSeed, "rrule: invalid seed instant")
}
