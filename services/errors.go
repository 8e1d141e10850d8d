package services

import (
	"errors"
	"fmt"
)

// ErrCacheMiss signals an absent or expired cache entry. It is normal
// control flow, not a failure.
var ErrCacheMiss = errors.New("cache miss")

// InvalidInputError reports malformed stats or game context handed to the
// prediction core.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %s: %s", e.Field, e.Reason)
}

// OutOfRangeError reports a violated internal invariant, e.g. win
// probabilities not summing to 1. It is a defect and is never auto-corrected.
type OutOfRangeError struct {
	Check string
	Value float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("out of range result in %s: %v", e.Check, e.Value)
}
