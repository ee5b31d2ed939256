package ranking

import (
	"errors"
	"fmt"
	"math"
)

// Validation failures. Every one of them is detected before any scoring starts.
var (
	ErrInvalidGoalVector = errors.New("invalid goal vector")
	ErrDimensionMismatch = errors.New("dimension mismatch")
	ErrEmptyCandidateSet = errors.New("empty candidate set")
	ErrNonFiniteValue    = errors.New("non-finite value")
)

// Error codes exposed to transports (HTTP, NATS, CLI).
const (
	CodeInvalidGoalVector = "invalid_goal_vector"
	CodeDimensionMismatch = "dimension_mismatch"
	CodeEmptyCandidateSet = "empty_candidate_set"
	CodeNonFiniteValue    = "non_finite_value"
)

// ErrorCode maps a ranking validation error to its stable code.
// It returns "" for errors that did not originate in validation.
func ErrorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidGoalVector):
		return CodeInvalidGoalVector
	case errors.Is(err, ErrDimensionMismatch):
		return CodeDimensionMismatch
	case errors.Is(err, ErrEmptyCandidateSet):
		return CodeEmptyCandidateSet
	case errors.Is(err, ErrNonFiniteValue):
		return CodeNonFiniteValue
	default:
		return ""
	}
}

// IsValidationError reports whether err is one of the ranking validation failures.
func IsValidationError(err error) bool {
	return ErrorCode(err) != ""
}

// Validate checks a goal vector and candidate set without scoring them.
func Validate(goal GoalVector, candidates []Candidate) error {
	if len(goal) == 0 {
		return fmt.Errorf("%w: no dimensions", ErrInvalidGoalVector)
	}
	for d, v := range goal {
		if !isFinite(v) {
			return fmt.Errorf("%w: %w: goal dimension %d is %v", ErrInvalidGoalVector, ErrNonFiniteValue, d, v)
		}
	}
	if len(candidates) == 0 {
		return ErrEmptyCandidateSet
	}
	for i, c := range candidates {
		if len(c.Attributes) != len(goal) {
			return fmt.Errorf("%w: candidate %d (%s) has %d attributes, goal has %d",
				ErrDimensionMismatch, i, c.ID, len(c.Attributes), len(goal))
		}
	}
	for i, c := range candidates {
		for d, v := range c.Attributes {
			if !isFinite(v) {
				return fmt.Errorf("%w: candidate %d (%s) dimension %d is %v", ErrNonFiniteValue, i, c.ID, d, v)
			}
		}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
