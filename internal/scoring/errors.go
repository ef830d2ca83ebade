package scoring

import "errors"

// Validation errors. All scoring failures are the caller's fault and are
// never retried; they are surfaced verbatim.
var (
	// ErrInvalidSessionData marks a malformed SessionData shape.
	ErrInvalidSessionData = errors.New("invalid session data")

	// ErrInvalidCount marks a negative answer count.
	ErrInvalidCount = errors.New("invalid count")

	// ErrInvalidScore marks a 0-1 score or a multiplier out of range.
	ErrInvalidScore = errors.New("invalid score")

	// ErrInvalidDuration marks a negative duration.
	ErrInvalidDuration = errors.New("invalid duration")

	// ErrDivisionByZero is returned only by the standalone evolution
	// primitive; the composite Score path resolves the same arithmetic
	// with a sentinel instead.
	ErrDivisionByZero = errors.New("division by zero")
)
