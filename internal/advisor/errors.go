package advisor

import "errors"

// Error classes surfaced by the registry and state machine. All failures
// are synchronous and leave the hand state exactly as it was before the
// call. Wrap sites add the specific reason; callers branch with errors.Is.
var (
	// ErrValidation rejects malformed or out-of-range input before any
	// mutation.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound indicates an unknown hand id.
	ErrNotFound = errors.New("hand not found")

	// ErrInvalidState rejects operations on an inactive or finished hand.
	ErrInvalidState = errors.New("invalid hand state")

	// ErrIllegalAction rejects an action that violates the betting rules.
	ErrIllegalAction = errors.New("illegal action")

	// ErrInsufficientFunds rejects a deduction that would drive the stack
	// negative.
	ErrInsufficientFunds = errors.New("insufficient funds")
)
