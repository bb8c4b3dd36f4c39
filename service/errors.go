package service

import "errors"

// Error taxonomy for the domain facade. Callers branch with errors.Is; the
// HTTP layer maps each class to a status code.
var (
	// ErrNotFound means an id did not resolve to an existing record.
	ErrNotFound = errors.New("not found")

	// ErrIllegalTransition means the requested transition is not reachable
	// from the record's current state. It is never coerced to a no-op.
	ErrIllegalTransition = errors.New("illegal transition")

	// ErrValidation means the input was malformed and nothing was mutated.
	ErrValidation = errors.New("validation failed")

	// ErrAuthorization means a role or threshold precondition was not met
	// and nothing was mutated.
	ErrAuthorization = errors.New("not authorized")
)
