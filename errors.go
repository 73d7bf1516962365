package quantum

import "errors"

// Caller-input errors. All are recoverable at the call site; none are
// retried internally.
var (
	// ErrEmptyOptionSet is returned when a superposition is built from
	// zero options.
	ErrEmptyOptionSet = errors.New("option set is empty")

	// ErrInvalidWeight is returned when an option weight or a measurement
	// preference weight is outside its valid range.
	ErrInvalidWeight = errors.New("invalid weight")

	// ErrUnknownHandle is returned when a handle does not name a registered
	// superposition, including handles already consumed by a collapse.
	ErrUnknownHandle = errors.New("unknown superposition handle")

	// ErrEmptySearchSpace is returned when the annealer is given no
	// candidates to search.
	ErrEmptySearchSpace = errors.New("search space is empty")
)
