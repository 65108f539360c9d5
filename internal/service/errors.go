package service

import (
	"errors"
)

// Typed error kinds returned by the core components. Handlers map these to
// HTTP statuses with errors.Is; anything else is treated as a storage or
// internal failure.
var (
	// ErrNotFound indicates the entity or relation does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a duplicate name/location pair, a duplicate
	// checklist label, or deleting an unsettled payment.
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput indicates a missing required field or malformed value.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidAmount indicates an overpayment attempt.
	ErrInvalidAmount = errors.New("amount exceeds remaining balance")

	// ErrStorage wraps persistence-layer failures (connectivity, constraint
	// violations). Distinct from the recoverable kinds above.
	ErrStorage = errors.New("storage error")
)
