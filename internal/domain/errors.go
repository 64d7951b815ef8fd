package domain

import "errors"

var (
	// ErrNotFound is returned when no coach exists for the requested identifier.
	ErrNotFound = errors.New("coach: not found")
	// ErrInvalidRecord is returned when a directory write violates the coach invariants.
	ErrInvalidRecord = errors.New("coach: invalid record")
	// ErrInvalidFilter is returned for malformed query filters.
	ErrInvalidFilter = errors.New("coach: invalid filter")
)
