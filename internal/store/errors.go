package store

import "errors"

// Sentinel failure kinds surfaced by the store. Callers distinguish them
// with errors.Is; any other error wraps the underlying engine failure and
// is propagated as-is.
var (
	// ErrNotFound marks a referenced project, todo list, or todo that does
	// not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput marks a validation failure, such as a create without
	// content or an unknown status/priority value.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDefaultListProtected marks an attempt to delete a todo list that a
	// project designates as its default.
	ErrDefaultListProtected = errors.New("cannot delete default list")
)
