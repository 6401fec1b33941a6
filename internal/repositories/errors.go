package repositories

import "errors"

// Sentinel errors shared by every repository implementation. Handlers map
// these to HTTP statuses; anything else is treated as an internal failure.
var (
	// ErrNotFound means a lookup matched no record.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidID means the identifier is syntactically malformed. Kept
	// distinct from ErrNotFound so callers can answer 400 instead of 404.
	ErrInvalidID = errors.New("invalid record ID")

	// ErrDuplicateEmail means a user with the given email already exists.
	ErrDuplicateEmail = errors.New("email already registered")
)
