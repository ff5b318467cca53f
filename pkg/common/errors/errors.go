// Package errors defines the error taxonomy shared by the repositories,
// services and web handlers.
package errors

import "errors"

var (
	// ErrNotFound is returned when a referenced entity does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateEntry is returned when a unique constraint is violated,
	// e.g. registering a username that is already taken.
	ErrDuplicateEntry = errors.New("duplicate entry")

	// ErrUnauthorized is returned when a protected operation is attempted
	// without an authenticated session.
	ErrUnauthorized = errors.New("authentication required")

	// ErrStoreUnavailable is returned when the backing store fails for a
	// reason other than the request itself. It is surfaced, never retried.
	ErrStoreUnavailable = errors.New("store unavailable")
)

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsDuplicate(err error) bool {
	return errors.Is(err, ErrDuplicateEntry)
}
