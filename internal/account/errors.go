package account

import "errors"

var (
	// ErrNotFound is returned when no account matches the lookup.
	ErrNotFound = errors.New("account not found")

	// ErrDuplicate is returned when a create collides with an existing
	// username or email.
	ErrDuplicate = errors.New("account already exists")

	// ErrStoreUnavailable wraps unexpected store failures.
	ErrStoreUnavailable = errors.New("account store unavailable")
)
