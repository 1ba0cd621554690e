package cookie

import "errors"

var (
	// ErrCookieNotFound is returned by Get when the request carries no cookie
	// with the requested name.
	ErrCookieNotFound = errors.New("cookie not found")
)
