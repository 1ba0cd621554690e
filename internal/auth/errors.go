package auth

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a domain failure carrying the HTTP status it translates to and a
// message safe to show the caller. The HTTP layer maps it to the response
// envelope at a single boundary; business logic never touches status codes
// beyond choosing a constructor.
type Error struct {
	Status  int
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// AsError returns the *Error wrapped in err, or nil.
func AsError(err error) *Error {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return nil
}

func invalidInput(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

func conflict(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

func unauthorized(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: message}
}

func notFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

// unexpected wraps an internal failure. The cause is logged server-side;
// the caller only ever sees the generic message.
func unexpected(cause error) *Error {
	return &Error{
		Status:  http.StatusInternalServerError,
		Message: "Something went wrong",
		cause:   cause,
	}
}
