// Package apperr defines the error taxonomy surfaced to API clients.
// Every failure carries a stable machine-readable kind plus the
// human-readable message the legacy API answered with.
package apperr

import "errors"

type Kind string

const (
	Validation      Kind = "validation_error"
	Unauthenticated Kind = "unauthenticated"
	NotFound        Kind = "not_found"
	Forbidden       Kind = "forbidden"
	Conflict        Kind = "conflict"
	InvalidAction   Kind = "invalid_action"
	Internal        Kind = "internal_error"
)

type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, cause: cause}
}

// KindOf extracts the kind from err. Anything that is not an *Error is
// an unexpected storage or programming failure.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

// MessageOf extracts the client-facing message from err, masking
// internals behind a generic message.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "Internal server error"
}
