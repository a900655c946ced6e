// Package domain holds the error taxonomy shared by the guard, the services
// and the HTTP layer. Every error surfaced to a client is an *Error whose Kind
// decides the status code and whose Reason is the only text the client sees.
package domain

import "errors"

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrValidation      = errors.New("validation failed")
	ErrFatal           = errors.New("fatal")
)

type Error struct {
	Kind   error
	Reason string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Reason + ": " + e.Err.Error()
	}
	return e.Reason
}

func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

func Unauthenticated(reason string) *Error {
	return &Error{Kind: ErrUnauthenticated, Reason: reason}
}

func Forbidden(reason string) *Error {
	return &Error{Kind: ErrForbidden, Reason: reason}
}

func NotFound(reason string) *Error {
	return &Error{Kind: ErrNotFound, Reason: reason}
}

func Conflict(reason string) *Error {
	return &Error{Kind: ErrConflict, Reason: reason}
}

func Validation(reason string) *Error {
	return &Error{Kind: ErrValidation, Reason: reason}
}

// Fatal marks a backend failure (hashing, signing) the request cannot recover from.
func Fatal(reason string, err error) *Error {
	return &Error{Kind: ErrFatal, Reason: reason, Err: err}
}

// Reason returns the client-facing text of err, or "" when err carries none.
func Reason(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Reason
	}
	return ""
}
