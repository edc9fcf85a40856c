// Package errors provides a unified error handling system for doc-center.
//
// Error codes follow the AABBCCC layout used across kart-io services:
//
//	AA  (00-99): Service code (00 = common, 30 = doc-center)
//	BB  (00-99): Category code
//	CCC (000-999): Sequence number within the category
//
// Category codes map to HTTP statuses:
//
//	01: Request/Validation errors (400)
//	02: Authentication errors (401)
//	04: Resource not found errors (404)
//	05: Conflict errors (409)
//	07: Internal errors (500)
//	10: Upstream dependency errors (502)
package errors

import (
	"fmt"
	"net/http"
)

// Error categories.
const (
	CategoryRequest  = 1
	CategoryAuth     = 2
	CategoryResource = 4
	CategoryConflict = 5
	CategoryInternal = 7
	CategoryUpstream = 10
)

// MakeCode builds an error code from service, category, and sequence parts.
func MakeCode(service, category, sequence int) int {
	return service*100000 + category*1000 + sequence
}

// GetCategory extracts the category part from an error code.
func GetCategory(code int) int {
	return (code / 1000) % 100
}

// Errno represents a structured error with code and message.
type Errno struct {
	// Code is the unique business error code (0 = success).
	Code int `json:"code"`

	// HTTP is the HTTP status code to return.
	HTTP int `json:"-"`

	// Msg is a human-readable message.
	Msg string `json:"message"`

	// cause is the underlying error.
	cause error
}

// Error implements the error interface.
func (e *Errno) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("errno %d: %s: %v", e.Code, e.Msg, e.cause)
	}
	return fmt.Sprintf("errno %d: %s", e.Code, e.Msg)
}

// Unwrap returns the underlying cause.
func (e *Errno) Unwrap() error {
	return e.cause
}

// WithCause returns a copy of the Errno carrying the given cause.
func (e *Errno) WithCause(cause error) *Errno {
	return &Errno{Code: e.Code, HTTP: e.HTTP, Msg: e.Msg, cause: cause}
}

// WithMessage returns a copy of the Errno with a custom message.
func (e *Errno) WithMessage(msg string) *Errno {
	return &Errno{Code: e.Code, HTTP: e.HTTP, Msg: msg, cause: e.cause}
}

// WithMessagef returns a copy of the Errno with a formatted message.
func (e *Errno) WithMessagef(format string, args ...interface{}) *Errno {
	return &Errno{Code: e.Code, HTTP: e.HTTP, Msg: fmt.Sprintf(format, args...), cause: e.cause}
}

// HTTPStatus returns the HTTP status code for this error.
func (e *Errno) HTTPStatus() int {
	if e.HTTP != 0 {
		return e.HTTP
	}
	return http.StatusInternalServerError
}

// Is matches errors by code so errors.Is works across WithMessage copies.
func (e *Errno) Is(target error) bool {
	if t, ok := target.(*Errno); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a new Errno.
func New(code, httpStatus int, msg string) *Errno {
	return &Errno{Code: code, HTTP: httpStatus, Msg: msg}
}

// FromError converts any error into an Errno. Errno values pass through
// unchanged; everything else is wrapped as ErrInternal.
func FromError(err error) *Errno {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Errno); ok {
		return e
	}
	return ErrInternal.WithCause(err).WithMessage(err.Error())
}
