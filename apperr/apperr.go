// Package apperr defines the errors the API reports to clients.
package apperr

import (
	"net/http"

	"github.com/pkg/errors"
)

// Machine readable codes carried in error responses.
const (
	CodeValidation   = "VALIDATION_FAILED"
	CodeConflict     = "CONFLICT"
	CodeNotFound     = "NOT_FOUND"
	CodeForbidden    = "FORBIDDEN"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeInternal     = "INTERNAL_ERROR"
)

// Error is an error with a client-facing status and code.
type Error struct {
	Status  int
	Code    string
	Message string
	Details string
}

func (e *Error) Error() string {
	if e.Details != "" {
		return e.Message + ": " + e.Details
	}
	return e.Message
}

// WithDetails returns a copy of e carrying details.
func (e *Error) WithDetails(details string) *Error {
	cp := *e
	cp.Details = details
	return &cp
}

// Is matches on code so sentinel comparisons survive WithDetails copies.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

func newError(status int, code, message string) *Error {
	return &Error{Status: status, Code: code, Message: message}
}

// Sentinels usable with errors.Is.
var (
	ErrValidation   = newError(http.StatusBadRequest, CodeValidation, "validation failed")
	ErrConflict     = newError(http.StatusConflict, CodeConflict, "resource already exists")
	ErrNotFound     = newError(http.StatusNotFound, CodeNotFound, "resource not found")
	ErrForbidden    = newError(http.StatusForbidden, CodeForbidden, "You're not allowed to do that")
	ErrUnauthorized = newError(http.StatusUnauthorized, CodeUnauthorized, "authentication required")
	ErrInternal     = newError(http.StatusInternalServerError, CodeInternal, "internal server error")
)

func Validation(details string) *Error { return ErrValidation.WithDetails(details) }

func Conflict(message string) *Error {
	return newError(http.StatusConflict, CodeConflict, message)
}

func NotFound(message string) *Error {
	return newError(http.StatusNotFound, CodeNotFound, message)
}

func Forbidden() *Error { return ErrForbidden.WithDetails("") }

func Unauthorized(details string) *Error { return ErrUnauthorized.WithDetails(details) }

// From finds the *Error in err's chain, falling back to ErrInternal.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return ErrInternal
}
