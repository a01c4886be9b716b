package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Error is the single structured error kind returned by the access layer,
// services and handlers. Cause is never serialized.
type Error struct {
	Type    ErrorType `json:"-"`
	Surface Surface   `json:"-"`
	Message string    `json:"message"`
	Cause   error     `json:"-"`
}

func (e *Error) Code() Code {
	return Code(string(e.Type) + ":" + string(e.Surface))
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code(), e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code(), e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// StatusCode maps the error type to an HTTP status. Database failures other than
// not_found are server errors; a missing pagination cursor stays client-correctable.
func (e *Error) StatusCode() int {
	if e.Surface == SurfaceDatabase && e.Type != TypeNotFound {
		return http.StatusInternalServerError
	}
	if status, ok := statusByType[e.Type]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// Logged reports whether the error should only be logged, with a generic message sent to clients.
func (e *Error) Logged() bool {
	return e.Surface == SurfaceDatabase
}

// Constructors
func New(code Code, message string) *Error {
	if message == "" {
		message = defaultMessage(code)
	}
	return &Error{Type: ErrorType(code.kind()), Surface: Surface(code.surface()), Message: message}
}

func Wrap(code Code, message string, cause error) *Error {
	e := New(code, message)
	e.Cause = cause
	return e
}

func BadRequest(surface Surface, msg string) *Error {
	return New(Code(string(TypeBadRequest)+":"+string(surface)), msg)
}

func NotFound(surface Surface, msg string) *Error {
	return New(Code(string(TypeNotFound)+":"+string(surface)), msg)
}

func Forbidden(surface Surface, msg string) *Error {
	return New(Code(string(TypeForbidden)+":"+string(surface)), msg)
}

func Unauthorized(surface Surface, msg string) *Error {
	return New(Code(string(TypeUnauthorized)+":"+string(surface)), msg)
}

// As extracts an *Error from err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// HasCode reports whether err carries the given code.
func HasCode(err error, code Code) bool {
	e, ok := As(err)
	return ok && e.Code() == code
}

func (c Code) kind() string {
	k, _, _ := strings.Cut(string(c), ":")
	return k
}

func (c Code) surface() string {
	_, s, _ := strings.Cut(string(c), ":")
	return s
}
