package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failure so the API layer can pick a status code and
// clients can branch without parsing messages.
type ErrorKind string

const (
	KindValidation   ErrorKind = "validation"
	KindConflict     ErrorKind = "conflict"
	KindNotFound     ErrorKind = "not_found"
	KindInvalidState ErrorKind = "invalid_state"
	KindNotification ErrorKind = "notification"
	KindUnauthorized ErrorKind = "unauthorized"
)

// Stable machine-readable codes surfaced to clients.
const (
	CodeActiveRequestExists = "ACTIVE_REQUEST_EXISTS"
	CodeInvalidTransition   = "INVALID_TRANSITION"
	CodeAlumnusExists       = "ALUMNUS_EXISTS"
	CodeInvalidCredentials  = "INVALID_CREDENTIALS"
)

// Error is the domain error type. Detail carries upstream diagnostics
// (e.g. the mail provider's response body) and is safe to surface.
type Error struct {
	Kind    ErrorKind
	Code    string
	Message string
	Detail  string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func NewValidationError(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func NewConflictError(code, format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Code: code, Message: fmt.Sprintf(format, args...)}
}

func NewNotFoundError(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func NewInvalidStateError(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidState, Code: CodeInvalidTransition, Message: fmt.Sprintf(format, args...)}
}

func NewNotificationError(message, detail string, err error) *Error {
	return &Error{Kind: KindNotification, Message: message, Detail: detail, Err: err}
}

func NewUnauthorizedError(format string, args ...any) *Error {
	return &Error{Kind: KindUnauthorized, Code: CodeInvalidCredentials, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of err, or "" when err is not a domain error.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}

// IsKind reports whether err is a domain error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}

// AsDomainError unwraps err to a *Error when possible.
func AsDomainError(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
