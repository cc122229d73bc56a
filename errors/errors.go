// Package errors provides unified error handling for the dikit library.
// It implements structured error types with machine-readable codes so
// callers can branch on failure kind without parsing messages.
//
// Factory failures deliberately have no code here: an error raised by a
// registered factory propagates verbatim through provider, container and
// injector, and is never wrapped by the library.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Error is the unified library error type.
type Error struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *Error) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new Error with the given code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// --- Common Error Constructors ---

// ProviderNotFound creates an Error for a key with no bound provider.
func ProviderNotFound(key string) *Error {
	return &Error{
		Code:    ErrCodeProviderNotFound,
		Message: fmt.Sprintf("provider %q not found", key),
		Details: map[string]any{"key": key},
	}
}

// ProviderNotFoundForType creates an Error for a type with no bound provider.
func ProviderNotFoundForType(typeName string) *Error {
	return &Error{
		Code:    ErrCodeProviderNotFound,
		Message: fmt.Sprintf("provider for type %q not found", typeName),
		Details: map[string]any{"type": typeName},
	}
}

// NoDefaultContainer creates an Error for a missing process-wide default container.
func NoDefaultContainer() *Error {
	return &Error{
		Code:    ErrCodeNoDefaultContainer,
		Message: "no default container set, call di.SetDefault first",
	}
}

// InvalidFactory creates an Error for a malformed factory function.
func InvalidFactory(reason string) *Error {
	return &Error{
		Code:    ErrCodeInvalidFactory,
		Message: fmt.Sprintf("invalid factory: %s", reason),
	}
}

// InvalidTarget creates an Error for a malformed injection target or call.
func InvalidTarget(reason string) *Error {
	return &Error{
		Code:    ErrCodeInvalidTarget,
		Message: fmt.Sprintf("invalid injection target: %s", reason),
	}
}

// --- Inspection helpers ---

// AsError extracts an *Error from err's chain, if present.
func AsError(err error) (*Error, bool) {
	var e *Error
	if stderrors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// HasCode reports whether err carries the given code anywhere in its chain.
func HasCode(err error, code ErrorCode) bool {
	if e, ok := AsError(err); ok {
		return e.Code == code
	}
	return false
}

// IsNotFound reports whether err is a missing-provider failure.
func IsNotFound(err error) bool {
	return HasCode(err, ErrCodeProviderNotFound)
}
