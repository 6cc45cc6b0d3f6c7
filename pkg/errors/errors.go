// Package errors defines the configuration error taxonomy used across attempt.
//
// These are the errors raised while building registries and controllers or
// loading taxonomy files. Failures produced by guarded operations are not
// represented here; see package kinds.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Dispatch configuration errors
	ErrInvalidClause ErrorCode = "INVALID_CLAUSE"
	ErrInvalidKind   ErrorCode = "INVALID_KIND"

	// Registry errors
	ErrKindConflict ErrorCode = "KIND_CONFLICT"

	// Taxonomy file errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"
	ErrExport      ErrorCode = "EXPORT_FAILED"
)

// Messages for the builder validation errors. Callers match on codes; the
// text is kept stable for people reading panics.
const (
	MsgInvalidClause = "invalid clause arguments"
	MsgInvalidKind   = "invalid failure kind"
)

// AttemptError represents a structured error with code and details
type AttemptError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *AttemptError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *AttemptError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *AttemptError) Is(target error) bool {
	var targetErr *AttemptError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new AttemptError with the given code and message
func New(code ErrorCode, message string) *AttemptError {
	return &AttemptError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new AttemptError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *AttemptError {
	return &AttemptError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an AttemptError
func Wrap(err error, code ErrorCode, message string) *AttemptError {
	if err == nil {
		return nil
	}
	return &AttemptError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *AttemptError {
	if err == nil {
		return nil
	}
	return &AttemptError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// InvalidClause builds the error raised when a catch clause has no targets
// or no handler.
func InvalidClause() *AttemptError {
	return New(ErrInvalidClause, MsgInvalidClause)
}

// InvalidKind builds the error raised when a catch target cannot be resolved.
func InvalidKind(target interface{}) *AttemptError {
	return New(ErrInvalidKind, MsgInvalidKind).WithDetail("target", fmt.Sprintf("%v", target))
}

// WithDetail adds a detail to the error
func (e *AttemptError) WithDetail(key string, value interface{}) *AttemptError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *AttemptError) WithDetails(details map[string]interface{}) *AttemptError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var attemptErr *AttemptError
	if errors.As(err, &attemptErr) {
		return attemptErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an AttemptError
func GetErrorCode(err error) ErrorCode {
	var attemptErr *AttemptError
	if errors.As(err, &attemptErr) {
		return attemptErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an AttemptError
func GetErrorDetails(err error) map[string]interface{} {
	var attemptErr *AttemptError
	if errors.As(err, &attemptErr) {
		return attemptErr.Details
	}
	return nil
}
