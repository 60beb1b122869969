// Package errors provides consistent error types for Cronoz.
// It distinguishes user-fixable errors (bad input) from system errors
// (storage failures, corrupt data).
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	ErrActivityNotFound = errors.New("activity not found")
	ErrRecordNotFound   = errors.New("time record not found")
	ErrStorageCorrupt   = errors.New("stored data is corrupt")
)

// IsNotFound returns true if the error marks a missing activity or record.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrActivityNotFound) || errors.Is(err, ErrRecordNotFound)
}

// UserError represents an error the user can fix.
// Examples: empty activity name, malformed color.
type UserError struct {
	Message    string // What happened
	Suggestion string // How to fix it
	Field      string // The field that caused the error (optional)
	Value      string // The invalid value (optional)
}

func (e *UserError) Error() string {
	if e.Field != "" && e.Value != "" {
		return fmt.Sprintf("%s: '%s'", e.Message, e.Value)
	}
	return e.Message
}

// NewUserError creates a new UserError.
func NewUserError(message, suggestion string) *UserError {
	return &UserError{Message: message, Suggestion: suggestion}
}

// NewUserErrorWithField creates a new UserError with field context.
func NewUserErrorWithField(field, value, message, suggestion string) *UserError {
	return &UserError{
		Message:    message,
		Field:      field,
		Value:      value,
		Suggestion: suggestion,
	}
}

// SystemError represents a system-level failure the user cannot directly fix.
// Examples: database write failure, corrupt stored JSON.
type SystemError struct {
	Message string // What happened
	Cause   error  // The underlying error
	Op      string // The operation that failed (optional)
}

func (e *SystemError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s during %s", e.Message, e.Op)
	}
	return e.Message
}

func (e *SystemError) Unwrap() error {
	return e.Cause
}

// NewSystemError creates a new SystemError.
func NewSystemError(message string, cause error) *SystemError {
	return &SystemError{Message: message, Cause: cause}
}

// NewSystemErrorWithOp creates a new SystemError with operation context.
func NewSystemErrorWithOp(op, message string, cause error) *SystemError {
	return &SystemError{Message: message, Cause: cause, Op: op}
}

// Corruption wraps a decode failure as a storage corruption error. The
// stored payload is not repaired; the failure surfaces to the caller as-is.
func Corruption(key string, cause error) error {
	return &SystemError{
		Message: fmt.Sprintf("%v under key %q", ErrStorageCorrupt, key),
		Cause:   fmt.Errorf("%w: %v", ErrStorageCorrupt, cause),
		Op:      "load",
	}
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
