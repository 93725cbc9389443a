// Package errors provides consistent error types for the Mindful CLI.
// It defines three main categories: UserError (fixable by the user),
// StorageError (persistence failures, recoverable by retry), and
// InvalidTransitionError (timer state-machine misuse, a programming error).
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for common conditions.
var (
	ErrSessionNotFound    = errors.New("session not found")
	ErrMilestoneNotFound  = errors.New("milestone not found")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrInvalidSessionType = errors.New("invalid session type")
	ErrInvalidFilter      = errors.New("invalid session filter")
	ErrInvalidKind        = errors.New("invalid milestone kind")
	ErrInvalidDuration    = errors.New("invalid duration")
	ErrInvalidTimestamp   = errors.New("invalid timestamp")
)

// UserError represents an error that the user can fix.
// Examples: invalid input, missing required arguments, zero duration.
type UserError struct {
	Message    string // What happened
	Suggestion string // How to fix it
	Field      string // The field/input that caused the error (optional)
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
	return &UserError{
		Message:    message,
		Suggestion: suggestion,
	}
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

// NewConfigurationInvalid reports a timer configured with no duration.
func NewConfigurationInvalid() *UserError {
	return &UserError{
		Message:    "session duration must be greater than zero",
		Suggestion: "Pick a duration, e.g. 'mindful begin 10m'",
	}
}

// StorageError represents a persistence-layer failure. The coordinator logs
// it and keeps state in memory, so the caller may retry.
type StorageError struct {
	Op    string // The operation that failed
	Cause error  // The underlying error
}

func (e *StorageError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Cause)
	}
	return fmt.Sprintf("storage failure: %v", e.Cause)
}

func (e *StorageError) Unwrap() error {
	return e.Cause
}

// NewStorageError creates a new StorageError.
func NewStorageError(op string, cause error) *StorageError {
	return &StorageError{Op: op, Cause: cause}
}

// IsStorageError returns true if err is a StorageError.
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}

// InvalidTransitionError reports a timer state-machine transition that is
// invalid for the current state. Always a design bug, never user-recoverable.
type InvalidTransitionError struct {
	From       string // The current state
	Transition string // The attempted transition
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition %q from state %q", e.Transition, e.From)
}

// NewInvalidTransition creates a new InvalidTransitionError.
func NewInvalidTransition(from, transition string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, Transition: transition}
}

// IsInvalidTransition returns true if err is an InvalidTransitionError.
func IsInvalidTransition(err error) bool {
	var te *InvalidTransitionError
	return errors.As(err, &te)
}

// GetSuggestion extracts a suggestion from an error, if it carries one.
func GetSuggestion(err error) string {
	var ue *UserError
	if errors.As(err, &ue) {
		return ue.Suggestion
	}
	return ""
}

// Is reports whether any error in err's chain matches target.
// Re-exported so callers don't need to import both error packages.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
