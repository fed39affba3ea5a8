package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
)

// Lifecycle rule violations. Always recoverable, never retried.
var (
	ErrInvalidTransition    = errors.New("invalid transition")
	ErrTerminalState        = errors.New("terminal state violation")
	ErrNoopTransition       = errors.New("noop transition")
	ErrSelfDeleteForbidden  = errors.New("self delete forbidden")
	ErrSelfSuspendForbidden = errors.New("self suspend forbidden")
	ErrSelfDemoteForbidden  = errors.New("self demote forbidden")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// TransitionError reports a rejected lifecycle transition. It unwraps to one
// of the lifecycle sentinels so callers can match with errors.Is.
type TransitionError struct {
	Entity EntityType
	From   string
	To     string
	Err    error
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s: %v", e.Entity, e.From, e.To, e.Err)
}

func (e *TransitionError) Unwrap() error { return e.Err }
