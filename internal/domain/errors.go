package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound           = errors.New("not found")
	ErrAlreadyExists      = errors.New("already exists")
	ErrValidation         = errors.New("validation error")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrConflict           = errors.New("conflict")
	ErrPreconditionFailed = errors.New("precondition failed")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// Ledger-specific errors. Each wraps one of the taxonomy sentinels above so
// transports can map them generically while callers can still match precisely.
var (
	ErrAlreadyEntitled        = fmt.Errorf("already entitled: %w", ErrAlreadyExists)
	ErrNotEntitled            = fmt.Errorf("not entitled: %w", ErrPreconditionFailed)
	ErrInsufficientEngagement = fmt.Errorf("insufficient engagement: %w", ErrPreconditionFailed)
	ErrAlreadyResolved        = fmt.Errorf("doubt already answered: %w", ErrPreconditionFailed)
	ErrNotEligible            = fmt.Errorf("not eligible for certificate: %w", ErrPreconditionFailed)
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
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

// InsufficientEngagementError reports how much more watch time a learner needs
// before a topic can be marked complete.
type InsufficientEngagementError struct {
	RequiredSeconds int
	WatchedSeconds  int
}

// RemainingSeconds is the watch time still missing. Never negative.
func (e *InsufficientEngagementError) RemainingSeconds() int {
	if r := e.RequiredSeconds - e.WatchedSeconds; r > 0 {
		return r
	}
	return 0
}

func (e *InsufficientEngagementError) Error() string {
	return fmt.Sprintf("insufficient engagement: watched %ds of %ds, %ds remaining",
		e.WatchedSeconds, e.RequiredSeconds, e.RemainingSeconds())
}

func (e *InsufficientEngagementError) Unwrap() error { return ErrInsufficientEngagement }
