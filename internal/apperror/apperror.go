package apperror

import (
	"errors"
	"fmt"
)

// Sentinel errors for the expected failure outcomes. Callers branch with
// errors.Is; anything not wrapping one of these is a storage-level fault.
var (
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("conflict")
	ErrAuth       = errors.New("authorization failed")
	ErrNotFound   = errors.New("not found")
)

// AppError wraps a sentinel with a human-readable message and the
// offending field, if any.
type AppError struct {
	Err     error
	Message string
	Field   string
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Validation returns an AppError for a missing or malformed field.
func Validation(field, message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Field:   field,
	}
}

// Conflict returns an AppError for a uniqueness violation.
func Conflict(message string) *AppError {
	return &AppError{
		Err:     ErrConflict,
		Message: message,
	}
}

// Auth returns an AppError for a missing session or ownership mismatch.
func Auth(message string) *AppError {
	return &AppError{
		Err:     ErrAuth,
		Message: message,
	}
}

// NotFound returns an AppError for a record that does not exist.
func NotFound(resource string, id uint) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found with id %d", resource, id),
	}
}
