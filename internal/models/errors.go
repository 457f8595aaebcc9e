package models

import (
	"errors"
	"fmt"
)

// Error codes used across the repository layer.
const (
	CodeNotFound            = "NOT_FOUND"
	CodeConstraintViolation = "CONSTRAINT_VIOLATION"
	CodeDependencyConflict  = "DEPENDENCY_CONFLICT"
	CodePreconditionFailed  = "PRECONDITION_FAILED"
	CodeInternal            = "INTERNAL_ERROR"
)

// AppError represents a custom application error
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Predefined error constructors

// NewNotFoundError reports that no row exists for the given key.
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s with ID %v not found", resource, id),
	}
}

// NewConstraintViolationError reports a missing required field, a dangling
// foreign key, or a failed check constraint.
func NewConstraintViolationError(message string) *AppError {
	return &AppError{
		Code:    CodeConstraintViolation,
		Message: message,
	}
}

// NewDependencyConflictError reports a delete blocked by dependent rows.
func NewDependencyConflictError(message string) *AppError {
	return &AppError{
		Code:    CodeDependencyConflict,
		Message: message,
	}
}

// NewPreconditionError reports a composite operation invoked with an invalid
// combination of inputs.
func NewPreconditionError(message string) *AppError {
	return &AppError{
		Code:    CodePreconditionFailed,
		Message: message,
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: "internal storage error",
		Err:     err,
	}
}

func hasCode(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// IsNotFound reports whether err carries the NOT_FOUND code.
func IsNotFound(err error) bool { return hasCode(err, CodeNotFound) }

// IsConstraintViolation reports whether err carries the CONSTRAINT_VIOLATION code.
func IsConstraintViolation(err error) bool { return hasCode(err, CodeConstraintViolation) }

// IsDependencyConflict reports whether err carries the DEPENDENCY_CONFLICT code.
func IsDependencyConflict(err error) bool { return hasCode(err, CodeDependencyConflict) }

// IsPrecondition reports whether err carries the PRECONDITION_FAILED code.
func IsPrecondition(err error) bool { return hasCode(err, CodePreconditionFailed) }
