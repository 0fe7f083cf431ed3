// Package apperrors defines the error taxonomy shared by all services.
// Every failure a service returns is one of these kinds; the response
// package maps each kind to a fixed HTTP status.
package apperrors

import (
	"errors"
	"fmt"
)

// NotFoundError indicates a referenced entity does not exist.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return e.Resource + " not found"
	}
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// NotFound creates a NotFoundError for the given resource and id
func NotFound(resource string, id fmt.Stringer) error {
	return &NotFoundError{Resource: resource, ID: id.String()}
}

// NotFoundMessage creates a NotFoundError with a free-form message
func NotFoundMessage(message string) error {
	return &NotFoundError{Resource: message}
}

// ValidationError indicates structurally invalid input
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validation creates a ValidationError
func Validation(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// PermissionError indicates the caller lacks ownership or role
type PermissionError struct {
	Message string
}

func (e *PermissionError) Error() string {
	return e.Message
}

// Permission creates a PermissionError
func Permission(format string, args ...any) error {
	return &PermissionError{Message: fmt.Sprintf(format, args...)}
}

// ConflictError indicates the request would violate a uniqueness or
// consistency invariant
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// Conflict creates a ConflictError
func Conflict(format string, args ...any) error {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

// InternalError indicates invalid internal state, a programming or
// data-integrity bug rather than a caller problem
type InternalError struct {
	Message string
	Err     error
}

func (e *InternalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

// Internal creates an InternalError
func Internal(message string, err error) error {
	return &InternalError{Message: message, Err: err}
}

// IsNotFound reports whether err is a NotFoundError
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsValidation reports whether err is a ValidationError
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsPermission reports whether err is a PermissionError
func IsPermission(err error) bool {
	var target *PermissionError
	return errors.As(err, &target)
}

// IsConflict reports whether err is a ConflictError
func IsConflict(err error) bool {
	var target *ConflictError
	return errors.As(err, &target)
}
