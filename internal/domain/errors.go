// Package domain contains business logic types and errors.
// Domain errors represent business-level failures, NOT HTTP errors.
// They are infrastructure-agnostic and can be mapped to HTTP/gRPC/etc by adapters.
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrNotFound indicates zero rows, or more than one, where exactly one was expected.
	ErrNotFound = errors.New("not found")

	// ErrConstraint indicates a write was rejected by a relational constraint
	// or by type coercion of its input.
	ErrConstraint = errors.New("constraint violation")

	// ErrUnavailable indicates a required dependency is unavailable.
	ErrUnavailable = errors.New("unavailable")
)

// NotFoundError provides context for not found errors.
type NotFoundError struct {
	Entity string
	ID     string

	// Ambiguous is set when more than one row matched.
	Ambiguous bool
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.Ambiguous {
		return fmt.Sprintf("%s with id %q is ambiguous: more than one match", e.Entity, e.ID)
	}

	if e.ID != "" {
		return fmt.Sprintf("%s with id %q not found", e.Entity, e.ID)
	}

	return e.Entity + " not found"
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NewNotFoundError creates a not found error with context.
func NewNotFoundError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// NewAmbiguousError creates a not found error for a lookup that matched several rows.
func NewAmbiguousError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id, Ambiguous: true}
}

// ConstraintError provides context for rejected writes.
type ConstraintError struct {
	// Field or constraint name that rejected the write, when known.
	Field   string
	Message string
	Value   any
	Cause   error
}

// Error implements the error interface.
func (e *ConstraintError) Error() string {
	msg := "constraint violation"
	if e.Field != "" {
		msg = fmt.Sprintf("constraint violation on %s", e.Field)
	}

	if e.Message != "" {
		msg += ": " + e.Message
	}

	return msg
}

// Unwrap returns the sentinel and the underlying cause.
func (e *ConstraintError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrConstraint, e.Cause}
	}

	return []error{ErrConstraint}
}

// NewConstraintErrorWithValue creates a constraint error including the rejected value.
func NewConstraintErrorWithValue(field, message string, value any) error {
	return &ConstraintError{Field: field, Message: message, Value: value}
}

// WrapConstraintError creates a constraint error around a driver error.
func WrapConstraintError(field, message string, cause error) error {
	return &ConstraintError{Field: field, Message: message, Cause: cause}
}

// UnavailableError provides context for unavailable errors.
type UnavailableError struct {
	Service string
	Reason  string
}

// Error implements the error interface.
func (e *UnavailableError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("service %q unavailable: %s", e.Service, e.Reason)
	}

	return fmt.Sprintf("service %q unavailable", e.Service)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *UnavailableError) Unwrap() error {
	return ErrUnavailable
}

// NewUnavailableError creates an unavailable error with context.
func NewUnavailableError(service, reason string) error {
	return &UnavailableError{Service: service, Reason: reason}
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConstraint checks if an error is a constraint violation.
func IsConstraint(err error) bool {
	return errors.Is(err, ErrConstraint)
}

// IsUnavailable checks if an error is an unavailable error.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
