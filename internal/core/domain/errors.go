package domain

import (
	"fmt"
	"strings"
)

// FieldViolation is a single broken validation rule, reported by property name.
type FieldViolation struct {
	PropertyName string
	ErrorMessage string
}

// ValidationError carries every rule violation found for a command or query,
// not just the first one.
type ValidationError struct {
	Violations []FieldViolation
}

func NewValidationError(violations ...FieldViolation) *ValidationError {
	return &ValidationError{Violations: violations}
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Violations))

	for _, v := range e.Violations {
		msgs = append(msgs, fmt.Sprintf("%s: %s", v.PropertyName, v.ErrorMessage))
	}

	return "validation failed: " + strings.Join(msgs, "; ")
}

// BadRequestError is a single-message business rule violation, e.g. a wrong
// password or a reference to a contact that does not exist.
type BadRequestError struct {
	Message string
}

func NewBadRequestError(format string, args ...any) *BadRequestError {
	return &BadRequestError{Message: fmt.Sprintf(format, args...)}
}

func (e *BadRequestError) Error() string {
	return e.Message
}

// NotFoundError identifies the entity kind and id that could not be loaded.
// Message overrides the default wording when set (used for lookups by login).
type NotFoundError struct {
	Entity  string
	ID      int64
	Message string
}

func NewNotFoundError(entity string, id int64) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return e.Message
	}

	return fmt.Sprintf("%s with id %d not found", e.Entity, e.ID)
}

// ConflictError is a uniqueness violation, e.g. a duplicate contact email.
type ConflictError struct {
	Message string
}

func NewConflictError(format string, args ...any) *ConflictError {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

func (e *ConflictError) Error() string {
	return e.Message
}
