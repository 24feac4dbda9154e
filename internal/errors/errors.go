// Package errors provides sentinel and structured errors for generate-component.
package errors

import (
	"fmt"
	"strings"
)

// DetailError captures structured error information for terminal display.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the offending file or directory path (optional).
	Location string

	// Field is the configuration key involved (optional).
	Field string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}
	if e.Field != "" {
		b.WriteString("  Field: ")
		b.WriteString(e.Field)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewInputError reports a missing component name.
func NewInputError(message, hint string) error {
	return &DetailError{
		Type:    "missing component name",
		Message: message,
		Hint:    hint,
		Cause:   ErrInput,
	}
}

// NewValidationError creates a validation error for a configuration field.
func NewValidationError(field, message, hint string) error {
	return &DetailError{
		Type:    "validation failed",
		Message: message,
		Field:   field,
		Hint:    hint,
		Cause:   ErrValidation,
	}
}

// NewConfigLoadError reports an override file that exists but cannot be used.
func NewConfigLoadError(path string, err error) error {
	return &DetailError{
		Type:     "config load failed",
		Message:  err.Error(),
		Location: path,
		Hint:     "Fix or remove the override file and try again.",
		Cause:    fmt.Errorf("%w: %w", ErrConfigLoad, err),
	}
}

// NewCollisionError reports a component directory that already exists.
func NewCollisionError(dir string) error {
	return &DetailError{
		Type:     "component already exists",
		Message:  fmt.Sprintf("a component with the same name already exists in %s", dir),
		Location: dir,
		Hint:     "Delete this directory and try again, or create another component.",
		Cause:    ErrCollision,
	}
}

// NewIOError wraps a filesystem failure on path.
func NewIOError(op, path string, err error) error {
	return &DetailError{
		Type:     op + " failed",
		Message:  err.Error(),
		Location: path,
		Cause:    fmt.Errorf("%w: %w", ErrIO, err),
	}
}
