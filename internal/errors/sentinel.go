package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrInput indicates the invocation is missing required input (the component name).
	ErrInput = errors.New("missing input")

	// ErrValidation indicates a setting holds a value outside its closed set.
	ErrValidation = errors.New("validation error")

	// ErrConfigLoad indicates an override file exists but could not be read or parsed.
	ErrConfigLoad = errors.New("config load error")

	// ErrCollision indicates the target component directory already exists.
	ErrCollision = errors.New("component already exists")

	// ErrIO indicates a directory creation or file write failed.
	ErrIO = errors.New("i/o error")
)
