package errors

import "errors"

// Exit codes returned by the CLI.
const (
	// ExitSuccess indicates the command completed successfully. A missing
	// component name also exits with this code.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates a language or style value is not supported.
	ExitValidationError = 2

	// ExitConfigError indicates an override file could not be loaded.
	ExitConfigError = 3

	// ExitCollision indicates the component directory already exists.
	ExitCollision = 4

	// ExitIOError indicates a directory or file could not be written.
	ExitIOError = 5
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	Err  error
	Code int

	// Printed is set once the command layer has displayed the error.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, ErrInput):
		return ExitSuccess
	case errors.Is(err, ErrValidation):
		return ExitValidationError
	case errors.Is(err, ErrConfigLoad):
		return ExitConfigError
	case errors.Is(err, ErrCollision):
		return ExitCollision
	case errors.Is(err, ErrIO):
		return ExitIOError
	default:
		return ExitGeneralError
	}
}

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitValidationError:
		return "Validation Error"
	case ExitConfigError:
		return "Config Error"
	case ExitCollision:
		return "Collision"
	case ExitIOError:
		return "I/O Error"
	default:
		return "Unknown"
	}
}
