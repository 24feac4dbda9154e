package generator

import "fmt"

// StepError records the state whose work failed. The wrapped error keeps its
// sentinel so errors.Is still classifies it.
type StepError struct {
	// State is the state the pipeline was trying to reach.
	State State

	Err error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %v", e.State, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
