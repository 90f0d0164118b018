package gocube

import (
	"errors"
	"fmt"
)

// Sentinel errors for the gocube package.
var (
	// Board errors
	ErrOutOfRange    = errors.New("gocube: facelet index out of range")
	ErrInvalidLength = errors.New("gocube: facelet string must be 54 characters")

	// Parsing errors
	ErrInvalidNotation = errors.New("gocube: invalid move notation")

	// Collaborator errors
	ErrSolver   = errors.New("gocube: solver failed")
	ErrApplier  = errors.New("gocube: move applier failed")
	ErrNoSolver = errors.New("gocube: no solver configured")
)

// OutOfRangeError reports a facelet index outside [0,53].
type OutOfRangeError struct {
	Index int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("gocube: facelet index %d out of range [0,%d]", e.Index, FaceletCount-1)
}

func (e *OutOfRangeError) Unwrap() error { return ErrOutOfRange }

// InvalidLengthError reports a serialized cube whose length is not 54.
type InvalidLengthError struct {
	Length int
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("gocube: facelet string has %d characters, want %d", e.Length, FaceletCount)
}

func (e *InvalidLengthError) Unwrap() error { return ErrInvalidLength }

// SolverError wraps a failure reported by the solver collaborator.
// errors.Is matches both ErrSolver and the underlying cause.
type SolverError struct {
	Err error
}

func (e *SolverError) Error() string {
	if e.Err == nil {
		return ErrSolver.Error()
	}
	return ErrSolver.Error() + ": " + e.Err.Error()
}

func (e *SolverError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrSolver}
	}
	return []error{ErrSolver, e.Err}
}
