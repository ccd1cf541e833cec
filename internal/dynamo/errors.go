package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for simulation operations.
var (
	// ErrInvalidState indicates a non-finite value (NaN or Inf) was observed.
	ErrInvalidState = errors.New("dynamo: invalid state (NaN or Inf detected)")

	// ErrInvalidHorizon indicates a negative number of steps.
	ErrInvalidHorizon = errors.New("dynamo: horizon must not be negative")

	// ErrNoSystems indicates an ensemble was run without systems.
	ErrNoSystems = errors.New("dynamo: no systems to run")

	// ErrSharedSystem indicates the same system was passed twice to an ensemble.
	ErrSharedSystem = errors.New("dynamo: system shared between runs")

	// ErrContextCanceled indicates the simulation was interrupted.
	ErrContextCanceled = errors.New("dynamo: simulation canceled by context")
)

// SimError records where a run stopped.
type SimError struct {
	Step    int
	Value   float64
	Wrapped error
}

func (e *SimError) Error() string {
	return fmt.Sprintf("step %d (k=%g): %v", e.Step, e.Value, e.Wrapped)
}

func (e *SimError) Unwrap() error {
	return e.Wrapped
}
