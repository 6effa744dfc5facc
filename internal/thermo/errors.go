package thermo

import (
	"errors"
	"fmt"
)

// Domain errors for solve operations.
var (
	// ErrInsufficientInputs indicates no branch's prerequisite set is
	// satisfied. Recoverable by supplying more fields.
	ErrInsufficientInputs = errors.New("thermo: insufficient inputs (no branch satisfied)")

	// ErrDegenerate indicates a required ratio denominator is zero or
	// a supplied efficiency/ratio is non-positive.
	ErrDegenerate = errors.New("thermo: degenerate configuration")

	// ErrPropertyLookup indicates the steam property collaborator
	// could not resolve a state.
	ErrPropertyLookup = errors.New("thermo: property lookup failed")
)

// DegenerateError names the quantity that triggered a degenerate
// configuration.
type DegenerateError struct {
	Quantity string
	Reason   string
}

func (e *DegenerateError) Error() string {
	return fmt.Sprintf("%v: %s (%s)", ErrDegenerate, e.Quantity, e.Reason)
}

func (e *DegenerateError) Unwrap() error {
	return ErrDegenerate
}

// LookupError wraps a steam table failure with the state that was
// requested.
type LookupError struct {
	State   string
	Wrapped error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%v: %s: %v", ErrPropertyLookup, e.State, e.Wrapped)
}

func (e *LookupError) Unwrap() error {
	return ErrPropertyLookup
}
