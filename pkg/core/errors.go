package core

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument reports a malformed request: non-positive sample counts
// or distribution parameters outside their domain. Calls failing with it are
// not retried.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrUnsupportedDistribution reports that no inverse-CDF or derived-transform
// rule exists for the requested distribution family.
var ErrUnsupportedDistribution = errors.New("unsupported distribution")

// NumericError records a failed numeric evaluation (overflow, domain error,
// division by zero) at a specific point. The estimator catches these per
// sample and tallies them rather than aborting the whole estimate.
type NumericError struct {
	Op  string
	X   float64
	Err error
}

func (e *NumericError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("numeric evaluation of %s at x=%g: %v", e.Op, e.X, e.Err)
	}
	return fmt.Sprintf("numeric evaluation of %s at x=%g failed", e.Op, e.X)
}

func (e *NumericError) Unwrap() error { return e.Err }
