// Package quadrature adapts gonum's fixed-location quadrature as the
// deterministic baseline the Monte Carlo estimator is compared against.
// Its error bound is a nested-rule proxy and is advisory only: on sharply
// peaked integrands it can come back deceptively small, which is exactly
// the failure mode the Monte Carlo standard error exists to expose.
package quadrature

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate/quad"

	"mcarlo/pkg/core"
)

// Result holds a deterministic integral estimate and its nominal error
// bound. Callers must never rely on ErrBound for correctness.
type Result struct {
	Estimate float64
	ErrBound float64
}

// Fixed integrates f over [lo, hi] with an n-point fixed rule. Infinite
// bounds are allowed; gonum transforms the domain internally. The reported
// ErrBound is the difference against the half-order rule.
func Fixed(f func(float64) float64, lo, hi float64, n int) (Result, error) {
	if n <= 0 {
		return Result{}, fmt.Errorf("quadrature with %d points: %w", n, core.ErrInvalidArgument)
	}
	if f == nil {
		return Result{}, fmt.Errorf("quadrature with nil integrand: %w", core.ErrInvalidArgument)
	}
	if lo >= hi {
		return Result{}, fmt.Errorf("quadrature bounds [%g, %g]: %w", lo, hi, core.ErrInvalidArgument)
	}

	estimate := quad.Fixed(f, lo, hi, n, nil, 0)

	half := n / 2
	if half < 1 {
		half = 1
	}
	coarse := quad.Fixed(f, lo, hi, half, nil, 0)

	return Result{
		Estimate: estimate,
		ErrBound: math.Abs(estimate - coarse),
	}, nil
}
