package montecarlo

import (
	"fmt"

	"mcarlo/pkg/core"
	"mcarlo/pkg/dist"
)

// Integral builds a request estimating the plain integral of h over the
// support of the sampling distribution g, via the identity
// ∫ h(x) dx = E_g[h(X)/g(X)]. Sampling from a family with infinite support
// covers improper domains without choosing a truncation point.
func Integral(h Integrand, sampling dist.Spec, n int) (Request, error) {
	if h == nil {
		return Request{}, fmt.Errorf("integral with nil integrand: %w", core.ErrInvalidArgument)
	}
	if err := sampling.Validate(); err != nil {
		return Request{}, err
	}
	return Request{
		Integrand: weighted(h, func(x float64) (float64, error) { return 1, nil }, sampling),
		Sampling:  sampling,
		N:         n,
	}, nil
}

// Expectation builds an importance-sampled request for E_f[h(X)]: variates
// are drawn from the auxiliary distribution g and each evaluation is
// re-weighted by f(x)/g(x). With g == f it reduces to the classical
// estimator. The error formula is unchanged; the standard error of the
// re-weighted values reflects the actual sampling variance, however peaked
// the integrand.
func Expectation(h Integrand, target, sampling dist.Spec, n int) (Request, error) {
	if h == nil {
		return Request{}, fmt.Errorf("expectation with nil integrand: %w", core.ErrInvalidArgument)
	}
	if err := target.Validate(); err != nil {
		return Request{}, err
	}
	if err := sampling.Validate(); err != nil {
		return Request{}, err
	}
	return Request{
		Integrand: weighted(h, target.PDF, sampling),
		Sampling:  sampling,
		N:         n,
	}, nil
}

// weighted wraps h into h(x)·f(x)/g(x). A zero sampling density at a drawn
// point is a per-sample numeric failure: the estimator excludes and tallies
// it instead of propagating an infinity.
func weighted(h Integrand, target func(float64) (float64, error), sampling dist.Spec) Integrand {
	return func(x float64) (float64, error) {
		g, err := sampling.PDF(x)
		if err != nil {
			return 0, err
		}
		if g == 0 {
			return 0, &core.NumericError{Op: "importance weight", X: x, Err: fmt.Errorf("sampling density is zero")}
		}
		f, err := target(x)
		if err != nil {
			return 0, err
		}
		hv, err := h(x)
		if err != nil {
			return 0, err
		}
		return hv * f / g, nil
	}
}
