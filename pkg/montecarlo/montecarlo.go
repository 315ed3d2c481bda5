// Package montecarlo estimates integrals and expectations by averaging an
// integrand over random variates, reporting the standard error of the mean
// as the reliability signal alongside every point estimate.
package montecarlo

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"mcarlo/pkg/core"
	"mcarlo/pkg/dist"
	"mcarlo/pkg/uniform"
)

// Integrand evaluates the function being averaged at a sampled point. A
// returned error marks the point as a failed numeric evaluation; the sample
// is excluded and tallied, never silently dropped.
type Integrand func(x float64) (float64, error)

// Request describes one estimation run.
type Request struct {
	// Integrand is evaluated at each variate drawn from Sampling.
	Integrand Integrand

	// Sampling is the distribution variates are drawn from. It may differ
	// from the distribution appearing in the integral; see Expectation and
	// Integral for the importance-sampled forms.
	Sampling dist.Spec

	// N is the number of variates to draw.
	N int

	// KeepSamples retains the evaluated integrand values on the Result
	// for diagnostics.
	KeepSamples bool
}

// Result is the immutable outcome of one estimation run.
type Result struct {
	// Estimate is the sample mean of the kept integrand values.
	Estimate float64

	// StdErr is the sample standard deviation divided by sqrt(kept).
	// Always non-negative; it is the estimator's trustworthiness signal.
	StdErr float64

	// N is the requested sample size, Kept the number of values entering
	// the estimate, and Excluded the number of sampled points whose
	// evaluation failed or was non-finite. N == Kept + Excluded.
	N        int
	Kept     int
	Excluded int

	// Values holds the kept integrand evaluations when the request asked
	// for them, nil otherwise.
	Values []float64
}

// Estimate runs classical Monte Carlo integration: draw N variates from the
// sampling distribution, average the integrand over them. Per-point numeric
// failures are excluded and counted; the call only fails outright for
// malformed requests or when every sample was excluded.
func Estimate(req Request, src *uniform.Source) (Result, error) {
	if req.N <= 0 {
		return Result{}, fmt.Errorf("estimate with N=%d: %w", req.N, core.ErrInvalidArgument)
	}
	if req.Integrand == nil {
		return Result{}, fmt.Errorf("estimate with nil integrand: %w", core.ErrInvalidArgument)
	}

	xs, err := dist.Generate(req.Sampling, req.N, src)
	if err != nil {
		return Result{}, err
	}

	values := make([]float64, 0, req.N)
	excluded := 0
	for _, x := range xs {
		v, err := req.Integrand(x)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			excluded++
			continue
		}
		values = append(values, v)
	}

	if len(values) == 0 {
		return Result{}, &core.NumericError{
			Op:  "estimate",
			X:   math.NaN(),
			Err: fmt.Errorf("all %d samples excluded", req.N),
		}
	}

	res := Result{
		Estimate: stat.Mean(values, nil),
		StdErr:   stdErr(values),
		N:        req.N,
		Kept:     len(values),
		Excluded: excluded,
	}
	if req.KeepSamples {
		res.Values = values
	}
	return res, nil
}

func stdErr(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	return stat.StdDev(values, nil) / math.Sqrt(float64(len(values)))
}
