// Package sweep runs the Monte Carlo estimator and the quadrature baseline
// side by side over a parameter sweep, producing one comparison record per
// parameter value.
package sweep

import (
	"fmt"
	"math"
	"runtime"
	"sync"
	"time"

	"mcarlo/pkg/montecarlo"
	"mcarlo/pkg/quadrature"
	"mcarlo/pkg/uniform"
)

// Problem is one sweep element: the Monte Carlo request plus the same
// nominal integral posed to the quadrature baseline.
type Problem struct {
	MC montecarlo.Request

	// Baseline is the integrand handed to the deterministic rule, with
	// its evaluation bounds (possibly infinite) and point count.
	Baseline   func(x float64) float64
	Lo, Hi     float64
	QuadPoints int
}

// Record pairs both estimators' outputs on one parameter value. AbsDiff is
// |mc − quad|; RelDiff is AbsDiff over |quad|, NaN when the baseline
// estimate is zero.
type Record struct {
	Param   float64
	MC      montecarlo.Result
	Quad    quadrature.Result
	AbsDiff float64
	RelDiff float64
	Elapsed time.Duration
}

// Config controls sweep execution.
type Config struct {
	// Workers is the number of concurrent sweep workers.
	Workers int

	// Seed is the base seed; element i draws from uniform.Substream(Seed, i)
	// so concurrent elements never share or interleave draws and a sweep
	// is reproducible regardless of scheduling.
	Seed uint64
}

// DefaultConfig returns the standard sweep configuration.
func DefaultConfig() Config {
	return Config{
		Workers: runtime.NumCPU(),
		Seed:    1337,
	}
}

// Run builds one Problem per parameter value and evaluates them all,
// returning records in the same order as params. Build errors abort the
// sweep before any estimation starts; per-sample numeric failures stay
// inside each record's exclusion tally.
func Run(cfg Config, params []float64, build func(p float64) (Problem, error)) ([]Record, error) {
	if build == nil {
		return nil, fmt.Errorf("sweep: nil build function")
	}
	if len(params) == 0 {
		return nil, nil
	}

	problems := make([]Problem, len(params))
	for i, p := range params {
		prob, err := build(p)
		if err != nil {
			return nil, fmt.Errorf("sweep: build for param %g: %w", p, err)
		}
		problems[i] = prob
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(params) {
		workers = len(params)
	}

	records := make([]Record, len(params))
	errs := make([]error, len(params))
	jobs := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				records[i], errs[i] = runOne(params[i], problems[i], uniform.Substream(cfg.Seed, uint64(i)))
			}
		}()
	}

	for i := range problems {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("sweep: param %g: %w", params[i], err)
		}
	}
	return records, nil
}

func runOne(param float64, prob Problem, src *uniform.Source) (Record, error) {
	start := time.Now()

	mc, err := montecarlo.Estimate(prob.MC, src)
	if err != nil {
		return Record{}, err
	}
	qd, err := quadrature.Fixed(prob.Baseline, prob.Lo, prob.Hi, prob.QuadPoints)
	if err != nil {
		return Record{}, err
	}

	abs := math.Abs(mc.Estimate - qd.Estimate)
	rel := math.NaN()
	if qd.Estimate != 0 {
		rel = abs / math.Abs(qd.Estimate)
	}
	return Record{
		Param:   param,
		MC:      mc,
		Quad:    qd,
		AbsDiff: abs,
		RelDiff: rel,
		Elapsed: time.Since(start),
	}, nil
}
