package main

import (
	"flag"
	"runtime"
)

// Config represents the command-line parameters for the sweep run.
type Config struct {
	Samples    int
	Workers    int
	Seed       uint64
	QuadPoints int
	LambdaMin  float64
	LambdaMax  float64
	LambdaStep float64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Samples:    100000,
		Workers:    runtime.NumCPU(),
		Seed:       1337,
		QuadPoints: 150,
		LambdaMin:  2,
		LambdaMax:  6,
		LambdaStep: 0.5,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Samples, "n", c.Samples, "Monte Carlo samples per sweep element")
	fs.IntVar(&c.Workers, "workers", c.Workers, "number of worker goroutines")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "base seed for the uniform sub-streams")
	fs.IntVar(&c.QuadPoints, "quadpoints", c.QuadPoints, "points for the quadrature baseline")
	fs.Float64Var(&c.LambdaMin, "lambda-min", c.LambdaMin, "first lambda in the sweep")
	fs.Float64Var(&c.LambdaMax, "lambda-max", c.LambdaMax, "last lambda in the sweep")
	fs.Float64Var(&c.LambdaStep, "lambda-step", c.LambdaStep, "lambda increment")
}

// Lambdas expands the configured range into the sweep's parameter values.
// A non-positive step or an inverted range yields nil; main treats that as
// an empty sweep and exits.
func (c *Config) Lambdas() []float64 {
	if c.LambdaStep <= 0 || c.LambdaMax < c.LambdaMin {
		return nil
	}
	var out []float64
	for l := c.LambdaMin; l <= c.LambdaMax+1e-9; l += c.LambdaStep {
		out = append(out, l)
	}
	return out
}
