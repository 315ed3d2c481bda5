package uniform

import (
	"fmt"

	"golang.org/x/exp/rand"

	"mcarlo/pkg/core"
)

// Source is a thin convenience wrapper around golang.org/x/exp/rand for
// deterministic seeding. Values are drawn from the half-open interval [0,1):
// 0 is attainable, 1 is not. The wrapped generator is the same Source type
// gonum's distuv consumes, so a Source can feed library distributions
// directly.
//
// A Source is not safe for concurrent use; give each worker its own
// Substream instead of sharing one.
type Source struct {
	r *rand.Rand
}

// New creates a deterministic Source using the provided seed.
func New(seed uint64) *Source {
	return &Source{r: rand.New(rand.NewSource(seed))}
}

// Substream creates a deterministic Source for the index-th sub-stream of
// the given base seed. The same (seed, index) pair always reproduces the
// same sequence, and distinct indices yield statistically independent
// streams, so concurrent workers can be handed disjoint reproducible draws.
func Substream(seed, index uint64) *Source {
	return New(mix(seed, index))
}

// Draw returns n independent Uniform(0,1) values. It fails if n is not
// positive.
func (s *Source) Draw(n int) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("uniform draw of %d values: %w", n, core.ErrInvalidArgument)
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = s.r.Float64()
	}
	return out, nil
}

// Float64 returns a single value in [0,1).
func (s *Source) Float64() float64 {
	return s.r.Float64()
}

// Rand exposes the underlying generator for advanced use.
func (s *Source) Rand() *rand.Rand { return s.r }

// mix derives a sub-stream seed with a splitmix64 round. index is offset so
// Substream(seed, 0) never aliases New(seed).
func mix(seed, index uint64) uint64 {
	z := seed + 0x9e3779b97f4a7c15*(index+1)
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
