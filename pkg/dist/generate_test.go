package dist

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/stat"

	"mcarlo/pkg/core"
	"mcarlo/pkg/uniform"
)

func TestExponentialInverseTransformMoments(t *testing.T) {
	src := uniform.New(12345)
	xs, err := Generate(Exponential(1), 10000, src)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	mean := stat.Mean(xs, nil)
	variance := stat.Variance(xs, nil)
	if math.Abs(mean-1) > 0.05 {
		t.Fatalf("exponential mean = %.4f, want 1.0 +/- 0.05", mean)
	}
	if math.Abs(variance-1) > 0.1 {
		t.Fatalf("exponential variance = %.4f, want 1.0 +/- 0.1", variance)
	}
	for i, x := range xs {
		if x < 0 || math.IsInf(x, 0) || math.IsNaN(x) {
			t.Fatalf("variate %d = %g outside support", i, x)
		}
	}
}

func TestChiSquaredDerivedMean(t *testing.T) {
	src := uniform.New(777)
	ys, err := Generate(ChiSquared(3), 10000, src)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	mean := stat.Mean(ys, nil)
	if math.Abs(mean-6) > 0.1 {
		t.Fatalf("chi-squared(df=6) mean = %.4f, want 6.0 +/- 0.1", mean)
	}
}

func TestGammaDerivedMoments(t *testing.T) {
	spec := Gamma(4, 2.5)
	src := uniform.New(2024)
	ys, err := Generate(spec, 20000, src)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	wantMean, err := spec.Mean()
	if err != nil {
		t.Fatalf("mean failed: %v", err)
	}
	wantVar, err := spec.Variance()
	if err != nil {
		t.Fatalf("variance failed: %v", err)
	}
	if wantMean != 10 {
		t.Fatalf("analytic gamma mean = %g, want 10", wantMean)
	}

	mean := stat.Mean(ys, nil)
	variance := stat.Variance(ys, nil)
	if math.Abs(mean-wantMean) > 0.15 {
		t.Fatalf("gamma mean = %.4f, want %.4f +/- 0.15", mean, wantMean)
	}
	if math.Abs(variance-wantVar)/wantVar > 0.1 {
		t.Fatalf("gamma variance = %.4f, want %.4f +/- 10%%", variance, wantVar)
	}
}

func TestBetaDerivedMean(t *testing.T) {
	spec := Beta(2, 3)
	src := uniform.New(55)
	ys, err := Generate(spec, 20000, src)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	for i, y := range ys {
		if y <= 0 || y >= 1 {
			t.Fatalf("beta variate %d = %g outside (0,1)", i, y)
		}
	}
	mean := stat.Mean(ys, nil)
	if math.Abs(mean-0.4) > 0.02 {
		t.Fatalf("beta(2,3) mean = %.4f, want 0.4 +/- 0.02", mean)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	specs := []Spec{
		Exponential(2),
		Normal(0, 1),
		ChiSquared(2),
		Gamma(3, 0.5),
		Beta(1, 4),
		Weibull(1, 1.5),
		Uniform(-1, 1),
	}
	for _, spec := range specs {
		a, err := Generate(spec, 100, uniform.New(31337))
		if err != nil {
			t.Fatalf("%s: first generate failed: %v", spec.Kind, err)
		}
		b, err := Generate(spec, 100, uniform.New(31337))
		if err != nil {
			t.Fatalf("%s: second generate failed: %v", spec.Kind, err)
		}
		for i := range a {
			if a[i] != b[i] {
				t.Fatalf("%s: variate %d differs: %g vs %g", spec.Kind, i, a[i], b[i])
			}
		}
	}
}

func TestGenerateRejectsBadRequests(t *testing.T) {
	src := uniform.New(1)

	if _, err := Generate(Exponential(1), 0, src); !errors.Is(err, core.ErrInvalidArgument) {
		t.Fatalf("n=0: got %v, want ErrInvalidArgument", err)
	}
	if _, err := Generate(Spec{Kind: Kind(99)}, 10, src); !errors.Is(err, core.ErrUnsupportedDistribution) {
		t.Fatalf("unknown family: got %v, want ErrUnsupportedDistribution", err)
	}

	bad := []Spec{
		Exponential(0),
		Exponential(-1),
		Normal(0, 0),
		Uniform(2, 2),
		ChiSquared(0),
		Gamma(0, 1),
		Gamma(2, -1),
		Beta(1, 0),
		Weibull(0, 1),
	}
	for _, spec := range bad {
		if _, err := Generate(spec, 10, src); !errors.Is(err, core.ErrInvalidArgument) {
			t.Fatalf("%+v: got %v, want ErrInvalidArgument", spec, err)
		}
	}
}

func TestClampKeepsLogFinite(t *testing.T) {
	// A zero uniform must not map to +Inf under -log(U).
	x := -math.Log(clampU(0))
	if math.IsInf(x, 1) {
		t.Fatalf("clamped -log(0) is +Inf")
	}
	if x <= 0 {
		t.Fatalf("clamped -log(0) = %g, want a large positive tail value", x)
	}
}
