package quadrature

import (
	"errors"
	"math"
	"testing"

	"mcarlo/pkg/core"
)

func TestFixedSmoothIntegral(t *testing.T) {
	// ∫_0^1 x^2 dx = 1/3.
	res, err := Fixed(func(x float64) float64 { return x * x }, 0, 1, 50)
	if err != nil {
		t.Fatalf("fixed failed: %v", err)
	}
	if math.Abs(res.Estimate-1.0/3) > 1e-10 {
		t.Fatalf("estimate = %.12f, want 1/3", res.Estimate)
	}
	if res.ErrBound < 0 {
		t.Fatalf("error bound %g is negative", res.ErrBound)
	}
}

func TestFixedImproperDomain(t *testing.T) {
	// Γ(5) = ∫_0^∞ x^4 e^(-x) dx = 24.
	f := func(x float64) float64 { return math.Pow(x, 4) * math.Exp(-x) }
	res, err := Fixed(f, 0, math.Inf(1), 200)
	if err != nil {
		t.Fatalf("fixed failed: %v", err)
	}
	if math.Abs(res.Estimate-24) > 1e-4 {
		t.Fatalf("estimate = %.8f, want 24", res.Estimate)
	}
}

func TestFixedRejectsBadRequests(t *testing.T) {
	f := func(x float64) float64 { return x }
	if _, err := Fixed(f, 0, 1, 0); !errors.Is(err, core.ErrInvalidArgument) {
		t.Fatalf("n=0: got %v, want ErrInvalidArgument", err)
	}
	if _, err := Fixed(nil, 0, 1, 10); !errors.Is(err, core.ErrInvalidArgument) {
		t.Fatalf("nil integrand: got %v, want ErrInvalidArgument", err)
	}
	if _, err := Fixed(f, 1, 1, 10); !errors.Is(err, core.ErrInvalidArgument) {
		t.Fatalf("empty interval: got %v, want ErrInvalidArgument", err)
	}
}
