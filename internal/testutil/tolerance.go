package testutil

import (
	"fmt"
	"math"
	"math/cmplx"
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// RequireNear fails t unless got and want agree within tol, absolute or
// relative to the larger magnitude.
func RequireNear(t *testing.T, name string, got, want, tol float64) {
	t.Helper()

	if !scalar.EqualWithinAbsOrRel(got, want, tol, tol) {
		t.Fatalf("%s: got %.15g, want %.15g (tol %g)", name, got, want, tol)
	}
}

// RequireComplexNear fails t if |got-want| exceeds tol.
func RequireComplexNear(t *testing.T, name string, got, want complex128, tol float64) {
	t.Helper()

	if d := cmplx.Abs(got - want); d > tol || math.IsNaN(d) {
		t.Fatalf("%s: got %v, want %v (|diff| %g > %g)", name, got, want, d, tol)
	}
}

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}

	if floats.EqualApprox(got, want, eps) {
		return
	}

	for i := range got {
		if !scalar.EqualWithinAbs(got[i], want[i], eps) {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], math.Abs(got[i]-want[i]), eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()

	if floats.HasNaN(data) {
		t.Fatalf("NaN in %v", data)
	}

	for i, v := range data {
		if math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}

	if len(a) == 0 {
		return 0, nil
	}

	return floats.Distance(a, b, math.Inf(1)), nil
}
