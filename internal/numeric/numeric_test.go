package numeric_test

import (
	"testing"

	"github.com/katalvlaran/opentime/internal/numeric"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats/scalar"
)

// TestSolveQuadratic_TwoRealRoots checks a textbook factorable quadratic.
func TestSolveQuadratic_TwoRealRoots(t *testing.T) {
	// (t-2)(t-5) = t^2 - 7t + 10
	t1, t2, n := numeric.SolveQuadratic(1, -7, 10, 1e-9)
	assert.Equal(t, 2, n)
	assert.True(t, scalar.EqualWithinAbs(t1, 2, 1e-9))
	assert.True(t, scalar.EqualWithinAbs(t2, 5, 1e-9))
}

// TestSolveQuadratic_NoRealRoots checks a negative discriminant yields
// zero roots.
func TestSolveQuadratic_NoRealRoots(t *testing.T) {
	// t^2 + 1 = 0
	_, _, n := numeric.SolveQuadratic(1, 0, 1, 1e-9)
	assert.Equal(t, 0, n)
}

// TestSolveQuadratic_DegeneratesToLinear checks the a~=0 fallback.
func TestSolveQuadratic_DegeneratesToLinear(t *testing.T) {
	// 0*t^2 + 2t - 6 = 0 -> t = 3
	t1, _, n := numeric.SolveQuadratic(0, 2, -6, 1e-9)
	assert.Equal(t, 1, n)
	assert.True(t, scalar.EqualWithinAbs(t1, 3, 1e-9))
}

// TestSolveQuadratic_BothCoefficientsVanish checks the fully degenerate
// case returns no roots rather than dividing by zero.
func TestSolveQuadratic_BothCoefficientsVanish(t *testing.T) {
	_, _, n := numeric.SolveQuadratic(0, 0, 5, 1e-9)
	assert.Equal(t, 0, n)
}

// TestSolveQuadratic_SweepSatisfiesEquation checks, across a sweep of
// coefficients, that every returned root actually satisfies
// a*t^2+b*t+c = 0 within tolerance.
func TestSolveQuadratic_SweepSatisfiesEquation(t *testing.T) {
	cases := [][3]float64{
		{1, -3, 2}, {2, -4, -6}, {1, 0, -4}, {3, 7, 2}, {-1, 5, -6},
	}

	for _, coeffs := range cases {
		a, b, c := coeffs[0], coeffs[1], coeffs[2]
		t1, t2, n := numeric.SolveQuadratic(a, b, c, 1e-9)
		if n >= 1 {
			residual := a*t1*t1 + b*t1 + c
			assert.True(t, scalar.EqualWithinAbs(residual, 0, 1e-6), "root1 residual for %v", coeffs)
		}
		if n == 2 {
			residual := a*t2*t2 + b*t2 + c
			assert.True(t, scalar.EqualWithinAbs(residual, 0, 1e-6), "root2 residual for %v", coeffs)
		}
	}
}

func TestApproxZero(t *testing.T) {
	assert.True(t, numeric.ApproxZero(0.00001, 1e-4))
	assert.False(t, numeric.ApproxZero(0.1, 1e-4))
}
