package ordinate

import "math"

// Epsilon is the fixed absolute tolerance used by ApproxEqual.
const Epsilon = 1e-4

// Ordinate is a scalar on the continuous 1D time line: a finite real,
// +/-Inf, or NaN. Equality (==) on the underlying float64 is exact IEEE
// equality; ApproxEqual should be used wherever a tolerance is wanted.
type Ordinate float64

// Zero is the additive identity.
const Zero Ordinate = 0

// PositiveInfinity and NegativeInfinity are the signed infinities.
var (
	PositiveInfinity = Ordinate(math.Inf(1))
	NegativeInfinity = Ordinate(math.Inf(-1))
)

// NaN returns an Ordinate carrying the IEEE not-a-number value.
func NaN() Ordinate { return Ordinate(math.NaN()) }

// IsNaN reports whether o is NaN.
func (o Ordinate) IsNaN() bool { return math.IsNaN(float64(o)) }

// IsInf reports whether o is +/-Inf.
func (o Ordinate) IsInf() bool { return math.IsInf(float64(o), 0) }

// Add returns o+other with IEEE semantics (inf absorbs finite values,
// opposite infinities sum to NaN).
func (o Ordinate) Add(other Ordinate) Ordinate { return o + other }

// Sub returns o-other with IEEE semantics.
func (o Ordinate) Sub(other Ordinate) Ordinate { return o - other }

// Mul returns o*other with IEEE semantics.
func (o Ordinate) Mul(other Ordinate) Ordinate { return o * other }

// Div returns o/other. Division by zero yields signed infinity or NaN
// per IEEE 754; it never panics.
func (o Ordinate) Div(other Ordinate) Ordinate { return o / other }

// Neg returns -o.
func (o Ordinate) Neg() Ordinate { return -o }

// Equal is strict IEEE equality (NaN != NaN).
func (o Ordinate) Equal(other Ordinate) bool { return float64(o) == float64(other) }

// ApproxEqual reports whether o and other differ by no more than
// Epsilon. Two infinities of the same sign compare approximately equal;
// NaN never compares approximately equal to anything, including itself.
func (o Ordinate) ApproxEqual(other Ordinate) bool {
	if o.IsNaN() || other.IsNaN() {
		return false
	}
	if o.IsInf() || other.IsInf() {
		return o == other
	}

	return math.Abs(float64(o)-float64(other)) <= Epsilon
}

// LessThan is a strict, IEEE-consistent ordering (false whenever either
// operand is NaN).
func (o Ordinate) LessThan(other Ordinate) bool { return float64(o) < float64(other) }

// Min returns the lesser of a and b.
func Min(a, b Ordinate) Ordinate {
	if a.LessThan(b) {
		return a
	}

	return b
}

// Max returns the greater of a and b.
func Max(a, b Ordinate) Ordinate {
	if a.LessThan(b) {
		return b
	}

	return a
}
