package ordinate

// Rational32 is a signed 32-bit rational number used for sample rates.
//
// Encodings:
//   - Num == 0 && Den == 0: NaN.
//   - Num != 0 && Den == 0: signed infinity (sign of Num).
//   - otherwise: the finite value Num/Den.
//
// Den is unsigned by construction: Normalize never produces a negative
// denominator, so a rational's sign lives entirely in Num.
type Rational32 struct {
	Num int32
	Den uint32
}

// NewRational32 builds a finite rational from an integer numerator and a
// strictly positive denominator.
func NewRational32(num int32, den uint32) Rational32 {
	return Rational32{Num: num, Den: den}
}

// RationalNaN returns the (0,0) NaN encoding.
func RationalNaN() Rational32 { return Rational32{Num: 0, Den: 0} }

// RationalInf returns the signed-infinity encoding for the given sign;
// sign < 0 yields negative infinity, sign >= 0 yields positive infinity.
func RationalInf(sign int) Rational32 {
	if sign < 0 {
		return Rational32{Num: -1, Den: 0}
	}

	return Rational32{Num: 1, Den: 0}
}

// IsNaN reports whether r encodes NaN.
func (r Rational32) IsNaN() bool { return r.Num == 0 && r.Den == 0 }

// IsInf reports whether r encodes a signed infinity.
func (r Rational32) IsInf() bool { return r.Num != 0 && r.Den == 0 }

// gcd32 returns the non-negative greatest common divisor of a and b.
func gcd32(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// Normalize divides Num and Den by their gcd, leaving Den unsigned and
// the sign of the value entirely in Num. NaN and infinity encodings pass
// through unchanged.
func (r Rational32) Normalize() Rational32 {
	if r.IsNaN() || r.IsInf() {
		return r
	}
	if r.Num == 0 {
		return Rational32{Num: 0, Den: 1}
	}

	g := gcd32(int64(r.Num), int64(r.Den))
	if g <= 1 {
		return r
	}

	return Rational32{Num: int32(int64(r.Num) / g), Den: uint32(int64(r.Den) / g)}
}

// Float64 converts r to a float64; NaN and infinite encodings convert to
// math.NaN()/+-Inf via Ordinate's own encodings.
func (r Rational32) Float64() float64 {
	if r.IsNaN() {
		return float64(NaN())
	}
	if r.IsInf() {
		if r.Num < 0 {
			return float64(NegativeInfinity)
		}

		return float64(PositiveInfinity)
	}

	return float64(r.Num) / float64(r.Den)
}

func sign32(n int32) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

// continuedFractionCompare compares two strictly positive fractions
// n1/d1 and n2/d2 (d1, d2 > 0) via their continued-fraction expansions,
// so the comparison is exact even on non-reduced forms and never
// overflows (each step strictly shrinks the remainder). Returns -1, 0, 1.
func continuedFractionCompare(n1, d1, n2, d2 int64) int {
	flip := false
	for {
		q1, r1 := n1/d1, n1%d1
		q2, r2 := n2/d2, n2%d2

		if q1 != q2 {
			less := q1 < q2
			if flip {
				less = !less
			}
			if less {
				return -1
			}

			return 1
		}

		if r1 == 0 && r2 == 0 {
			return 0
		}
		if r1 == 0 {
			if flip {
				return 1
			}

			return -1
		}
		if r2 == 0 {
			if flip {
				return -1
			}

			return 1
		}

		n1, d1 = d1, r1
		n2, d2 = d2, r2
		flip = !flip
	}
}

// Compare orders a and b, returning -1, 0, or 1. It returns
// ErrZeroDenominatorCompare if either operand is NaN.
//
// The comparison never cross-multiplies Num*Den (which can overflow for
// large non-reduced forms); instead it walks the continued-fraction
// expansions of both operands, which is exact regardless of whether
// either side has been Normalize-d.
func (a Rational32) Compare(b Rational32) (int, error) {
	if a.IsNaN() || b.IsNaN() {
		return 0, ErrZeroDenominatorCompare
	}

	aInf, bInf := a.IsInf(), b.IsInf()
	switch {
	case aInf && bInf:
		sa, sb := sign32(a.Num), sign32(b.Num)
		switch {
		case sa < sb:
			return -1, nil
		case sa > sb:
			return 1, nil
		}

		return 0, nil
	case aInf:
		if a.Num < 0 {
			return -1, nil
		}

		return 1, nil
	case bInf:
		if b.Num < 0 {
			return 1, nil
		}

		return -1, nil
	}

	sa, sb := sign32(a.Num), sign32(b.Num)
	if sa != sb {
		if sa < sb {
			return -1, nil
		}

		return 1, nil
	}
	if sa == 0 {
		return 0, nil
	}

	n1, n2 := int64(a.Num), int64(b.Num)
	if n1 < 0 {
		n1 = -n1
	}
	if n2 < 0 {
		n2 = -n2
	}

	cmp := continuedFractionCompare(n1, int64(a.Den), n2, int64(b.Den))
	if sa < 0 {
		cmp = -cmp
	}

	return cmp, nil
}

// LessThan reports a < b; NaN operands make it return false, mirroring
// Ordinate.LessThan's IEEE-consistent behavior.
func (a Rational32) LessThan(b Rational32) bool {
	cmp, err := a.Compare(b)

	return err == nil && cmp < 0
}

// Equal reports whether a and b represent the same value, including
// matching NaN/infinity encodings, without requiring normalization.
func (a Rational32) Equal(b Rational32) bool {
	if a.IsNaN() || b.IsNaN() {
		return a.IsNaN() && b.IsNaN()
	}

	cmp, err := a.Compare(b)

	return err == nil && cmp == 0
}
