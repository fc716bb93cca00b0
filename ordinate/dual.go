package ordinate

import "math"

// DualOrdinate is a forward-mode automatic-differentiation carrier: a
// pair (R, I) where R is the value and I the derivative with respect to
// whichever parameter is being differentiated. Arithmetic propagates the
// derivative through the usual dual-number rules, discarding terms of
// order I^2 and above. Comparison (Compare/LessThan) uses R only.
type DualOrdinate struct {
	R Ordinate // real part (the value)
	I Ordinate // infinitesimal part (the derivative)
}

// NewDual builds a dual number seeded for differentiation with respect
// to its own value, i.e. (value, 1).
func NewDual(value Ordinate) DualOrdinate {
	return DualOrdinate{R: value, I: 1}
}

// Constant builds a dual number with a zero derivative, for values that
// do not depend on the differentiation parameter.
func Constant(value Ordinate) DualOrdinate {
	return DualOrdinate{R: value, I: 0}
}

// Add returns the component-wise sum.
func (d DualOrdinate) Add(o DualOrdinate) DualOrdinate {
	return DualOrdinate{R: d.R.Add(o.R), I: d.I.Add(o.I)}
}

// Sub returns the component-wise difference.
func (d DualOrdinate) Sub(o DualOrdinate) DualOrdinate {
	return DualOrdinate{R: d.R.Sub(o.R), I: d.I.Sub(o.I)}
}

// Mul implements (a+bi)(c+di) = ac + (ad+bc)i, discarding the
// higher-order i^2 term.
func (d DualOrdinate) Mul(o DualOrdinate) DualOrdinate {
	return DualOrdinate{
		R: d.R.Mul(o.R),
		I: d.R.Mul(o.I).Add(d.I.Mul(o.R)),
	}
}

// Scale multiplies both components by a plain scalar.
func (d DualOrdinate) Scale(s Ordinate) DualOrdinate {
	return DualOrdinate{R: d.R.Mul(s), I: d.I.Mul(s)}
}

// Div implements the quotient rule: (a+bi)/(c+di) = a/c + ((bc-ad)/c^2)i.
func (d DualOrdinate) Div(o DualOrdinate) DualOrdinate {
	return DualOrdinate{
		R: d.R.Div(o.R),
		I: d.I.Mul(o.R).Sub(d.R.Mul(o.I)).Div(o.R.Mul(o.R)),
	}
}

// Pow raises d to a constant real power n: (a+bi)^n = a^n + n*a^(n-1)*b*i.
func (d DualOrdinate) Pow(n float64) DualOrdinate {
	r := math.Pow(float64(d.R), n)
	dr := n * math.Pow(float64(d.R), n-1)

	return DualOrdinate{R: Ordinate(r), I: d.I.Mul(Ordinate(dr))}
}

// Sqrt implements the chain rule for sqrt: d/dx sqrt(a) = 1/(2 sqrt(a)).
func (d DualOrdinate) Sqrt() DualOrdinate {
	r := math.Sqrt(float64(d.R))

	return DualOrdinate{R: Ordinate(r), I: d.I.Div(Ordinate(2 * r))}
}

// Cos implements the chain rule for cosine: d/dx cos(a) = -sin(a).
func (d DualOrdinate) Cos() DualOrdinate {
	return DualOrdinate{
		R: Ordinate(math.Cos(float64(d.R))),
		I: d.I.Mul(Ordinate(-math.Sin(float64(d.R)))),
	}
}

// Acos implements the chain rule for arccosine:
// d/dx acos(a) = -1/sqrt(1-a^2).
func (d DualOrdinate) Acos() DualOrdinate {
	return DualOrdinate{
		R: Ordinate(math.Acos(float64(d.R))),
		I: d.I.Mul(Ordinate(-1 / math.Sqrt(1-float64(d.R)*float64(d.R)))),
	}
}

// Compare returns -1, 0, or 1 comparing only the real parts of d and o.
func (d DualOrdinate) Compare(o DualOrdinate) int {
	switch {
	case d.R.LessThan(o.R):
		return -1
	case o.R.LessThan(d.R):
		return 1
	default:
		return 0
	}
}

// LessThan compares only the real parts.
func (d DualOrdinate) LessThan(o DualOrdinate) bool { return d.R.LessThan(o.R) }
