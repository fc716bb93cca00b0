package linear

import (
	"github.com/katalvlaran/opentime/curve"
	"github.com/katalvlaran/opentime/interval"
	"github.com/katalvlaran/opentime/ordinate"
)

// Curve is an ordered sequence of knots, linearly interpolated between
// consecutive pairs. Evaluation and inverse lookup scan linearly over
// the knot list; a degenerate curve with 0 or 1 knots returns identity
// behavior (the single knot's output, or the zero value if empty).
type Curve struct {
	Knots []curve.ControlPoint
}

// MonotonicCurve wraps Curve with the additional guarantee that its
// knots are non-decreasing (or non-increasing) in In, which callers rely
// on for well-defined inverse lookup.
type MonotonicCurve struct {
	Curve
}

// NewMonotonicCurve validates that knots are monotonic in their input
// coordinate (either direction) before wrapping them.
func NewMonotonicCurve(knots []curve.ControlPoint) (MonotonicCurve, error) {
	if len(knots) >= 2 {
		increasing := true
		decreasing := true
		for i := 1; i < len(knots); i++ {
			if knots[i].In.LessThan(knots[i-1].In) {
				increasing = false
			}
			if knots[i-1].In.LessThan(knots[i].In) {
				decreasing = false
			}
		}
		if !increasing && !decreasing {
			return MonotonicCurve{}, ErrNotMonotonic
		}
	}

	return MonotonicCurve{Curve: Curve{Knots: knots}}, nil
}

// Evaluate scans the segment [Knots[i], Knots[i+1]) containing x and
// linearly interpolates Out by x's normalized position within it. A
// curve with 0 knots returns the zero Ordinate; a curve with exactly 1
// knot returns that knot's Out for any x (identity/degenerate case).
func (c Curve) Evaluate(x ordinate.Ordinate) ordinate.Ordinate {
	switch len(c.Knots) {
	case 0:
		return ordinate.Zero
	case 1:
		return c.Knots[0].Out
	}

	for i := 0; i < len(c.Knots)-1; i++ {
		a, b := c.Knots[i], c.Knots[i+1]
		lo, hi := a.In, b.In
		if hi.LessThan(lo) {
			lo, hi = hi, lo
		}
		if !x.LessThan(lo) && x.LessThan(hi) {
			return interpolateAt(a, b, x)
		}
	}

	// x at or beyond the final knot: clamp to the last knot's output.
	return c.Knots[len(c.Knots)-1].Out
}

func interpolateAt(a, b curve.ControlPoint, x ordinate.Ordinate) ordinate.Ordinate {
	span := b.In.Sub(a.In)
	if span.Equal(0) {
		return a.Out
	}
	t := x.Sub(a.In).Div(span)

	return a.Out.Add(t.Mul(b.Out.Sub(a.Out)))
}

// Inverse is Evaluate's symmetric sibling: it scans by output span and
// interpolates the input coordinate. On a MonotonicCurve this is
// well-defined.
func (c Curve) Inverse(y ordinate.Ordinate) ordinate.Ordinate {
	switch len(c.Knots) {
	case 0:
		return ordinate.Zero
	case 1:
		return c.Knots[0].In
	}

	for i := 0; i < len(c.Knots)-1; i++ {
		a, b := c.Knots[i], c.Knots[i+1]
		lo, hi := a.Out, b.Out
		if hi.LessThan(lo) {
			lo, hi = hi, lo
		}
		if !y.LessThan(lo) && y.LessThan(hi) {
			span := b.Out.Sub(a.Out)
			if span.Equal(0) {
				return a.In
			}
			t := y.Sub(a.Out).Div(span)

			return a.In.Add(t.Mul(b.In.Sub(a.In)))
		}
	}

	last := len(c.Knots) - 1

	return c.Knots[last].In
}

// Extents returns the curve's input-coordinate bounds. On a monotonic
// curve the first and last knot suffice; this general implementation
// scans all knots, which is also correct for a monotonic curve.
func (c Curve) Extents() (interval.Interval, error) {
	if len(c.Knots) == 0 {
		return interval.Interval{}, ErrNoKnots
	}

	lo, hi := c.Knots[0].In, c.Knots[0].In
	for _, k := range c.Knots[1:] {
		lo = ordinate.Min(lo, k.In)
		hi = ordinate.Max(hi, k.In)
	}

	return interval.Interval{Start: lo, End: hi}, nil
}
