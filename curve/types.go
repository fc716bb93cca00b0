package curve

import (
	"github.com/katalvlaran/opentime/interval"
	"github.com/katalvlaran/opentime/ordinate"
)

// ControlPoint is a point (In, Out) on a 1D->1D remap: In is the
// independent input ordinate, Out is the dependent output ordinate. The
// same structural pair is used by both Bezier control points and linear
// curve knots — there is no separate geometric Vector2 type in this
// engine.
type ControlPoint struct {
	In  ordinate.Ordinate
	Out ordinate.Ordinate
}

// Lerp linearly interpolates between a and b at parameter u (u=0 -> a,
// u=1 -> b) componentwise.
func Lerp(a, b ControlPoint, u ordinate.Ordinate) ControlPoint {
	return ControlPoint{
		In:  a.In.Add(u.Mul(b.In.Sub(a.In))),
		Out: a.Out.Add(u.Mul(b.Out.Sub(a.Out))),
	}
}

// ResultKind tags the variant carried by a ProjectionResult.
type ResultKind int

const (
	// ResultOrdinate tags a successful ordinate projection.
	ResultOrdinate ResultKind = iota
	// ResultInterval tags a successful interval projection.
	ResultInterval
	// ResultOutOfBounds tags a projection whose input fell outside the
	// curve's domain.
	ResultOutOfBounds
)

// ProjectionResult is the tagged outcome of projecting a value through a
// curve: SuccessOrdinate(o) | SuccessInterval(i) | OutOfBounds.
type ProjectionResult struct {
	Kind     ResultKind
	Ordinate ordinate.Ordinate
	Interval interval.Interval
}

// SuccessOrdinate builds a ProjectionResult carrying a single ordinate.
func SuccessOrdinate(o ordinate.Ordinate) ProjectionResult {
	return ProjectionResult{Kind: ResultOrdinate, Ordinate: o}
}

// SuccessInterval builds a ProjectionResult carrying an interval.
func SuccessInterval(iv interval.Interval) ProjectionResult {
	return ProjectionResult{Kind: ResultInterval, Interval: iv}
}

// OutOfBoundsResult builds the OutOfBounds variant.
func OutOfBoundsResult() ProjectionResult {
	return ProjectionResult{Kind: ResultOutOfBounds}
}

// IsOutOfBounds reports whether r is the OutOfBounds variant.
func (r ProjectionResult) IsOutOfBounds() bool { return r.Kind == ResultOutOfBounds }
