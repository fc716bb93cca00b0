package bezier

import (
	"math"
	"sort"

	"github.com/katalvlaran/opentime/curve"
	"github.com/katalvlaran/opentime/internal/numeric"
	"github.com/katalvlaran/opentime/ordinate"
)

// HodographKind tags the order of a HodographCurve: a cubic's
// hodograph is quadratic, a quadratic's is linear. A small tagged
// variant replaces an integer "order" field.
type HodographKind int

const (
	// HodographQuadratic tags a 3-control-point derivative curve.
	HodographQuadratic HodographKind = iota
	// HodographLinear tags a 2-control-point derivative curve.
	HodographLinear
)

// HodographCurve is the derivative of a Bezier segment: a Bezier of one
// lower order, represented as a tagged variant rather than a Segment
// with an unused fourth control point.
type HodographCurve struct {
	Kind   HodographKind
	Points []curve.ControlPoint // length 3 (Quadratic) or 2 (Linear)
}

// Hodograph computes the derivative curve of a cubic segment: the
// quadratic whose control points are the successive forward differences
// (P1-P0, P2-P1, P3-P2) of s's control points.
func Hodograph(s Segment) HodographCurve {
	return HodographCurve{
		Kind: HodographQuadratic,
		Points: []curve.ControlPoint{
			sub(s.P1, s.P0),
			sub(s.P2, s.P1),
			sub(s.P3, s.P2),
		},
	}
}

// HodographOfQuadratic computes the derivative (linear) curve of a
// quadratic hodograph, for callers that need the second derivative of
// the original cubic.
func HodographOfQuadratic(h HodographCurve) HodographCurve {
	if h.Kind != HodographQuadratic || len(h.Points) != 3 {
		return HodographCurve{Kind: HodographLinear, Points: nil}
	}

	return HodographCurve{
		Kind: HodographLinear,
		Points: []curve.ControlPoint{
			sub(h.Points[1], h.Points[0]),
			sub(h.Points[2], h.Points[1]),
		},
	}
}

func sub(a, b curve.ControlPoint) curve.ControlPoint {
	return curve.ControlPoint{In: a.In.Sub(b.In), Out: a.Out.Sub(b.Out)}
}

// QuadraticRoots treats a quadratic hodograph's Out coordinates as the
// 1D quadratic a*u^2 + b*u + c (the aligned control polygon's y-axis)
// and solves via the quadratic formula. If |a| falls below
// ActualOrderLinearEps the quadratic degenerates to the linear root
// -c/b. Only roots strictly inside (0, 1) are kept; a root that lands
// exactly on an endpoint is already captured by the neighboring
// segment and is deliberately excluded here.
func QuadraticRoots(h HodographCurve) Roots {
	if h.Kind != HodographQuadratic || len(h.Points) != 3 {
		return NoRoots()
	}

	p0, p1, p2 := h.Points[0].Out, h.Points[1].Out, h.Points[2].Out
	a := float64(p0) - 2*float64(p1) + float64(p2)
	b := 2 * (float64(p1) - float64(p0))
	c := float64(p0)

	t1, t2, n := numeric.SolveQuadratic(a, b, c, ActualOrderLinearEps)

	r := NoRoots()
	r = keepOpenUnit(r, t1)
	if n == 2 {
		r = keepOpenUnit(r, t2)
	}

	return r.Sorted()
}

func keepOpenUnit(r Roots, t float64) Roots {
	if t > 0 && t < 1 {
		return r.Append(t)
	}

	return r
}

// Align translates s.P0 to the origin and rotates s so that P3 lies on
// the positive input axis. Alignment is used exclusively inside
// inflection-point calculation.
func Align(s Segment) Segment {
	translate := func(cp curve.ControlPoint) curve.ControlPoint {
		return curve.ControlPoint{In: cp.In.Sub(s.P0.In), Out: cp.Out.Sub(s.P0.Out)}
	}

	p1, p2, p3 := translate(s.P1), translate(s.P2), translate(s.P3)
	angle := math.Atan2(float64(p3.Out), float64(p3.In))
	cosA, sinA := math.Cos(-angle), math.Sin(-angle)

	rotate := func(cp curve.ControlPoint) curve.ControlPoint {
		in, out := float64(cp.In), float64(cp.Out)

		return curve.ControlPoint{
			In:  ordinate.Ordinate(in*cosA - out*sinA),
			Out: ordinate.Ordinate(in*sinA + out*cosA),
		}
	}

	return Segment{
		P0: curve.ControlPoint{},
		P1: rotate(p1),
		P2: rotate(p2),
		P3: rotate(p3),
	}
}

// Inflections computes the parameter values at which a cubic segment's
// signed curvature changes sign. It aligns the segment, forms the
// degree-2 polynomial x*t^2 + y*t + z from single-term products of the
// aligned control points' In/Out coordinates, and keeps roots strictly
// inside (0, 1).
func Inflections(s Segment) Roots {
	aligned := Align(s)
	a := float64(aligned.P2.In) * float64(aligned.P1.Out)
	b := float64(aligned.P3.In) * float64(aligned.P1.Out)
	c := float64(aligned.P1.In) * float64(aligned.P2.Out)
	d := float64(aligned.P3.In) * float64(aligned.P2.Out)

	x := -3*a + 2*b + 3*c - d
	y := 3*a - b - 3*c
	z := c - a

	t1, t2, n := numeric.SolveQuadratic(x, y, z, ActualOrderCubicEps)

	r := NoRoots()
	r = keepOpenUnit(r, t1)
	if n == 2 {
		r = keepOpenUnit(r, t2)
	}

	return r.Sorted()
}

// SplitOnCriticalPoints decomposes s into a monotone, inflection-free
// chain of cubic segments whose concatenation equals s. It gathers the
// at-most-four candidate parameters (two hodograph extrema, two
// inflections), deduplicates within CurveEpsilon, sorts them ascending,
// and walks the segment splitting at each parameter renormalized into
// the current subsegment's local space.
func SplitOnCriticalPoints(s Segment) []Segment {
	candidates := criticalParameters(s)
	if len(candidates) == 0 {
		return []Segment{s}
	}

	out := make([]Segment, 0, len(candidates)+1)
	remaining := s
	prev := 0.0

	for _, t := range candidates {
		local := (t - prev) / (1 - prev)
		if local <= CurveEpsilon || local >= 1 {
			continue
		}

		left, right, err := remaining.Split(ordinate.Ordinate(local))
		if err != nil {
			continue
		}

		out = append(out, left)
		remaining = right
		prev = t
	}

	out = append(out, remaining)

	return out
}

// criticalParameters collects the hodograph extrema and inflection
// parameters, deduplicated within CurveEpsilon and sorted ascending.
func criticalParameters(s Segment) []float64 {
	h := Hodograph(s)
	extrema := QuadraticRoots(h)
	inflections := Inflections(s)

	all := make([]float64, 0, extrema.Len()+inflections.Len())
	all = append(all, extrema.Values()...)
	all = append(all, inflections.Values()...)
	sort.Float64s(all)

	deduped := all[:0]
	for _, t := range all {
		if len(deduped) > 0 && math.Abs(t-deduped[len(deduped)-1]) < CurveEpsilon {
			continue
		}
		deduped = append(deduped, t)
	}

	return deduped
}
