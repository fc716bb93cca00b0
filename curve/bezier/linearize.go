package bezier

import (
	"github.com/katalvlaran/opentime/curve"
	"github.com/katalvlaran/opentime/curve/linear"
)

// LinearizeOptions configures the tolerance and recursion bound used by
// LinearizeSegment and LinearizeCurve, following the functional-options
// pattern used throughout this module.
type LinearizeOptions struct {
	// Tolerance is the flatness threshold passed to IsFlat.
	Tolerance float64
	// MaxDepth caps recursion depth independent of the tolerance
	// criterion.
	MaxDepth int
}

// DefaultLinearizeOptions returns the conservative default: curve
// epsilon tolerance, LinearizeMaxDepth recursion cap.
func DefaultLinearizeOptions() LinearizeOptions {
	return LinearizeOptions{Tolerance: CurveEpsilon, MaxDepth: LinearizeMaxDepth}
}

// LinearizeOption mutates a LinearizeOptions value.
type LinearizeOption func(*LinearizeOptions)

// WithTolerance overrides the flatness tolerance.
func WithTolerance(tolerance float64) LinearizeOption {
	return func(o *LinearizeOptions) { o.Tolerance = tolerance }
}

// WithMaxDepth overrides the recursion-depth safety belt.
func WithMaxDepth(depth int) LinearizeOption {
	return func(o *LinearizeOptions) { o.MaxDepth = depth }
}

func resolveOptions(opts []LinearizeOption) LinearizeOptions {
	o := DefaultLinearizeOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// IsFlat is the standard deviation-of-control-points flatness test:
// u = 3*P1 - 2*P0 - P3, v = 3*P2 - 2*P3 - P0, and the segment is
// approximately linear iff max(ux^2, vx^2) + max(uy^2, vy^2) <= tolerance.
func IsFlat(s Segment, tolerance float64) bool {
	ux := 3*float64(s.P1.In) - 2*float64(s.P0.In) - float64(s.P3.In)
	uy := 3*float64(s.P1.Out) - 2*float64(s.P0.Out) - float64(s.P3.Out)
	vx := 3*float64(s.P2.In) - 2*float64(s.P3.In) - float64(s.P0.In)
	vy := 3*float64(s.P2.Out) - 2*float64(s.P3.Out) - float64(s.P0.Out)

	maxX := ux * ux
	if vx*vx > maxX {
		maxX = vx * vx
	}
	maxY := uy * uy
	if vy*vy > maxY {
		maxY = vy * vy
	}

	return maxX+maxY <= tolerance
}

// LinearizeSegment replaces s with a polyline within tolerance: if flat,
// emits [P0, P3]; otherwise splits at u=0.5 and recursively linearizes
// each half, stitching the results and dropping the duplicate midpoint.
func LinearizeSegment(s Segment, opts ...LinearizeOption) []curve.ControlPoint {
	o := resolveOptions(opts)

	return linearizeSegment(s, o, 0)
}

func linearizeSegment(s Segment, o LinearizeOptions, depth int) []curve.ControlPoint {
	if IsFlat(s, o.Tolerance) || depth >= o.MaxDepth {
		return []curve.ControlPoint{s.P0, s.P3}
	}

	left, right, err := s.Split(0.5)
	if err != nil {
		return []curve.ControlPoint{s.P0, s.P3}
	}

	leftPoly := linearizeSegment(left, o, depth+1)
	rightPoly := linearizeSegment(right, o, depth+1)

	return append(leftPoly, rightPoly[1:]...)
}

// LinearizeCurve linearizes every segment of c, first splitting each on
// its critical points, then linearizing each inflection-free
// sub-segment, stitching the results into a single monotonic polyline
// suitable for inverse lookup as a linear.Curve.
func LinearizeCurve(c Curve, opts ...LinearizeOption) linear.Curve {
	o := resolveOptions(opts)

	var knots []curve.ControlPoint
	for _, seg := range c.Segments {
		for _, sub := range SplitOnCriticalPoints(seg) {
			poly := linearizeSegment(sub, o, 0)
			if len(knots) > 0 {
				poly = poly[1:]
			}
			knots = append(knots, poly...)
		}
	}

	return linear.Curve{Knots: knots}
}
