package timeline

import (
	"github.com/katalvlaran/opentime/affine"
	"github.com/katalvlaran/opentime/curve"
	"github.com/katalvlaran/opentime/curve/bezier"
	"github.com/katalvlaran/opentime/curve/linear"
	"github.com/katalvlaran/opentime/ordinate"
)

// Transform projects a single input ordinate through one stage of a
// composed pipeline.
type Transform interface {
	Project(x ordinate.Ordinate) (curve.ProjectionResult, error)
}

// AffineStage adapts affine.Transform1D to Transform. It never fails or
// falls out of bounds: an affine map is defined everywhere.
type AffineStage struct {
	Transform affine.Transform1D
}

// Project applies the wrapped affine transform to x.
func (s AffineStage) Project(x ordinate.Ordinate) (curve.ProjectionResult, error) {
	return curve.SuccessOrdinate(s.Transform.Apply(x)), nil
}

// LinearStage adapts linear.MonotonicCurve to Transform, reporting
// out-of-bounds for any x outside the curve's input extents.
type LinearStage struct {
	Curve linear.MonotonicCurve
}

// Project evaluates the wrapped curve at x, or reports out-of-bounds.
func (s LinearStage) Project(x ordinate.Ordinate) (curve.ProjectionResult, error) {
	ext, err := s.Curve.Extents()
	if err != nil {
		return curve.ProjectionResult{}, err
	}
	if !ext.Overlaps(x) && !x.Equal(ext.End) {
		return curve.OutOfBoundsResult(), nil
	}

	return curve.SuccessOrdinate(s.Curve.Evaluate(x)), nil
}

// BezierStage adapts bezier.Curve to Transform, reporting out-of-bounds
// for any x not covered by one of the curve's segments.
type BezierStage struct {
	Curve bezier.Curve
}

// Project evaluates the wrapped curve at x, or reports out-of-bounds.
func (s BezierStage) Project(x ordinate.Ordinate) (curve.ProjectionResult, error) {
	y, err := s.Curve.OutputAtInput(x)
	if err != nil {
		return curve.OutOfBoundsResult(), nil
	}

	return curve.SuccessOrdinate(y), nil
}

// Chain composes a sequence of Transforms left to right: each stage's
// output ordinate becomes the next stage's input, mirroring the engine's
// forward-projection data flow through successive coordinate spaces.
type Chain []Transform

// Project runs x through every stage in order, short-circuiting on the
// first error or out-of-bounds result. The final stage's full
// ProjectionResult (which may carry an interval, for a future stage type
// that projects to a range) is returned.
func (c Chain) Project(x ordinate.Ordinate) (curve.ProjectionResult, error) {
	cur := x
	result := curve.SuccessOrdinate(x)

	for _, stage := range c {
		r, err := stage.Project(cur)
		if err != nil {
			return curve.ProjectionResult{}, err
		}
		if r.IsOutOfBounds() {
			return r, nil
		}

		result = r
		switch r.Kind {
		case curve.ResultOrdinate:
			cur = r.Ordinate
		case curve.ResultInterval:
			cur = r.Interval.Start
		}
	}

	return result, nil
}
