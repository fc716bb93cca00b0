package bezier

import (
	"github.com/katalvlaran/opentime/curve"
	"github.com/katalvlaran/opentime/interval"
	"github.com/katalvlaran/opentime/ordinate"
)

// Segment is a cubic Bezier defined by four ordered control points. It
// is expected to be monotone in its input coordinate: P3.In >= P0.In.
type Segment struct {
	P0, P1, P2, P3 curve.ControlPoint
}

// Linear builds the straight-line segment between from and to, placing
// P1 and P2 at the 1/3 and 2/3 linear interpolants (the convenience
// constructor used whenever a cubic is needed to represent a line).
func Linear(from, to curve.ControlPoint) Segment {
	third := ordinate.Ordinate(1.0 / 3.0)
	twoThirds := ordinate.Ordinate(2.0 / 3.0)

	return Segment{
		P0: from,
		P1: curve.Lerp(from, to, third),
		P2: curve.Lerp(from, to, twoThirds),
		P3: to,
	}
}

func (s Segment) inArray() [4]ordinate.Ordinate {
	return [4]ordinate.Ordinate{s.P0.In, s.P1.In, s.P2.In, s.P3.In}
}

func (s Segment) outArray() [4]ordinate.Ordinate {
	return [4]ordinate.Ordinate{s.P0.Out, s.P1.Out, s.P2.Out, s.P3.Out}
}

// Eval evaluates the segment at parameter u via three-step de Casteljau
// reduction. u=0 yields P0, u=1 yields P3 exactly.
func (s Segment) Eval(u ordinate.Ordinate) curve.ControlPoint {
	return curve.ControlPoint{
		In:  deCasteljau(s.inArray(), u),
		Out: deCasteljau(s.outArray(), u),
	}
}

// EvalOutputDual evaluates the segment's output coordinate at a dual u,
// so the result's I component is dOut/du in a single pass.
func (s Segment) EvalOutputDual(u ordinate.DualOrdinate) ordinate.DualOrdinate {
	return deCasteljauDual(s.outArray(), u)
}

// EvalInputDual is EvalOutputDual's sibling for the input coordinate.
func (s Segment) EvalInputDual(u ordinate.DualOrdinate) ordinate.DualOrdinate {
	return deCasteljauDual(s.inArray(), u)
}

// FindUInput inverts the segment's input coordinate: given x, finds u
// such that Eval(u).In == x, by shifting all four input control values
// by -P0.In and delegating to find_u.
func (s Segment) FindUInput(x ordinate.Ordinate) float64 {
	shift := s.P0.In
	return findU(x.Sub(shift), s.P1.In.Sub(shift), s.P2.In.Sub(shift), s.P3.In.Sub(shift))
}

// FindUOutput is FindUInput's sibling for the output coordinate.
func (s Segment) FindUOutput(y ordinate.Ordinate) float64 {
	shift := s.P0.Out
	return findU(y.Sub(shift), s.P1.Out.Sub(shift), s.P2.Out.Sub(shift), s.P3.Out.Sub(shift))
}

// OutputAt shifts x to u via FindUInput and evaluates the output there.
func (s Segment) OutputAt(x ordinate.Ordinate) ordinate.Ordinate {
	u := ordinate.Ordinate(s.FindUInput(x))

	return s.Eval(u).Out
}

// InputExtents returns the conservative [P0.In, P3.In] input bound,
// computed from the endpoints only: a deliberate design choice, since
// tight monotone bounds suffice once critical-point splitting has
// already been applied by the caller.
func (s Segment) InputExtents() interval.Interval {
	lo, hi := s.P0.In, s.P3.In
	if hi.LessThan(lo) {
		lo, hi = hi, lo
	}

	return interval.Interval{Start: lo, End: hi}
}

// OutputExtents is InputExtents' sibling for the output coordinate.
func (s Segment) OutputExtents() interval.Interval {
	lo, hi := s.P0.Out, s.P3.Out
	if hi.LessThan(lo) {
		lo, hi = hi, lo
	}

	return interval.Interval{Start: lo, End: hi}
}

// Split performs classical de Casteljau three-level subdivision of s at
// parameter u, which must lie in (CurveEpsilon, 1). The left segment's
// P3 equals the right segment's P0 exactly.
func (s Segment) Split(u ordinate.Ordinate) (left, right Segment, err error) {
	uf := float64(u)
	if !(uf > CurveEpsilon && uf < 1) {
		return Segment{}, Segment{}, ErrSplitParameterOutOfRange
	}

	in := s.inArray()
	out := s.outArray()

	leftIn, rightIn := splitArray(in, u)
	leftOut, rightOut := splitArray(out, u)

	left = Segment{
		P0: curve.ControlPoint{In: leftIn[0], Out: leftOut[0]},
		P1: curve.ControlPoint{In: leftIn[1], Out: leftOut[1]},
		P2: curve.ControlPoint{In: leftIn[2], Out: leftOut[2]},
		P3: curve.ControlPoint{In: leftIn[3], Out: leftOut[3]},
	}
	right = Segment{
		P0: curve.ControlPoint{In: rightIn[0], Out: rightOut[0]},
		P1: curve.ControlPoint{In: rightIn[1], Out: rightOut[1]},
		P2: curve.ControlPoint{In: rightIn[2], Out: rightOut[2]},
		P3: curve.ControlPoint{In: rightIn[3], Out: rightOut[3]},
	}

	return left, right, nil
}

// splitArray runs the full de Casteljau triangle for a single scalar
// component and reads the left/right subdivision control points off its
// diagonal and bottom row.
func splitArray(p [4]ordinate.Ordinate, u ordinate.Ordinate) (left, right [4]ordinate.Ordinate) {
	level1 := reduceOnce(p, 4, u)   // 3 points
	level2 := reduceOnce(level1, 3, u) // 2 points
	level3 := reduceOnce(level2, 2, u) // 1 point

	left = [4]ordinate.Ordinate{p[0], level1[0], level2[0], level3[0]}
	right = [4]ordinate.Ordinate{level3[0], level2[1], level1[2], p[3]}

	return left, right
}

// CanProject reports whether other's output range is contained (within
// CurveEpsilon) in s's input range, i.e. whether s.OutputAt can be
// meaningfully evaluated across all of other's outputs.
func (s Segment) CanProject(other Segment) bool {
	sIn := s.InputExtents()
	oOut := other.OutputExtents()

	return !oOut.Start.LessThan(sIn.Start.Sub(CurveEpsilon)) &&
		!sIn.End.Add(CurveEpsilon).LessThan(oOut.End)
}

// ProjectSegment builds a new segment by mapping each of other's four
// control points through s.OutputAt, while preserving other's input
// coordinate verbatim. This represents the composition self ∘ other
// only when s's input space equals other's output space; the preserved
// In coordinate is the input of the *composed* curve, not of s.
func (s Segment) ProjectSegment(other Segment) (Segment, error) {
	if !s.CanProject(other) {
		return Segment{}, ErrCannotProject
	}

	project := func(cp curve.ControlPoint) curve.ControlPoint {
		return curve.ControlPoint{In: cp.In, Out: s.OutputAt(cp.Out)}
	}

	return Segment{
		P0: project(other.P0),
		P1: project(other.P1),
		P2: project(other.P2),
		P3: project(other.P3),
	}, nil
}
