package bezier

import (
	"github.com/katalvlaran/opentime/affine"
	"github.com/katalvlaran/opentime/curve"
	"github.com/katalvlaran/opentime/interval"
	"github.com/katalvlaran/opentime/ordinate"
)

// Curve is an ordered, right-met sequence of Segments: segment i+1's P0
// must equal segment i's P3, so the curve is continuous (though not
// necessarily monotone) across its full input range.
type Curve struct {
	Segments []Segment
}

// NewCurve validates that segs are right-met and wraps them. A single
// segment is trivially right-met; an empty slice is rejected.
func NewCurve(segs []Segment) (Curve, error) {
	if len(segs) == 0 {
		return Curve{}, ErrEmptyCurve
	}
	for i := 1; i < len(segs); i++ {
		prev, next := segs[i-1], segs[i]
		if !prev.P3.In.Equal(next.P0.In) || !prev.P3.Out.Equal(next.P0.Out) {
			return Curve{}, ErrNotRightMet
		}
	}

	return Curve{Segments: segs}, nil
}

// FindSegmentIndex returns the index of the segment whose input extents
// contain x, scanning in order and preferring the first match (so a
// shared junction point resolves to the earlier segment).
func (c Curve) FindSegmentIndex(x ordinate.Ordinate) (int, error) {
	if len(c.Segments) == 0 {
		return -1, ErrEmptyCurve
	}

	for i, seg := range c.Segments {
		ext := seg.InputExtents()
		if !x.LessThan(ext.Start) && (x.LessThan(ext.End) || x.Equal(ext.End)) {
			return i, nil
		}
	}

	return -1, ErrSegmentNotFound
}

// OutputAtInput locates the segment containing x and evaluates its
// output there.
func (c Curve) OutputAtInput(x ordinate.Ordinate) (ordinate.Ordinate, error) {
	i, err := c.FindSegmentIndex(x)
	if err != nil {
		return 0, err
	}

	return c.Segments[i].OutputAt(x), nil
}

// Extents returns the curve's overall input bound, from the first
// segment's start to the last segment's end (the segments are assumed
// ordered by input, as right-met continuity implies).
func (c Curve) Extents() (interval.Interval, error) {
	if len(c.Segments) == 0 {
		return interval.Interval{}, ErrEmptyCurve
	}

	lo := c.Segments[0].InputExtents().Start
	hi := c.Segments[len(c.Segments)-1].InputExtents().End

	return interval.Interval{Start: lo, End: hi}, nil
}

// ProjectAffine maps every control point's In coordinate of c through t,
// producing a new curve reparameterized in input space; Out values are
// left untouched.
func (c Curve) ProjectAffine(t affine.Transform1D) Curve {
	out := make([]Segment, len(c.Segments))
	for i, seg := range c.Segments {
		out[i] = Segment{
			P0: curve.ControlPoint{In: t.Apply(seg.P0.In), Out: seg.P0.Out},
			P1: curve.ControlPoint{In: t.Apply(seg.P1.In), Out: seg.P1.Out},
			P2: curve.ControlPoint{In: t.Apply(seg.P2.In), Out: seg.P2.Out},
			P3: curve.ControlPoint{In: t.Apply(seg.P3.In), Out: seg.P3.Out},
		}
	}

	return Curve{Segments: out}
}

// SplitAtInputOrdinate splits c into two curves at x: the segment
// containing x is itself split via Segment.Split (unless x lands exactly
// on an existing junction, in which case the curve is divided there
// without introducing a new segment).
func (c Curve) SplitAtInputOrdinate(x ordinate.Ordinate) (left, right Curve, err error) {
	i, err := c.FindSegmentIndex(x)
	if err != nil {
		return Curve{}, Curve{}, err
	}

	seg := c.Segments[i]
	ext := seg.InputExtents()

	if x.Equal(ext.Start) {
		if i == 0 {
			return Curve{}, c, nil
		}

		return Curve{Segments: c.Segments[:i]}, Curve{Segments: c.Segments[i:]}, nil
	}
	if x.Equal(ext.End) {
		return Curve{Segments: c.Segments[:i+1]}, Curve{Segments: c.Segments[i+1:]}, nil
	}

	u := ordinate.Ordinate(seg.FindUInput(x))
	segLeft, segRight, splitErr := seg.Split(u)
	if splitErr != nil {
		return Curve{}, Curve{}, splitErr
	}

	leftSegs := make([]Segment, 0, i+1)
	leftSegs = append(leftSegs, c.Segments[:i]...)
	leftSegs = append(leftSegs, segLeft)

	rightSegs := make([]Segment, 0, len(c.Segments)-i)
	rightSegs = append(rightSegs, segRight)
	rightSegs = append(rightSegs, c.Segments[i+1:]...)

	return Curve{Segments: leftSegs}, Curve{Segments: rightSegs}, nil
}

// SplitAtEachInputOrdinate splits c at every given input ordinate,
// returning the resulting pieces in input order. Ordinates outside c's
// extents are silently ignored; ordinates are applied least-to-greatest
// regardless of the order supplied.
func (c Curve) SplitAtEachInputOrdinate(xs []ordinate.Ordinate) ([]Curve, error) {
	sorted := append([]ordinate.Ordinate(nil), xs...)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j].LessThan(sorted[j-1]); j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}

	pieces := []Curve{c}
	for _, x := range sorted {
		last := pieces[len(pieces)-1]
		ext, err := last.Extents()
		if err != nil {
			return nil, err
		}
		if x.LessThan(ext.Start) || ext.End.LessThan(x) || x.Equal(ext.Start) || x.Equal(ext.End) {
			continue
		}

		left, right, err := last.SplitAtInputOrdinate(x)
		if err != nil {
			return nil, err
		}

		pieces = pieces[:len(pieces)-1]
		pieces = append(pieces, left, right)
	}

	return pieces, nil
}

// clone returns a Curve backed by a fresh copy of c's segment slice.
func (c Curve) clone() Curve {
	return Curve{Segments: append([]Segment(nil), c.Segments...)}
}

// TrimmedFromInputOrdinate discards everything before x, keeping
// [x, end]. An x outside c's extents returns a clone of c unchanged.
func (c Curve) TrimmedFromInputOrdinate(x ordinate.Ordinate) (Curve, error) {
	ext, err := c.Extents()
	if err != nil {
		return Curve{}, err
	}
	if x.LessThan(ext.Start) || ext.End.LessThan(x) {
		return c.clone(), nil
	}

	_, right, err := c.SplitAtInputOrdinate(x)
	if err != nil {
		return Curve{}, err
	}

	return right, nil
}

// trimmedAfter discards everything after x, keeping [start, x]. An x
// outside c's extents returns a clone of c unchanged.
func (c Curve) trimmedAfter(x ordinate.Ordinate) (Curve, error) {
	ext, err := c.Extents()
	if err != nil {
		return Curve{}, err
	}
	if x.LessThan(ext.Start) || ext.End.LessThan(x) {
		return c.clone(), nil
	}

	left, _, err := c.SplitAtInputOrdinate(x)
	if err != nil {
		return Curve{}, err
	}

	return left, nil
}

// TrimmedInInputSpace restricts c to [iv.Start, iv.End]: it trims
// before iv.Start, then trims after iv.End on the result. An endpoint
// outside c's extents leaves that side unchanged rather than erroring.
func (c Curve) TrimmedInInputSpace(iv interval.Interval) (Curve, error) {
	afterStart, err := c.TrimmedFromInputOrdinate(iv.Start)
	if err != nil {
		return Curve{}, err
	}

	return afterStart.trimmedAfter(iv.End)
}
