package bezier_test

import (
	"testing"

	"github.com/katalvlaran/opentime/affine"
	"github.com/katalvlaran/opentime/curve"
	"github.com/katalvlaran/opentime/curve/bezier"
	"github.com/katalvlaran/opentime/interval"
	"github.com/katalvlaran/opentime/ordinate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoSegmentCurve(t *testing.T) bezier.Curve {
	t.Helper()
	seg1 := bezier.Linear(curve.ControlPoint{In: 0, Out: 0}, curve.ControlPoint{In: 10, Out: 100})
	seg2 := bezier.Linear(curve.ControlPoint{In: 10, Out: 100}, curve.ControlPoint{In: 20, Out: 300})
	c, err := bezier.NewCurve([]bezier.Segment{seg1, seg2})
	require.NoError(t, err)

	return c
}

// TestNewCurve_RejectsEmpty.
func TestNewCurve_RejectsEmpty(t *testing.T) {
	_, err := bezier.NewCurve(nil)
	assert.ErrorIs(t, err, bezier.ErrEmptyCurve)
}

// TestNewCurve_RejectsNotRightMet.
func TestNewCurve_RejectsNotRightMet(t *testing.T) {
	seg1 := bezier.Linear(curve.ControlPoint{In: 0, Out: 0}, curve.ControlPoint{In: 10, Out: 100})
	seg2 := bezier.Linear(curve.ControlPoint{In: 11, Out: 100}, curve.ControlPoint{In: 20, Out: 300})
	_, err := bezier.NewCurve([]bezier.Segment{seg1, seg2})
	assert.ErrorIs(t, err, bezier.ErrNotRightMet)
}

// TestCurve_FindSegmentIndex.
func TestCurve_FindSegmentIndex(t *testing.T) {
	c := twoSegmentCurve(t)

	i, err := c.FindSegmentIndex(5)
	require.NoError(t, err)
	assert.Equal(t, 0, i)

	i, err = c.FindSegmentIndex(15)
	require.NoError(t, err)
	assert.Equal(t, 1, i)

	_, err = c.FindSegmentIndex(100)
	assert.ErrorIs(t, err, bezier.ErrSegmentNotFound)
}

// TestCurve_OutputAtInput.
func TestCurve_OutputAtInput(t *testing.T) {
	c := twoSegmentCurve(t)

	y, err := c.OutputAtInput(5)
	require.NoError(t, err)
	assert.InDelta(t, 50.0, float64(y), 1e-2)

	y, err = c.OutputAtInput(15)
	require.NoError(t, err)
	assert.InDelta(t, 200.0, float64(y), 1e-2)
}

// TestCurve_Extents.
func TestCurve_Extents(t *testing.T) {
	c := twoSegmentCurve(t)
	ext, err := c.Extents()
	require.NoError(t, err)
	assert.Equal(t, float64(0), float64(ext.Start))
	assert.Equal(t, float64(20), float64(ext.End))
}

// TestCurve_ProjectAffine checks every control point's input is mapped
// through the given transform while output coordinates are preserved.
func TestCurve_ProjectAffine(t *testing.T) {
	c := twoSegmentCurve(t)
	t1 := affine.Transform1D{Offset: 1, Scale: 2}

	projected := c.ProjectAffine(t1)
	require.Len(t, projected.Segments, 2)
	assert.Equal(t, c.Segments[0].P0.Out, projected.Segments[0].P0.Out)
	assert.InDelta(t, 1.0, float64(projected.Segments[0].P0.In), 1e-9)
	assert.InDelta(t, 21.0, float64(projected.Segments[0].P3.In), 1e-9)
}

// TestCurve_SplitAtInputOrdinate_Junction checks splitting exactly at an
// existing segment junction divides without introducing new segments.
func TestCurve_SplitAtInputOrdinate_Junction(t *testing.T) {
	c := twoSegmentCurve(t)

	left, right, err := c.SplitAtInputOrdinate(10)
	require.NoError(t, err)
	assert.Len(t, left.Segments, 1)
	assert.Len(t, right.Segments, 1)
}

// TestCurve_SplitAtInputOrdinate_Interior checks splitting inside a
// segment produces a new junction with matching endpoints.
func TestCurve_SplitAtInputOrdinate_Interior(t *testing.T) {
	c := twoSegmentCurve(t)

	left, right, err := c.SplitAtInputOrdinate(5)
	require.NoError(t, err)
	assert.Len(t, left.Segments, 1)
	assert.Len(t, right.Segments, 2)
	assert.Equal(t, left.Segments[0].P3, right.Segments[0].P0)
	assert.InDelta(t, 5.0, float64(left.Segments[0].P3.In), 1e-6)
}

// TestCurve_TrimmedFromInputOrdinate.
func TestCurve_TrimmedFromInputOrdinate(t *testing.T) {
	c := twoSegmentCurve(t)

	trimmed, err := c.TrimmedFromInputOrdinate(15)
	require.NoError(t, err)
	ext, err := trimmed.Extents()
	require.NoError(t, err)
	assert.InDelta(t, 15.0, float64(ext.Start), 1e-6)
	assert.InDelta(t, 20.0, float64(ext.End), 1e-6)
}

// TestCurve_TrimmedInInputSpace.
func TestCurve_TrimmedInInputSpace(t *testing.T) {
	c := twoSegmentCurve(t)

	trimmed, err := c.TrimmedInInputSpace(interval.Interval{Start: 5, End: 15})
	require.NoError(t, err)
	ext, err := trimmed.Extents()
	require.NoError(t, err)
	assert.InDelta(t, 5.0, float64(ext.Start), 1e-6)
	assert.InDelta(t, 15.0, float64(ext.End), 1e-6)
}

// TestCurve_TrimmedFromInputOrdinate_OutOfRangeClones checks an x
// beyond the curve's extents returns the curve unchanged rather than an
// error.
func TestCurve_TrimmedFromInputOrdinate_OutOfRangeClones(t *testing.T) {
	c := twoSegmentCurve(t)

	trimmed, err := c.TrimmedFromInputOrdinate(-5)
	require.NoError(t, err)
	ext, err := trimmed.Extents()
	require.NoError(t, err)
	assert.InDelta(t, 0.0, float64(ext.Start), 1e-6)
	assert.InDelta(t, 20.0, float64(ext.End), 1e-6)
}

// TestCurve_TrimmedInInputSpace_OutOfRangeLeavesThatSideUnchanged
// checks an interval extending past the curve's extents on one side
// clamps to the curve's own bound on that side instead of erroring.
func TestCurve_TrimmedInInputSpace_OutOfRangeLeavesThatSideUnchanged(t *testing.T) {
	c := twoSegmentCurve(t)

	trimmed, err := c.TrimmedInInputSpace(interval.Interval{Start: -5, End: 15})
	require.NoError(t, err)
	ext, err := trimmed.Extents()
	require.NoError(t, err)
	assert.InDelta(t, 0.0, float64(ext.Start), 1e-6)
	assert.InDelta(t, 15.0, float64(ext.End), 1e-6)
}

// TestCurve_SplitAtEachInputOrdinate checks multi-way splitting in
// arbitrary supplied order yields pieces in ascending input order.
func TestCurve_SplitAtEachInputOrdinate(t *testing.T) {
	c := twoSegmentCurve(t)

	pieces, err := c.SplitAtEachInputOrdinate([]ordinate.Ordinate{15, 5})
	require.NoError(t, err)
	require.Len(t, pieces, 3)

	prevEnd := ordinate.NegativeInfinity
	for _, p := range pieces {
		ext, err := p.Extents()
		require.NoError(t, err)
		assert.False(t, ext.Start.LessThan(prevEnd))
		prevEnd = ext.End
	}
}
