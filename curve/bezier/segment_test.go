package bezier_test

import (
	"testing"

	"github.com/katalvlaran/opentime/curve"
	"github.com/katalvlaran/opentime/curve/bezier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func straightSegment() bezier.Segment {
	return bezier.Linear(
		curve.ControlPoint{In: 0, Out: 0},
		curve.ControlPoint{In: 10, Out: 100},
	)
}

// TestSegment_EvalEndpoints checks Eval(0)=P0, Eval(1)=P3 exactly.
func TestSegment_EvalEndpoints(t *testing.T) {
	s := straightSegment()
	assert.Equal(t, s.P0, s.Eval(0))
	assert.Equal(t, s.P3, s.Eval(1))
}

// TestSegment_EvalMidpoint checks a linear segment interpolates linearly.
func TestSegment_EvalMidpoint(t *testing.T) {
	s := straightSegment()
	mid := s.Eval(0.5)
	assert.InDelta(t, 5.0, float64(mid.In), 1e-9)
	assert.InDelta(t, 50.0, float64(mid.Out), 1e-9)
}

// TestSegment_OutputAt checks input-to-output lookup on a straight line.
func TestSegment_OutputAt(t *testing.T) {
	s := straightSegment()
	got := s.OutputAt(2.5)
	assert.InDelta(t, 25.0, float64(got), 1e-3)
}

// TestSegment_Split_ReconstitutesEndpoints checks that splitting preserves
// the overall endpoints and meets exactly at the split point.
func TestSegment_Split_ReconstitutesEndpoints(t *testing.T) {
	s := straightSegment()
	left, right, err := s.Split(0.5)
	require.NoError(t, err)

	assert.Equal(t, s.P0, left.P0)
	assert.Equal(t, s.P3, right.P3)
	assert.Equal(t, left.P3, right.P0)
	assert.InDelta(t, 5.0, float64(left.P3.In), 1e-9)
}

// TestSegment_Split_RejectsOutOfRange checks the (epsilon, 1) precondition.
func TestSegment_Split_RejectsOutOfRange(t *testing.T) {
	s := straightSegment()
	_, _, err := s.Split(0)
	assert.ErrorIs(t, err, bezier.ErrSplitParameterOutOfRange)

	_, _, err = s.Split(1)
	assert.ErrorIs(t, err, bezier.ErrSplitParameterOutOfRange)
}

// TestSegment_InputOutputExtents checks endpoint-only conservative bounds.
func TestSegment_InputOutputExtents(t *testing.T) {
	s := straightSegment()
	in := s.InputExtents()
	out := s.OutputExtents()

	assert.Equal(t, float64(0), float64(in.Start))
	assert.Equal(t, float64(10), float64(in.End))
	assert.Equal(t, float64(0), float64(out.Start))
	assert.Equal(t, float64(100), float64(out.End))
}

// TestSegment_CanProjectAndProjectSegment checks composition of a
// doubling segment with an identity segment.
func TestSegment_CanProjectAndProjectSegment(t *testing.T) {
	doubling := bezier.Linear(curve.ControlPoint{In: 0, Out: 0}, curve.ControlPoint{In: 100, Out: 200})
	identity := bezier.Linear(curve.ControlPoint{In: 0, Out: 0}, curve.ControlPoint{In: 100, Out: 100})

	assert.True(t, doubling.CanProject(identity))

	projected, err := doubling.ProjectSegment(identity)
	require.NoError(t, err)
	assert.Equal(t, identity.P0.In, projected.P0.In)
	assert.InDelta(t, 0.0, float64(projected.P0.Out), 1e-6)
	assert.InDelta(t, 200.0, float64(projected.P3.Out), 1e-3)
}

// TestSegment_CanProject_Rejects checks a segment too narrow to project.
func TestSegment_CanProject_Rejects(t *testing.T) {
	narrow := bezier.Linear(curve.ControlPoint{In: 0, Out: 0}, curve.ControlPoint{In: 100, Out: 10})
	wide := bezier.Linear(curve.ControlPoint{In: 0, Out: 0}, curve.ControlPoint{In: 100, Out: 1000})

	assert.False(t, narrow.CanProject(wide))

	_, err := narrow.ProjectSegment(wide)
	assert.ErrorIs(t, err, bezier.ErrCannotProject)
}
