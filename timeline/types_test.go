package timeline_test

import (
	"testing"

	"github.com/katalvlaran/opentime/affine"
	"github.com/katalvlaran/opentime/curve"
	"github.com/katalvlaran/opentime/curve/linear"
	"github.com/katalvlaran/opentime/timeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAffineStage_Project checks a pure scale-and-offset stage.
func TestAffineStage_Project(t *testing.T) {
	stage := timeline.AffineStage{Transform: affine.Transform1D{Offset: 1, Scale: 2}}

	r, err := stage.Project(3)
	require.NoError(t, err)
	assert.Equal(t, curve.ResultOrdinate, r.Kind)
	assert.InDelta(t, 7.0, float64(r.Ordinate), 1e-9)
}

// TestLinearStage_OutOfBounds checks an input outside the curve's
// extents reports out-of-bounds rather than clamping silently.
func TestLinearStage_OutOfBounds(t *testing.T) {
	mc, err := linear.NewMonotonicCurve([]curve.ControlPoint{{In: 0, Out: 0}, {In: 10, Out: 100}})
	require.NoError(t, err)
	stage := timeline.LinearStage{Curve: mc}

	r, err := stage.Project(50)
	require.NoError(t, err)
	assert.True(t, r.IsOutOfBounds())
}

// TestChain_ComposesAffineThenLinear checks a two-stage pipeline feeds
// the affine stage's output into the linear stage's input.
func TestChain_ComposesAffineThenLinear(t *testing.T) {
	mc, err := linear.NewMonotonicCurve([]curve.ControlPoint{{In: 0, Out: 0}, {In: 10, Out: 1000}})
	require.NoError(t, err)

	chain := timeline.Chain{
		timeline.AffineStage{Transform: affine.Transform1D{Offset: 0, Scale: 0.5}},
		timeline.LinearStage{Curve: mc},
	}

	r, err := chain.Project(10)
	require.NoError(t, err)
	assert.Equal(t, curve.ResultOrdinate, r.Kind)
	assert.InDelta(t, 500.0, float64(r.Ordinate), 1e-6)
}

// TestChain_ShortCircuitsOnOutOfBounds checks a failing interior stage
// stops the chain rather than running subsequent stages.
func TestChain_ShortCircuitsOnOutOfBounds(t *testing.T) {
	mc, err := linear.NewMonotonicCurve([]curve.ControlPoint{{In: 0, Out: 0}, {In: 10, Out: 100}})
	require.NoError(t, err)

	chain := timeline.Chain{
		timeline.LinearStage{Curve: mc},
		timeline.AffineStage{Transform: affine.Transform1D{Offset: 0, Scale: 1}},
	}

	r, err := chain.Project(999)
	require.NoError(t, err)
	assert.True(t, r.IsOutOfBounds())
}
