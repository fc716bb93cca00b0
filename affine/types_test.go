package affine_test

import (
	"testing"

	"github.com/katalvlaran/opentime/affine"
	"github.com/katalvlaran/opentime/interval"
	"github.com/katalvlaran/opentime/ordinate"
	"github.com/stretchr/testify/assert"
)

// TestTransform1D_IdentityIsNoOp.
func TestTransform1D_IdentityIsNoOp(t *testing.T) {
	id := affine.Identity()
	assert.Equal(t, ordinate.Ordinate(5), id.Apply(5))
}

// TestTransform1D_InvertedRoundTrips verifies
// T.Apply(T.Inverted().Apply(x)) == x within epsilon.
func TestTransform1D_InvertedRoundTrips(t *testing.T) {
	tr := affine.Transform1D{Offset: 3, Scale: 2}
	inv, err := tr.Inverted()
	assert.NoError(t, err)

	x := ordinate.Ordinate(7)
	assert.True(t, tr.Apply(inv.Apply(x)).ApproxEqual(x))
	assert.True(t, inv.Apply(tr.Apply(x)).ApproxEqual(x))
}

// TestTransform1D_ComposeWithInverseIsIdentity.
func TestTransform1D_ComposeWithInverseIsIdentity(t *testing.T) {
	tr := affine.Transform1D{Offset: -4, Scale: 0.5}
	inv, err := tr.Inverted()
	assert.NoError(t, err)

	composed := tr.Compose(inv)
	assert.True(t, composed.Offset.ApproxEqual(0))
	assert.True(t, composed.Scale.ApproxEqual(1))
}

// TestTransform1D_InvertedZeroScale.
func TestTransform1D_InvertedZeroScale(t *testing.T) {
	tr := affine.Transform1D{Offset: 1, Scale: 0}
	_, err := tr.Inverted()
	assert.ErrorIs(t, err, affine.ErrZeroScale)
}

// TestTransform1D_AppliedToInterval_NegativeScalePreservesOrder checks
// that a negative scale never produces an inverted (start > end)
// interval.
func TestTransform1D_AppliedToInterval_NegativeScalePreservesOrder(t *testing.T) {
	tr := affine.Transform1D{Offset: 0, Scale: -1}
	iv, _ := interval.New(0, 1)

	out := tr.AppliedToInterval(iv)
	assert.True(t, out.Start.LessThan(out.End) || out.Start.Equal(out.End))
	assert.Equal(t, ordinate.Ordinate(-1), out.Start)
	assert.Equal(t, ordinate.Ordinate(0), out.End)
}

// TestTransform1D_AppliedToInterval_PositiveScale sanity check.
func TestTransform1D_AppliedToInterval_PositiveScale(t *testing.T) {
	tr := affine.Transform1D{Offset: 1, Scale: 2}
	iv, _ := interval.New(0, 1)

	out := tr.AppliedToInterval(iv)
	assert.Equal(t, ordinate.Ordinate(1), out.Start)
	assert.Equal(t, ordinate.Ordinate(3), out.End)
}
