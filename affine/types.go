package affine

import (
	"github.com/katalvlaran/opentime/interval"
	"github.com/katalvlaran/opentime/ordinate"
)

// Transform1D is the pair (Offset, Scale) defining y = Scale*x + Offset.
type Transform1D struct {
	Offset ordinate.Ordinate
	Scale  ordinate.Ordinate
}

// Identity returns the (0, 1) identity transform.
func Identity() Transform1D {
	return Transform1D{Offset: 0, Scale: 1}
}

// Apply evaluates the transform at x.
func (t Transform1D) Apply(x ordinate.Ordinate) ordinate.Ordinate {
	return t.Scale.Mul(x).Add(t.Offset)
}

// Compose returns the transform equivalent to applying t first, then
// other: other.Apply(t.Apply(x)) == t.Compose(other).Apply(x).
func (t Transform1D) Compose(other Transform1D) Transform1D {
	return Transform1D{
		Offset: other.Scale.Mul(t.Offset).Add(other.Offset),
		Scale:  other.Scale.Mul(t.Scale),
	}
}

// Inverted returns the inverse transform. A zero Scale has no inverse
// and yields ErrZeroScale.
func (t Transform1D) Inverted() (Transform1D, error) {
	if t.Scale == 0 {
		return Transform1D{}, ErrZeroScale
	}

	invScale := ordinate.Ordinate(1).Div(t.Scale)

	return Transform1D{
		Offset: t.Offset.Neg().Div(t.Scale),
		Scale:  invScale,
	}, nil
}

// AppliedToInterval applies t to both bounds of iv. If Scale is
// negative, the transformed bounds are swapped so the result remains a
// well-formed (start <= end) interval.
func (t Transform1D) AppliedToInterval(iv interval.Interval) interval.Interval {
	start, end := t.Apply(iv.Start), t.Apply(iv.End)
	if t.Scale.LessThan(0) {
		start, end = end, start
	}

	return interval.Interval{Start: start, End: end}
}
