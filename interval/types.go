package interval

import (
	"math"

	"github.com/katalvlaran/opentime/ordinate"
)

// Interval is a right-open [Start, End) range of ordinates. Start == End
// denotes an instant, which overlaps only the point equal to Start.
type Interval struct {
	Start ordinate.Ordinate
	End   ordinate.Ordinate
}

// New constructs an Interval, validating End >= Start. Infinite bounds
// are allowed; NaN bounds are rejected.
func New(start, end ordinate.Ordinate) (Interval, error) {
	if start.IsNaN() || end.IsNaN() {
		return Interval{}, ErrNaNBound
	}
	if end.LessThan(start) {
		return Interval{}, ErrEndBeforeStart
	}

	return Interval{Start: start, End: end}, nil
}

// Instant builds a zero-duration interval [at, at).
func Instant(at ordinate.Ordinate) Interval {
	return Interval{Start: at, End: at}
}

// IsInstant reports whether i has zero duration.
func (i Interval) IsInstant() bool { return i.Start.Equal(i.End) }

// Duration returns End - Start. Any infinite endpoint makes the duration
// +Inf.
func (i Interval) Duration() ordinate.Ordinate {
	if i.Start.IsInf() || i.End.IsInf() {
		return ordinate.PositiveInfinity
	}

	return i.End.Sub(i.Start)
}

// Overlaps reports whether o lies within i under right-open semantics:
// o in [Start, End), with the special case that an instant interval
// overlaps exactly the point equal to its Start.
func (i Interval) Overlaps(o ordinate.Ordinate) bool {
	if i.IsInstant() {
		return o.Equal(i.Start)
	}

	return !o.LessThan(i.Start) && o.LessThan(i.End)
}

// Extend returns the smallest interval covering both a and b:
// [min(a.Start,b.Start), max(a.End,b.End)).
func Extend(a, b Interval) Interval {
	return Interval{
		Start: ordinate.Min(a.Start, b.Start),
		End:   ordinate.Max(a.End, b.End),
	}
}

// AnyOverlap reports whether a and b share any point, handling instants
// on either side. For two non-instant intervals this reduces to
// a.Start < b.End && a.End > b.Start.
func AnyOverlap(a, b Interval) bool {
	if a.IsInstant() {
		return b.Overlaps(a.Start)
	}
	if b.IsInstant() {
		return a.Overlaps(b.Start)
	}

	return a.Start.LessThan(b.End) && b.Start.LessThan(a.End)
}

// Intersect returns the overlap of a and b as [max(starts), min(ends)),
// and false if they do not overlap at all.
func Intersect(a, b Interval) (Interval, bool) {
	if !AnyOverlap(a, b) {
		return Interval{}, false
	}

	return Interval{
		Start: ordinate.Max(a.Start, b.Start),
		End:   ordinate.Min(a.End, b.End),
	}, true
}

// Conform rescales i onto a new sample rate, expressed as a Rational32
// target/source ratio, then normalizes the result immediately so
// repeated conforms do not accumulate sub-unit drift.
func (i Interval) Conform(rate ordinate.Rational32) (Interval, error) {
	if rate.IsNaN() {
		return Interval{}, ErrInvalidRate
	}

	return i.conformScale(ordinate.Ordinate(rate.Float64())), nil
}

// conformScale is Conform's implementation once the ratio has been
// reduced to a plain scale factor.
func (i Interval) conformScale(scale ordinate.Ordinate) Interval {
	return Interval{
		Start: normalizeOrdinate(i.Start.Mul(scale)),
		End:   normalizeOrdinate(i.End.Mul(scale)),
	}
}

// normalizeOrdinate snaps a value that is within Epsilon of an integer
// back onto that integer, closing the drift that repeated Conform calls
// would otherwise accumulate in the fractional part.
func normalizeOrdinate(o ordinate.Ordinate) ordinate.Ordinate {
	if o.IsInf() || o.IsNaN() {
		return o
	}

	rounded := ordinate.Ordinate(math.Round(float64(o)))
	if o.ApproxEqual(rounded) {
		return rounded
	}

	return o
}
