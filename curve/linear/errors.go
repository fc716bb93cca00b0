package linear

import "errors"

// ErrNotMonotonic is returned when constructing a MonotonicCurve whose
// knots are not non-decreasing (or non-increasing) in their input
// coordinate.
var ErrNotMonotonic = errors.New("linear: knots are not monotonic in input")

// ErrNoKnots is returned by operations that require at least one knot.
var ErrNoKnots = errors.New("linear: curve has no knots")
