package interval

import "errors"

// ErrEndBeforeStart is returned when constructing an Interval whose end
// is strictly less than its start.
var ErrEndBeforeStart = errors.New("interval: end is before start")

// ErrNaNBound is returned when a Start or End bound is NaN.
var ErrNaNBound = errors.New("interval: bound is NaN")

// ErrInvalidRate is returned by Conform when given a NaN sample-rate
// ratio.
var ErrInvalidRate = errors.New("interval: invalid (NaN) conform rate")
