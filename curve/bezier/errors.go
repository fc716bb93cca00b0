package bezier

import "errors"

// ErrSplitParameterOutOfRange is returned by Segment.Split when u is not
// in the open-below, closed-above-excluded interval (epsilon, 1) the
// de Casteljau subdivision requires.
var ErrSplitParameterOutOfRange = errors.New("bezier: split parameter out of (epsilon, 1) range")

// ErrEmptyCurve is returned by operations that require at least one
// segment.
var ErrEmptyCurve = errors.New("bezier: curve has no segments")

// ErrSegmentNotFound is returned when an input ordinate does not fall
// within any segment of a Curve.
var ErrSegmentNotFound = errors.New("bezier: no segment contains the given input ordinate")

// ErrCannotProject is returned by ProjectSegment when the receiver
// cannot represent the other segment's full output range.
var ErrCannotProject = errors.New("bezier: segment cannot project the given segment")

// ErrNotRightMet is returned when constructing a Curve whose segments
// are not contiguous (segment i+1's P0 must equal segment i's P3).
var ErrNotRightMet = errors.New("bezier: segments are not right-met")
