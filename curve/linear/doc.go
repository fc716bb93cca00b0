// Package linear implements piecewise linear curves: an ordered sequence
// of knots interpolated linearly between consecutive pairs, used as the
// canonical projection surface once a Bezier curve has been linearized.
// MonotonicCurve additionally guarantees non-decreasing (or
// non-increasing) input, which is required for well-defined inverse
// lookup.
package linear
