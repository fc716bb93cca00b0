// Package curve defines the types shared by the Bezier and linear curve
// families: ControlPoint, the (in, out) pair interpreted as a point on a
// 1D->1D time remap, and ProjectionResult, the tagged outcome of
// projecting a value through a curve.
package curve
