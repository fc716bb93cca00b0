// Package opentime is a continuous-time coordinate and curve engine:
// an extended-real 1D ordinate algebra, right-open intervals, 1D affine
// transforms, cubic Bezier and piecewise-linear curves with de
// Casteljau evaluation and adaptive linearization, forward-mode
// automatic differentiation via dual numbers, and a treecode-addressed
// binary tree.
//
// The engine is organized into focused subpackages:
//
//	ordinate/      — the extended-real scalar, dual numbers, rationals
//	interval/      — right-open [start, end) interval algebra
//	affine/        — 1D affine transforms (scale + offset)
//	curve/         — shared control-point and projection-result types
//	curve/bezier/  — cubic Bezier segments and curves
//	curve/linear/  — piecewise linear curves
//	treecode/      — packed binary path encoding
//	treecode/tree/ — a tree addressed entirely by treecode path
//	timeline/      — a thin Transform/Chain composition demonstrator
//
// It does not model an OTIO-like timeline hierarchy (tracks, clips,
// gaps, stacks); see the timeline/ package doc for what it does provide.
package opentime
