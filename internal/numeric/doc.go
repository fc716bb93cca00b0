// Package numeric holds small numeric helpers used by the curve/bezier
// package: an epsilon-aware zero test and the quadratic
// formula used by both the Bezier hodograph and inflection-point
// computations (curve/bezier/hodograph.go), kept here once rather than
// duplicated in each caller.
package numeric
