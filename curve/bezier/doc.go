// Package bezier implements cubic Bezier curve segments and curves for
// the opentime coordinate engine: de Casteljau evaluation (primal and
// dual/automatic-differentiation), parameter inversion via find_u,
// splitting, trimming, affine projection, hodograph-based critical-point
// decomposition, and tolerance-bounded linearization to a polyline.
//
// A Segment is always treated as cubic; the hodograph package-level
// helpers additionally model the quadratic and linear curves that arise
// as derivatives of a cubic, via the tagged HodographCurve type rather
// than an integer order field.
//
// Every Segment is expected to be monotone increasing in its input
// coordinate (p3.In >= p0.In); a Curve is a right-met chain of such
// segments, meaning segment i+1's P0 equals segment i's P3.
package bezier
