// Package interval implements a right-open [start, end) interval
// algebra over ordinate.Ordinate: overlap tests, extension, intersection,
// duration, and rate conformance, per the half-open semantics where an
// instant (start == end) overlaps only the point equal to its start.
package interval
