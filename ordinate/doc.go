// Package ordinate defines the scalar value type used throughout the
// opentime coordinate engine: a wrapped extended-real number with exact
// and approximate equality, IEEE special-value handling, a forward-mode
// automatic-differentiation carrier (DualOrdinate), and a signed 32-bit
// rational (Rational32) used for sample rates.
//
// All three types are value types with no internal allocation; they are
// safe to copy, compare, and pass across goroutines without coordination.
package ordinate
