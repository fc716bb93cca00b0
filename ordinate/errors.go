package ordinate

import "errors"

// ErrZeroDenominatorCompare is returned by Rational32.Compare when either
// operand encodes NaN and no ordering can be produced.
var ErrZeroDenominatorCompare = errors.New("ordinate: cannot compare NaN rationals")
