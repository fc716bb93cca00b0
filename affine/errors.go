package affine

import "errors"

// ErrZeroScale is returned by Inverted when Scale is zero and the
// transform has no inverse.
var ErrZeroScale = errors.New("affine: cannot invert a transform with zero scale")
