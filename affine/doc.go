// Package affine implements the 1D affine transform y = scale*x + offset
// used to shift and rescale coordinate systems between curves. Identity
// is (offset=0, scale=1); inversion requires a non-zero scale.
package affine
