// Package timeline is a thin demonstration layer showing how the
// individual projection surfaces (affine transforms, monotonic linear
// curves, Bezier curves) compose into the forward-projection pipeline
// described by the engine: a value flows through a Chain of Transforms,
// each stage consuming the previous stage's output ordinate. It does not
// model tracks, clips, gaps, or stacks.
package timeline
