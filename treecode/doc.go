// Package treecode implements a binary encoding of a path through a
// binary tree, packed into a slice of 64-bit words.
//
// The path is read from the least significant bit of word 0 upward.
// Between the final path bit and the unused space sits a single marker
// bit (1), which disambiguates a path's true length from trailing zero
// bits: a path of "left, left, left" is not otherwise distinguishable
// from the empty path once packed into a zero-initialized word.
//
// Step directions:
//
//	Left  = 0
//	Right = 1
package treecode
