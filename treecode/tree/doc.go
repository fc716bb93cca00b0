// Package tree implements a binary tree addressed entirely by treecode
// path: every node is identified by the Treecode describing the route
// from the root to it, and is stored in a hash-bucketed arena rather
// than via parent/child pointers.
package tree
