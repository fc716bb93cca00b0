package tree

import "errors"

// ErrDuplicateNode is returned by Insert when a node already exists at
// the given treecode path.
var ErrDuplicateNode = errors.New("tree: node already exists at this path")

// ErrNodeNotFound names the condition of no node being stored at a
// given path. No function in this package returns it; Lookup reports a
// missing node through its boolean result.
var ErrNodeNotFound = errors.New("tree: no node at this path")

// ErrNoPath is returned by Path when from is not an ancestor of to.
var ErrNoPath = errors.New("tree: from is not an ancestor of to")
