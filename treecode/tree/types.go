package tree

import (
	"sync"

	"github.com/katalvlaran/opentime/treecode"
)

// Node is a single stored tree node: its path and an arbitrary payload.
type Node struct {
	Code  treecode.Treecode
	Value interface{}
}

// Tree is a hash-bucketed arena of Nodes keyed by treecode.Hash, guarded
// by a single RWMutex (mirroring the coarse-grained locking the source
// graph engine uses for its adjacency storage). Collisions within a
// bucket are resolved by an exact treecode.Equal scan.
type Tree struct {
	mu    sync.RWMutex
	nodes map[uint64][]*Node
}

// New returns an empty Tree.
func New() *Tree {
	return &Tree{nodes: make(map[uint64][]*Node)}
}

// Insert adds a node at code with the given value. It fails if a node
// already exists at that exact path.
func (t *Tree) Insert(code treecode.Treecode, value interface{}) (*Node, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	h := code.Hash()
	for _, n := range t.nodes[h] {
		if n.Code.Equal(code) {
			return nil, ErrDuplicateNode
		}
	}

	n := &Node{Code: code, Value: value}
	t.nodes[h] = append(t.nodes[h], n)

	return n, nil
}

// Lookup returns the node stored at code, if any.
func (t *Tree) Lookup(code treecode.Treecode) (*Node, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, n := range t.nodes[code.Hash()] {
		if n.Code.Equal(code) {
			return n, true
		}
	}

	return nil, false
}

// Len reports the total number of stored nodes.
func (t *Tree) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	count := 0
	for _, bucket := range t.nodes {
		count += len(bucket)
	}

	return count
}

// Path returns the sequence of steps descending from from to to. It
// requires from to be a prefix (ancestor, or equal) of to; the returned
// slice is empty when from equals to.
func Path(from, to treecode.Treecode) ([]treecode.Step, error) {
	if !from.IsPrefixOf(to) {
		return nil, ErrNoPath
	}

	steps := make([]treecode.Step, 0, to.Len()-from.Len())
	cur := from
	for cur.Len() < to.Len() {
		step, err := cur.NextStepTowards(to)
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
		cur = cur.Append(step)
	}

	return steps, nil
}
