package bst

import (
	"context"
	"fmt"
)

// FindClosestLarger returns the node holding the smallest value that is
// greater than or equal to value, reachable from root. The boolean result is
// false when every stored value is smaller than the query (or the tree is
// empty), in which case the returned node is meaningless.
//
// The descent narrows an ordering window at every step; a node whose value
// falls outside the window proves the structure is corrupt and the walk fails
// with ErrMalformedTree rather than returning a wrong answer.
func FindClosestLarger(ctx context.Context, store NodeReader, root Ref, value uint64, opts ...Option) (Node, bool, error) {
	o := newWalkOptions(opts...)
	budget := stepBudget{remaining: o.MaxSteps}

	var best Node
	found := false

	// exclusive ordering window, each bound live only once set
	var lo, hi uint64
	var haveLo, haveHi bool

	cur := root
	for !cur.IsLeaf() {
		if err := budget.take(); err != nil {
			return Node{}, false, err
		}
		n, err := getNode(ctx, store, cur)
		if err != nil {
			return Node{}, false, err
		}
		if (haveLo && n.Value <= lo) || (haveHi && n.Value >= hi) {
			return Node{}, false, fmt.Errorf("%w: value %d out of order at %d", ErrMalformedTree, n.Value, cur.ID)
		}
		switch {
		case n.Value == value:
			return n, true, nil
		case value < n.Value:
			best, found = n, true
			hi, haveHi = n.Value, true
			cur = n.Smaller
		default:
			lo, haveLo = n.Value, true
			cur = n.Larger
		}
	}
	return best, found, nil
}
