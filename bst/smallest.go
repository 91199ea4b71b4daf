package bst

import (
	"context"
	"fmt"
)

// Smallest returns the minimum value reachable from root. An empty tree fails
// with ErrEmptyTree.
func Smallest(ctx context.Context, store NodeReader, root Ref, opts ...Option) (uint64, error) {
	if root.IsLeaf() {
		return 0, ErrEmptyTree
	}
	o := newWalkOptions(opts...)
	budget := stepBudget{remaining: o.MaxSteps}

	var last uint64
	first := true

	cur := root
	for !cur.IsLeaf() {
		if err := budget.take(); err != nil {
			return 0, err
		}
		n, err := getNode(ctx, store, cur)
		if err != nil {
			return 0, err
		}
		if !first && n.Value >= last {
			return 0, fmt.Errorf("%w: value %d does not decrease along the smaller chain", ErrMalformedTree, n.Value)
		}
		last, first = n.Value, false
		cur = n.Smaller
	}
	return last, nil
}
