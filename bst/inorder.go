package bst

import (
	"context"
	"fmt"
)

// InOrder returns every value reachable from root in ascending order.
//
// The walk checks that the emitted sequence is strictly increasing, which is
// both the correctness condition for the structure and a cheap way to catch
// links that revisit earlier nodes.
func InOrder(ctx context.Context, store NodeReader, root Ref, opts ...Option) ([]uint64, error) {
	o := newWalkOptions(opts...)
	budget := stepBudget{remaining: o.MaxSteps}

	var values []uint64
	var stack []Node

	cur := root
	for !cur.IsLeaf() || len(stack) > 0 {
		for !cur.IsLeaf() {
			if err := budget.take(); err != nil {
				return nil, err
			}
			n, err := getNode(ctx, store, cur)
			if err != nil {
				return nil, err
			}
			stack = append(stack, n)
			cur = n.Smaller
		}
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if len(values) > 0 && values[len(values)-1] >= n.Value {
			return nil, fmt.Errorf("%w: value %d repeats or regresses in order", ErrMalformedTree, n.Value)
		}
		values = append(values, n.Value)
		cur = n.Larger
	}
	return values, nil
}

// Height returns the number of nodes on the longest root to leaf path, zero
// for an empty tree.
func Height(ctx context.Context, store NodeReader, root Ref, opts ...Option) (uint64, error) {
	o := newWalkOptions(opts...)
	budget := stepBudget{remaining: o.MaxSteps}

	type level struct {
		ref   Ref
		depth uint64
	}
	var height uint64
	stack := []level{{ref: root, depth: 1}}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur.ref.IsLeaf() {
			continue
		}
		if err := budget.take(); err != nil {
			return 0, err
		}
		n, err := getNode(ctx, store, cur.ref)
		if err != nil {
			return 0, err
		}
		if cur.depth > height {
			height = cur.depth
		}
		stack = append(stack,
			level{ref: n.Smaller, depth: cur.depth + 1},
			level{ref: n.Larger, depth: cur.depth + 1},
		)
	}
	return height, nil
}
