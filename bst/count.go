package bst

import (
	"context"
)

// Size returns the number of nodes reachable from ref, zero for a leaf.
func Size(ctx context.Context, store NodeReader, ref Ref, opts ...Option) (uint64, error) {
	o := newWalkOptions(opts...)
	budget := stepBudget{remaining: o.MaxSteps}
	return subtreeSize(ctx, store, ref, &budget)
}

func subtreeSize(ctx context.Context, store NodeReader, ref Ref, budget *stepBudget) (uint64, error) {
	var count uint64
	stack := []Ref{ref}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur.IsLeaf() {
			continue
		}
		if err := budget.take(); err != nil {
			return 0, err
		}
		n, err := getNode(ctx, store, cur)
		if err != nil {
			return 0, err
		}
		count++
		stack = append(stack, n.Smaller, n.Larger)
	}
	return count, nil
}

// CountSmaller returns the number of stored values strictly smaller than
// value in the tree rooted at root. The value itself need not be present.
func CountSmaller(ctx context.Context, store NodeReader, root Ref, value uint64, opts ...Option) (uint64, error) {
	o := newWalkOptions(opts...)
	budget := stepBudget{remaining: o.MaxSteps}

	var count uint64
	cur := root
	for !cur.IsLeaf() {
		if err := budget.take(); err != nil {
			return 0, err
		}
		n, err := getNode(ctx, store, cur)
		if err != nil {
			return 0, err
		}
		switch {
		case n.Value < value:
			// the node and its whole smaller side rank below value
			below, err := subtreeSize(ctx, store, n.Smaller, &budget)
			if err != nil {
				return 0, err
			}
			count += below + 1
			cur = n.Larger
		case n.Value == value:
			below, err := subtreeSize(ctx, store, n.Smaller, &budget)
			if err != nil {
				return 0, err
			}
			return count + below, nil
		default:
			cur = n.Smaller
		}
	}
	return count, nil
}

// CountLarger returns the number of stored values strictly larger than value
// in the tree rooted at root.
func CountLarger(ctx context.Context, store NodeReader, root Ref, value uint64, opts ...Option) (uint64, error) {
	o := newWalkOptions(opts...)
	budget := stepBudget{remaining: o.MaxSteps}

	var count uint64
	cur := root
	for !cur.IsLeaf() {
		if err := budget.take(); err != nil {
			return 0, err
		}
		n, err := getNode(ctx, store, cur)
		if err != nil {
			return 0, err
		}
		switch {
		case n.Value > value:
			above, err := subtreeSize(ctx, store, n.Larger, &budget)
			if err != nil {
				return 0, err
			}
			count += above + 1
			cur = n.Smaller
		case n.Value == value:
			above, err := subtreeSize(ctx, store, n.Larger, &budget)
			if err != nil {
				return 0, err
			}
			return count + above, nil
		default:
			cur = n.Larger
		}
	}
	return count, nil
}
