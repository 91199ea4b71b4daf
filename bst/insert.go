package bst

import (
	"context"
	"fmt"
)

// Insert splices value into the tree rooted at root and returns the root of
// the updated tree. The returned root differs from the one passed only when
// the tree was empty. On any error the source tree is unchanged and the
// passed root remains the valid one.
//
// The new node is attached at the unique leaf gap that preserves strict
// ordering: the smaller slot of the closest larger node when that slot is
// free, otherwise the larger slot of the rightmost node beneath it. The node
// record is written before the parent link so an interrupted insert leaves an
// unreachable orphan record, never a dangling reference.
func Insert(ctx context.Context, store Store, root Ref, value uint64, opts ...Option) (Ref, error) {
	o := newWalkOptions(opts...)
	budget := stepBudget{remaining: o.MaxSteps}

	node := Node{Value: value}

	if root.IsLeaf() {
		if err := store.Put(ctx, node.ID(), node); err != nil {
			return root, err
		}
		return node.Ref(), nil
	}

	var lo, hi uint64
	var haveLo, haveHi bool

	var parent Node
	var atSmaller bool

	cur := root
descend:
	for {
		if err := budget.take(); err != nil {
			return root, err
		}
		n, err := getNode(ctx, store, cur)
		if err != nil {
			return root, err
		}
		if (haveLo && n.Value <= lo) || (haveHi && n.Value >= hi) {
			return root, fmt.Errorf("%w: value %d out of order at %d", ErrMalformedTree, n.Value, cur.ID)
		}
		switch {
		case n.Value == value:
			return root, fmt.Errorf("%w: %d", ErrDuplicateValue, value)
		case value < n.Value:
			hi, haveHi = n.Value, true
			if n.Smaller.IsLeaf() {
				parent, atSmaller = n, true
				break descend
			}
			cur = n.Smaller
		default:
			lo, haveLo = n.Value, true
			if n.Larger.IsLeaf() {
				parent, atSmaller = n, false
				break descend
			}
			cur = n.Larger
		}
	}

	if err := store.Put(ctx, node.ID(), node); err != nil {
		return root, err
	}
	if atSmaller {
		parent.Smaller = node.Ref()
	} else {
		parent.Larger = node.Ref()
	}
	if err := store.Put(ctx, parent.ID(), parent); err != nil {
		return root, err
	}
	return root, nil
}
