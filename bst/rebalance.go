package bst

import (
	"context"
	"fmt"
)

// Rebalance copies the tree rooted at oldRoot in oldStore into newStore,
// re-rooted at candidate, and returns the new tree's root.
//
// The candidate must name a value present in the source tree and must rank
// within one position of the source tree's median, otherwise the call fails
// with ErrCandidateNotFound or ErrUnbalancedCandidate respectively. Proposing
// the candidate, and judging whether the migration cost is worth paying, is
// the caller's business.
//
// The source tree is never written. On success the destination holds exactly
// the source's value set, rooted at the candidate and height minimal. On
// failure the destination may hold a partial copy which the caller must
// discard; callers provision a fresh destination store per attempt.
func Rebalance(ctx context.Context, oldStore NodeReader, oldRoot Ref, newStore Store, candidate uint64, opts ...Option) (Ref, error) {
	located, found, err := FindClosestLarger(ctx, oldStore, oldRoot, candidate, opts...)
	if err != nil {
		return Ref{}, err
	}
	if !found || located.Value != candidate {
		return Ref{}, fmt.Errorf("%w: %d", ErrCandidateNotFound, candidate)
	}

	smaller, err := CountSmaller(ctx, oldStore, oldRoot, candidate, opts...)
	if err != nil {
		return Ref{}, err
	}
	larger, err := CountLarger(ctx, oldStore, oldRoot, candidate, opts...)
	if err != nil {
		return Ref{}, err
	}
	spread := larger - smaller
	if smaller > larger {
		spread = smaller - larger
	}
	if spread > 1 {
		return Ref{}, fmt.Errorf("%w: %d ranks %d/%d", ErrUnbalancedCandidate, candidate, smaller, larger)
	}

	values, err := InOrder(ctx, oldStore, oldRoot, opts...)
	if err != nil {
		return Ref{}, err
	}

	newRoot, err := Insert(ctx, newStore, Ref{}, candidate, opts...)
	if err != nil {
		return Ref{}, err
	}

	// candidate sits at index smaller in the ascending sequence; migrate each
	// half midpoint first so every subtree splits evenly and the result is as
	// shallow as the value count allows
	if err := insertBalanced(ctx, newStore, newRoot, values[:smaller], opts...); err != nil {
		return Ref{}, err
	}
	if err := insertBalanced(ctx, newStore, newRoot, values[smaller+1:], opts...); err != nil {
		return Ref{}, err
	}
	return newRoot, nil
}

// insertBalanced inserts an ascending run of values midpoint first,
// breadth first across the progressively halved spans.
func insertBalanced(ctx context.Context, store Store, root Ref, values []uint64, opts ...Option) error {
	type span struct {
		lo, hi int
	}
	queue := []span{{0, len(values)}}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		if s.lo >= s.hi {
			continue
		}
		mid := s.lo + (s.hi-s.lo)/2
		if _, err := Insert(ctx, store, root, values[mid], opts...); err != nil {
			return err
		}
		queue = append(queue, span{s.lo, mid}, span{mid + 1, s.hi})
	}
	return nil
}
