package bst

import (
	"context"
	"errors"
	"fmt"
)

// NodeReader is the read side of a node store. Get returns the record stored
// at id, or an error wrapping ErrNodeNotFound when no record exists there.
type NodeReader interface {
	Get(ctx context.Context, id NodeID) (Node, error)
}

// NodeWriter is the write side of a node store. Put writes or overwrites the
// record at id. Writes are atomic per key; multi record atomicity is not part
// of the contract and the walk algorithms order their writes so they never
// need it.
type NodeWriter interface {
	Put(ctx context.Context, id NodeID, node Node) error
}

// Store is a full node store. Implementations must allow multiple independent
// instances at once: a rebalance reads one store while writing another.
type Store interface {
	NodeReader
	NodeWriter
}

// getNode fetches the node addressed by ref and enforces the self addressing
// invariant. A missing record behind a valid reference means the structure is
// corrupt, not merely absent, and is reported as such.
func getNode(ctx context.Context, store NodeReader, ref Ref) (Node, error) {
	n, err := store.Get(ctx, ref.ID)
	if err != nil {
		if errors.Is(err, ErrNodeNotFound) {
			return Node{}, fmt.Errorf("%w: dangling reference to %d", ErrMalformedTree, ref.ID)
		}
		return Node{}, err
	}
	if n.ID() != ref.ID {
		return Node{}, fmt.Errorf("%w: record at %d holds value %d", ErrMalformedTree, ref.ID, n.Value)
	}
	return n, nil
}
