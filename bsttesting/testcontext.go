// Package bsttesting provides shared fixtures for exercising the bst engine
// against real stores.
package bsttesting

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sortedstore/go-sortedstore/bst"
	"github.com/sortedstore/go-sortedstore/storage"
)

// CanonicalValues is the insertion order for the canonical test tree:
//
//	        50
//	      /    \
//	    20      80
//	   /  \    /  \
//	  10   30 70   90
//
// Inserting in this order produces the complete three level shape drawn
// above, which most scenario tests lean on.
var CanonicalValues = []uint64{50, 20, 80, 10, 30, 70, 90}

// BuildTree inserts values in order into a fresh memory store and returns the
// store and root.
func BuildTree(t *testing.T, values []uint64) (*storage.Memory, bst.Ref) {
	t.Helper()
	store := NewMemory()
	root, err := InsertAll(context.Background(), store, bst.Ref{}, values)
	require.NoError(t, err)
	return store, root
}

// NewCanonicalTree builds the canonical seven value tree.
func NewCanonicalTree(t *testing.T) (*storage.Memory, bst.Ref) {
	t.Helper()
	return BuildTree(t, CanonicalValues)
}

// NewMemory returns a fresh memory store, as a convenience so scenario tests
// do not import storage directly just to provision rebalance destinations.
func NewMemory() *storage.Memory {
	return storage.NewMemory()
}

// InsertAll inserts values in order, threading the root through each insert.
func InsertAll(ctx context.Context, store bst.Store, root bst.Ref, values []uint64) (bst.Ref, error) {
	var err error
	for _, v := range values {
		if root, err = bst.Insert(ctx, store, root, v); err != nil {
			return root, err
		}
	}
	return root, nil
}

// Values returns the tree's value set in ascending order, failing the test on
// any walk error.
func Values(t *testing.T, store bst.NodeReader, root bst.Ref) []uint64 {
	t.Helper()
	values, err := bst.InOrder(context.Background(), store, root)
	require.NoError(t, err)
	return values
}

// Height returns the tree height, failing the test on any walk error.
func Height(t *testing.T, store bst.NodeReader, root bst.Ref) uint64 {
	t.Helper()
	h, err := bst.Height(context.Background(), store, root)
	require.NoError(t, err)
	return h
}
