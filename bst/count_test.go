package bst_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sortedstore/go-sortedstore/bst"
	"github.com/sortedstore/go-sortedstore/bsttesting"
)

func TestSize(t *testing.T) {
	ctx := context.Background()
	store, root := bsttesting.NewCanonicalTree(t)

	size, err := bst.Size(ctx, store, root)
	require.NoError(t, err)
	require.Equal(t, uint64(7), size)

	size, err = bst.Size(ctx, store, bst.Ref{})
	require.NoError(t, err)
	require.Zero(t, size)
}

func TestCounts(t *testing.T) {
	ctx := context.Background()
	store, root := bsttesting.NewCanonicalTree(t)

	// over {10,20,30,50,70,80,90}
	tests := []struct {
		name    string
		value   uint64
		smaller uint64
		larger  uint64
	}{
		{"median", 50, 3, 3},
		{"minimum", 10, 0, 6},
		{"maximum", 90, 6, 0},
		{"absent interior", 35, 3, 4},
		{"absent below all", 5, 0, 7},
		{"absent above all", 999, 7, 0},
		{"present off median", 70, 4, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			smaller, err := bst.CountSmaller(ctx, store, root, tt.value)
			if err != nil {
				t.Fatalf("CountSmaller(%d): %v", tt.value, err)
			}
			if smaller != tt.smaller {
				t.Errorf("CountSmaller(%d) = %d, want %d", tt.value, smaller, tt.smaller)
			}
			larger, err := bst.CountLarger(ctx, store, root, tt.value)
			if err != nil {
				t.Fatalf("CountLarger(%d): %v", tt.value, err)
			}
			if larger != tt.larger {
				t.Errorf("CountLarger(%d) = %d, want %d", tt.value, larger, tt.larger)
			}
		})
	}
}

func TestCountsEmptyTree(t *testing.T) {
	ctx := context.Background()
	store := bsttesting.NewMemory()

	smaller, err := bst.CountSmaller(ctx, store, bst.Ref{}, 10)
	require.NoError(t, err)
	require.Zero(t, smaller)

	larger, err := bst.CountLarger(ctx, store, bst.Ref{}, 10)
	require.NoError(t, err)
	require.Zero(t, larger)
}

func TestCountBudgetCoversSubtreeSizing(t *testing.T) {
	ctx := context.Background()
	store, root := bsttesting.NewCanonicalTree(t)

	// counting above the minimum must size nearly the whole tree, so a
	// budget below the node count has to fail
	_, err := bst.CountLarger(ctx, store, root, 10, bst.WithMaxSteps(3))
	require.ErrorIs(t, err, bst.ErrResourceExhausted)
}
