package policy_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sortedstore/go-sortedstore/bst"
	"github.com/sortedstore/go-sortedstore/bsttesting"
	"github.com/sortedstore/go-sortedstore/policy"
)

func chainValues(n uint64) []uint64 {
	values := make([]uint64, n)
	for i := range values {
		values[i] = uint64(i) + 1
	}
	return values
}

func TestAdvisorRecommendsFlatteningAChain(t *testing.T) {
	ctx := context.Background()

	// ascending insertion: fifteen nodes, height fifteen
	store, root := bsttesting.BuildTree(t, chainValues(15))

	advisor := policy.NewAdvisor(policy.Costs{Read: 1, Write: 1}, 1000)
	rec, err := advisor.Evaluate(ctx, store, root)
	require.NoError(t, err)

	require.True(t, rec.Rebalance)
	require.Equal(t, uint64(8), rec.Median)
	require.Equal(t, uint64(15), rec.Size)
	require.Equal(t, uint64(15), rec.Height)
	require.Less(t, rec.MigrateCost, rec.KeepCost)

	// the proposal is one the engine accepts
	newStore := bsttesting.NewMemory()
	newRoot, err := bst.Rebalance(ctx, store, root, newStore, rec.Median)
	require.NoError(t, err)
	require.Equal(t, uint64(4), bsttesting.Height(t, newStore, newRoot))
}

func TestAdvisorKeepsShortHorizon(t *testing.T) {
	store, root := bsttesting.BuildTree(t, chainValues(15))

	// too few lookups ahead to amortise the migration
	advisor := policy.NewAdvisor(policy.Costs{Read: 1, Write: 1}, 5)
	rec, err := advisor.Evaluate(context.Background(), store, root)
	require.NoError(t, err)
	require.False(t, rec.Rebalance)
}

func TestAdvisorKeepsAlreadyMinimalTree(t *testing.T) {
	store, root := bsttesting.NewCanonicalTree(t)

	advisor := policy.NewAdvisor(policy.Costs{Read: 1, Write: 1}, 1_000_000)
	rec, err := advisor.Evaluate(context.Background(), store, root)
	require.NoError(t, err)
	require.False(t, rec.Rebalance)
	require.Equal(t, uint64(50), rec.Median)
}

func TestAdvisorEmptyTree(t *testing.T) {
	advisor := policy.NewAdvisor(policy.Costs{Read: 1, Write: 1}, 10)
	_, err := advisor.Evaluate(context.Background(), bsttesting.NewMemory(), bst.Ref{})
	require.ErrorIs(t, err, bst.ErrEmptyTree)
}
