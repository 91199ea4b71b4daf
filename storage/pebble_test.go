package storage_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/pebble"
	"github.com/stretchr/testify/require"

	"github.com/sortedstore/go-sortedstore/bst"
	"github.com/sortedstore/go-sortedstore/bsttesting"
	"github.com/sortedstore/go-sortedstore/storage"
)

func openTestDB(t *testing.T) *pebble.DB {
	t.Helper()
	db, err := pebble.Open(filepath.Join(t.TempDir(), "nodes"), &pebble.Options{})
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, db.Close())
	})
	return db
}

func TestPebbleStoreHostsTree(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	store, err := storage.ProvisionPebble(db)
	require.NoError(t, err)

	root, err := bsttesting.InsertAll(ctx, store, bst.Ref{}, bsttesting.CanonicalValues)
	require.NoError(t, err)

	values, err := bst.InOrder(ctx, store, root)
	require.NoError(t, err)
	require.Equal(t, []uint64{10, 20, 30, 50, 70, 80, 90}, values)

	n, found, err := bst.FindClosestLarger(ctx, store, root, 35)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, uint64(50), n.Value)
}

func TestPebbleStoresAreIsolated(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	a, err := storage.ProvisionPebble(db)
	require.NoError(t, err)
	b, err := storage.ProvisionPebble(db)
	require.NoError(t, err)

	require.NoError(t, a.Put(ctx, 1, bst.Node{Value: 1}))

	_, err = b.Get(ctx, 1)
	require.ErrorIs(t, err, bst.ErrNodeNotFound)
}

func TestPebbleReopenByHandle(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	store, err := storage.ProvisionPebble(db)
	require.NoError(t, err)
	require.NoError(t, store.Put(ctx, 9, bst.Node{Value: 9}))

	reopened, err := storage.OpenPebble(db, store.Handle())
	require.NoError(t, err)
	n, err := reopened.Get(ctx, 9)
	require.NoError(t, err)
	require.Equal(t, uint64(9), n.Value)
}

func TestPebbleRebalanceAcrossStores(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	oldStore, err := storage.ProvisionPebble(db)
	require.NoError(t, err)
	oldRoot, err := bsttesting.InsertAll(ctx, oldStore, bst.Ref{}, []uint64{1, 2, 3, 4, 5, 6, 7})
	require.NoError(t, err)

	newStore, err := storage.ProvisionPebble(db)
	require.NoError(t, err)
	newRoot, err := bst.Rebalance(ctx, oldStore, oldRoot, newStore, 4)
	require.NoError(t, err)

	values, err := bst.InOrder(ctx, newStore, newRoot)
	require.NoError(t, err)
	require.Equal(t, []uint64{1, 2, 3, 4, 5, 6, 7}, values)

	height, err := bst.Height(ctx, newStore, newRoot)
	require.NoError(t, err)
	require.Equal(t, uint64(3), height)

	// the old tree remains intact in the shared database
	values, err = bst.InOrder(ctx, oldStore, oldRoot)
	require.NoError(t, err)
	require.Equal(t, []uint64{1, 2, 3, 4, 5, 6, 7}, values)
}
