package storage

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/sortedstore/go-sortedstore/bst"
)

// Cached is a read-through, write-through LRU cache over a slower node store.
// Node records are immutable once written apart from their child links, and
// every link update flows through Put, so the cache never serves a stale
// record to the single writer the engine's contract permits.
type Cached struct {
	base  bst.Store
	cache *lru.Cache[bst.NodeID, bst.Node]
}

var _ bst.Store = (*Cached)(nil)

func NewCached(base bst.Store, size int) (*Cached, error) {
	cache, err := lru.New[bst.NodeID, bst.Node](size)
	if err != nil {
		return nil, err
	}
	return &Cached{base: base, cache: cache}, nil
}

func (c *Cached) Get(ctx context.Context, id bst.NodeID) (bst.Node, error) {
	if n, ok := c.cache.Get(id); ok {
		return n, nil
	}
	n, err := c.base.Get(ctx, id)
	if err != nil {
		return bst.Node{}, err
	}
	c.cache.Add(id, n)
	return n, nil
}

func (c *Cached) Put(ctx context.Context, id bst.NodeID, node bst.Node) error {
	if err := c.base.Put(ctx, id, node); err != nil {
		return err
	}
	c.cache.Add(id, node)
	return nil
}
