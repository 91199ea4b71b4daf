package storage

import (
	"context"
	"fmt"

	"github.com/sortedstore/go-sortedstore/bst"
)

// Memory is a map backed node store. It is the reference implementation of
// the store contract and the natural choice for the destination of a
// rebalance that is later persisted wholesale.
type Memory struct {
	nodes map[bst.NodeID]bst.Node
}

var _ bst.Store = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{nodes: make(map[bst.NodeID]bst.Node)}
}

func (m *Memory) Get(ctx context.Context, id bst.NodeID) (bst.Node, error) {
	n, ok := m.nodes[id]
	if !ok {
		return bst.Node{}, fmt.Errorf("%w: %d", bst.ErrNodeNotFound, id)
	}
	return n, nil
}

func (m *Memory) Put(ctx context.Context, id bst.NodeID, node bst.Node) error {
	m.nodes[id] = node
	return nil
}

// Len returns the number of records held, including any orphaned by
// interrupted inserts.
func (m *Memory) Len() int {
	return len(m.nodes)
}
