package storage

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/cockroachdb/pebble"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sortedstore/go-sortedstore/bst"
)

// Pebble is a durable node store over an embedded pebble database. Many
// independent stores share one database: each is namespaced by a handle
// minted at provisioning time, so a rebalance destination is just a freshly
// provisioned handle on the same database.
type Pebble struct {
	db     *pebble.DB
	handle uuid.UUID
	codec  Codec
	log    *zap.Logger
}

var _ bst.Store = (*Pebble)(nil)

// ProvisionPebble mints a fresh, empty store on db and returns it. The handle
// is recoverable via Handle for reopening later.
func ProvisionPebble(db *pebble.DB, opts ...Option) (*Pebble, error) {
	return OpenPebble(db, uuid.New(), opts...)
}

// OpenPebble returns the store identified by handle on db. Opening a handle
// that was never written behaves as an empty store.
func OpenPebble(db *pebble.DB, handle uuid.UUID, opts ...Option) (*Pebble, error) {
	o := newStoreOptions(opts...)
	codec, err := NewCodec()
	if err != nil {
		return nil, err
	}
	s := &Pebble{db: db, handle: handle, codec: codec, log: o.Log}
	s.log.Debug("opened pebble node store", zap.String("handle", handle.String()))
	return s, nil
}

// Handle returns the identifier namespacing this store within its database.
func (s *Pebble) Handle() uuid.UUID {
	return s.handle
}

// key prefixes the node id with the store handle: 16 handle bytes then the
// big endian id, so one store's records are contiguous in the keyspace.
func (s *Pebble) key(id bst.NodeID) []byte {
	k := make([]byte, 16+8)
	copy(k, s.handle[:])
	binary.BigEndian.PutUint64(k[16:], uint64(id))
	return k
}

func (s *Pebble) Get(ctx context.Context, id bst.NodeID) (bst.Node, error) {
	data, closer, err := s.db.Get(s.key(id))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return bst.Node{}, fmt.Errorf("%w: %d", bst.ErrNodeNotFound, id)
		}
		return bst.Node{}, fmt.Errorf("reading node %d: %w", id, err)
	}
	defer closer.Close()
	return s.codec.Decode(data)
}

func (s *Pebble) Put(ctx context.Context, id bst.NodeID, node bst.Node) error {
	data, err := s.codec.Encode(node)
	if err != nil {
		return err
	}
	if err := s.db.Set(s.key(id), data, pebble.Sync); err != nil {
		return fmt.Errorf("writing node %d: %w", id, err)
	}
	return nil
}
