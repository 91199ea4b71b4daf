package storage

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/sortedstore/go-sortedstore/bst"
)

// nodeRecord is the wire form of a node. Child references collapse to
// optional ids: an absent field is the leaf marker.
type nodeRecord struct {
	Value   uint64  `cbor:"1,keyasint"`
	Smaller *uint64 `cbor:"2,keyasint,omitempty"`
	Larger  *uint64 `cbor:"3,keyasint,omitempty"`
}

// Codec encodes node records as deterministic CBOR for stores that persist
// bytes.
type Codec struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

func NewCodec() (Codec, error) {
	enc, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return Codec{}, err
	}
	dec, err := cbor.DecOptions{DupMapKey: cbor.DupMapKeyEnforcedAPF}.DecMode()
	if err != nil {
		return Codec{}, err
	}
	return Codec{enc: enc, dec: dec}, nil
}

func (c Codec) Encode(n bst.Node) ([]byte, error) {
	rec := nodeRecord{Value: n.Value}
	if !n.Smaller.IsLeaf() {
		id := uint64(n.Smaller.ID)
		rec.Smaller = &id
	}
	if !n.Larger.IsLeaf() {
		id := uint64(n.Larger.ID)
		rec.Larger = &id
	}
	return c.enc.Marshal(&rec)
}

func (c Codec) Decode(data []byte) (bst.Node, error) {
	var rec nodeRecord
	if err := c.dec.Unmarshal(data, &rec); err != nil {
		return bst.Node{}, fmt.Errorf("decoding node record: %w", err)
	}
	n := bst.Node{Value: rec.Value}
	if rec.Smaller != nil {
		n.Smaller = bst.RefTo(bst.NodeID(*rec.Smaller))
	}
	if rec.Larger != nil {
		n.Larger = bst.RefTo(bst.NodeID(*rec.Larger))
	}
	return n, nil
}
