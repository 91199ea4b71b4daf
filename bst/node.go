package bst

// NodeID is the storage key of a node record. Nodes are self addressed: the
// record for a value is always stored under NodeID(value).
type NodeID uint64

// Ref addresses a node in a store, or marks the absence of one. The zero
// value is the leaf marker and terminates descent wherever a child would be.
type Ref struct {
	ID    NodeID
	Valid bool
}

// RefTo returns a reference addressing the node stored at id.
func RefTo(id NodeID) Ref {
	return Ref{ID: id, Valid: true}
}

// IsLeaf reports whether r is the leaf marker rather than a node address.
func (r Ref) IsLeaf() bool {
	return !r.Valid
}

// Node is a single tree record. All values reachable through Smaller are
// strictly less than Value, all values reachable through Larger strictly
// greater. Duplicate values never occur in a well formed tree.
type Node struct {
	Value   uint64
	Smaller Ref
	Larger  Ref
}

// ID returns the storage key the node must be stored under.
func (n Node) ID() NodeID {
	return NodeID(n.Value)
}

// Ref returns a reference addressing the node.
func (n Node) Ref() Ref {
	return RefTo(n.ID())
}
