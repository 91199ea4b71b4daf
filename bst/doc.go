package bst

/*
Package bst implements a binary search tree whose nodes live in flat,
addressable storage rather than program memory.

# Motivation

The tree is designed for environments where every node access has a real,
accountable cost: an embedded key value store, a remote blob store, or any
substrate where records are fetched one key at a time. Three consequences
follow from that setting and shape the whole package:

 1. Nodes carry no native pointers. A node is a plain record
    {value, smaller, larger} and child links are storage references. The
    record for a value is stored under that value's own key, so the store is
    effectively a mapping from a value to its neighbour references.

 2. The tree never balances itself. Rotation-per-insert schemes amortise
    beautifully in memory and terribly when every touched node is a storage
    write. Instead the tree accepts whatever shape insertion produces, and
    offers an explicit, caller triggered Rebalance that migrates the whole
    tree into a fresh store rooted at a caller proposed median. Deciding
    *when* that one-off linear cost beats the accumulated depth tax of a
    lopsided tree is a policy question, deliberately outside this package
    (see the policy package for one answer).

 3. The structure being walked cannot be assumed well formed. The store is
    shared, external and outlives any single process, so every walk in this
    package is iterative, budgeted, and validates ordering as it descends.
    A corrupt or cyclic structure surfaces ErrMalformedTree or
    ErrResourceExhausted; it never overflows a call stack.

# Addressing

Operations are parameterised by a store and a root reference, never by a
global tree: the same store may hold many independent trees and a rebalance
deliberately targets a second store. The zero Ref is the leaf marker, so an
empty tree is simply a leaf root and no reserved value is stolen from the
key domain.

Rebalance never mutates the source tree. On success the value set moves,
wholesale and height minimal, into the destination store; on failure the
destination is garbage the caller must discard, and the source is exactly as
it was.
*/
