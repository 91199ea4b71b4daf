package bst

import "errors"

var (
	ErrNodeNotFound        = errors.New("no node record at the requested id")
	ErrCandidateNotFound   = errors.New("the rebalance candidate is not present in the source tree")
	ErrUnbalancedCandidate = errors.New("the rebalance candidate is not within tolerance of the median")
	ErrDuplicateValue      = errors.New("the value is already present in the tree")
	ErrResourceExhausted   = errors.New("the walk step budget was exhausted")
	ErrMalformedTree       = errors.New("the tree violates its ordering or reachability invariants")
	ErrEmptyTree           = errors.New("the tree has no nodes")
)
