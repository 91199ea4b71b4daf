package bst

// DefaultMaxSteps is the walk step budget applied when the caller does not
// supply one. A step is one node fetch, so the default comfortably covers any
// tree that is plausibly intact while still terminating on a cyclic one.
const DefaultMaxSteps = uint64(1) << 20

// WalkOptions carries the per call tuning accepted by every operation that
// descends the tree.
type WalkOptions struct {
	// MaxSteps bounds the number of node fetches a single operation may
	// perform before failing with ErrResourceExhausted.
	MaxSteps uint64
}

// Option is a generic option. Operations apply options against their own
// target record and ignore options aimed at a different one.
type Option func(any)

// WithMaxSteps overrides the walk step budget for a single operation.
func WithMaxSteps(n uint64) Option {
	return func(opts any) {
		if o, ok := opts.(*WalkOptions); ok {
			o.MaxSteps = n
		}
	}
}

func newWalkOptions(opts ...Option) WalkOptions {
	o := WalkOptions{MaxSteps: DefaultMaxSteps}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// stepBudget meters node fetches for one operation. The budget, rather than
// any cycle detection bookkeeping, is what guarantees termination on a
// corrupt structure.
type stepBudget struct {
	remaining uint64
}

func (b *stepBudget) take() error {
	if b.remaining == 0 {
		return ErrResourceExhausted
	}
	b.remaining--
	return nil
}
