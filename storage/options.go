// Package storage provides node store implementations for the bst engine: an
// in-memory store, a pebble backed durable store, and a read-through caching
// decorator. All of them satisfy bst.Store and any pair of instances is
// independent, as the rebalance protocol requires.
package storage

import "go.uber.org/zap"

// StoreOptions carries construction options shared by the store
// implementations.
type StoreOptions struct {
	Log *zap.Logger
}

// Option is a generic option type. Implementations type assert to their own
// options record and ignore options aimed at another.
type Option func(any)

// WithLogger attaches a logger to the store being constructed. Stores log
// provisioning and lifecycle events only; per node operations are silent.
func WithLogger(log *zap.Logger) Option {
	return func(opts any) {
		if o, ok := opts.(*StoreOptions); ok {
			o.Log = log
		}
	}
}

func newStoreOptions(opts ...Option) StoreOptions {
	o := StoreOptions{Log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
