// Package policy decides when a caller driven rebalance pays for itself.
//
// The bst engine deliberately refuses to own this question: it validates and
// migrates, nothing more. The Advisor here is one answer to the question the
// engine leaves open. It compares the depth tax the current tree shape will
// charge over a caller supplied lookup horizon against the one-off cost of
// migrating every node into a height minimal tree, and proposes the median
// the engine will accept. It never mutates anything.
package policy

import (
	"context"
	"math/bits"

	"go.uber.org/zap"

	"github.com/sortedstore/go-sortedstore/bst"
)

// Costs models the caller's per record prices, in whatever unit the caller
// accounts in (gas, microseconds, IO credits).
type Costs struct {
	// Read is the price of loading one node record.
	Read uint64
	// Write is the price of persisting one node record.
	Write uint64
}

// Recommendation is the advisor's verdict for one tree at one moment.
type Recommendation struct {
	// Rebalance reports whether migrating now is estimated to be cheaper
	// than staying with the current shape over the horizon.
	Rebalance bool
	// Median is the candidate to pass to bst.Rebalance. It is the midpoint
	// of the tree's ordered values and always satisfies the engine's rank
	// tolerance. Set whether or not Rebalance is recommended.
	Median uint64

	Size   uint64
	Height uint64
	// KeepCost estimates the total lookup spend over the horizon if the tree
	// keeps its current shape; MigrateCost estimates the migration plus the
	// lookup spend at minimal height. The verdict is their comparison.
	KeepCost    uint64
	MigrateCost uint64
}

type AdvisorOptions struct {
	Log *zap.Logger
}

type Option func(any)

func WithLogger(log *zap.Logger) Option {
	return func(opts any) {
		if o, ok := opts.(*AdvisorOptions); ok {
			o.Log = log
		}
	}
}

// Advisor estimates rebalance profitability for trees read through a store.
type Advisor struct {
	costs Costs
	// horizon is the number of lookups the caller expects to pay for before
	// the next chance to rebalance.
	horizon uint64
	log     *zap.Logger
}

func NewAdvisor(costs Costs, horizon uint64, opts ...Option) *Advisor {
	o := AdvisorOptions{Log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Advisor{costs: costs, horizon: horizon, log: o.Log}
}

// Evaluate reads the tree rooted at root and returns a recommendation. An
// empty tree fails with bst.ErrEmptyTree; there is nothing to weigh.
func (a *Advisor) Evaluate(ctx context.Context, store bst.NodeReader, root bst.Ref) (Recommendation, error) {
	values, err := bst.InOrder(ctx, store, root)
	if err != nil {
		return Recommendation{}, err
	}
	if len(values) == 0 {
		return Recommendation{}, bst.ErrEmptyTree
	}
	height, err := bst.Height(ctx, store, root)
	if err != nil {
		return Recommendation{}, err
	}

	size := uint64(len(values))
	minimalHeight := uint64(bits.Len64(size))

	// every lookup pays one read per level, so shape is worth height reads
	keep := a.horizon * height * a.costs.Read

	// migration reads the whole tree once, then re-inserts every value into
	// the destination: a descent of at most minimal height plus the node
	// record and parent link writes. Lookups after that run at minimal
	// height.
	migration := size*a.costs.Read + size*(minimalHeight*a.costs.Read+2*a.costs.Write)
	migrate := migration + a.horizon*minimalHeight*a.costs.Read

	rec := Recommendation{
		Rebalance:   migrate < keep,
		Median:      values[(len(values)-1)/2],
		Size:        size,
		Height:      height,
		KeepCost:    keep,
		MigrateCost: migrate,
	}
	a.log.Debug("evaluated rebalance profitability",
		zap.Uint64("size", rec.Size),
		zap.Uint64("height", rec.Height),
		zap.Uint64("keep_cost", rec.KeepCost),
		zap.Uint64("migrate_cost", rec.MigrateCost),
		zap.Bool("rebalance", rec.Rebalance),
	)
	return rec, nil
}
