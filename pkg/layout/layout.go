package layout

import (
	"context"
	"math/rand"
	"time"

	"github.com/fieldtrace/dynagraph/pkg/errors"
	"github.com/fieldtrace/dynagraph/pkg/graph"
	"github.com/fieldtrace/dynagraph/pkg/observability"
)

// Run lays out every snapshot in order, seeding each one's positions from
// the previous snapshot's [Index] (nil for the first). It never returns an
// error: a failed pass for one snapshot is logged via the pipeline hooks
// and the snapshot keeps whatever positions the failed pass left, per
// spec's "log and continue" failure semantics.
func Run(ctx context.Context, runID string, snapshots []graph.Snapshot, opts ...Option) {
	o := apply(opts...)
	rng := rand.New(rand.NewSource(seedOrTime(o.RandomSeed)))

	// A nil prev seeds the first (or only) snapshot at random; every
	// subsequent snapshot inherits from the one before it.
	var prev Index

	for i := range snapshots {
		g := snapshots[i].Graph
		if g == nil {
			continue
		}

		start := time.Now()
		observability.Pipeline().OnLayoutStart(ctx, runID, i, g.Order())

		err := layoutOne(g, o, rng, prev)

		observability.Pipeline().OnLayoutComplete(ctx, runID, i, time.Since(start), err)
		errors.CollectFromContext(ctx, err)
		prev = BuildIndex(g)
	}
}

// layoutOne runs sizing, seeding, FA2, and overlap removal over g. Each
// phase runs under its own recover so a single pass's failure (e.g. a
// degenerate input that panics deep in the quadtree) leaves the graph with
// whatever positions the prior phase computed instead of propagating.
func layoutOne(g *graph.Graph, o Options, rng *rand.Rand, prev Index) (err error) {
	runPhase("sizing", &err, func() { computeSizes(g, o) })
	runPhase("seeding", &err, func() { seed(g, prev, rng) })
	runPhase("force-atlas2", &err, func() { runFA2(g, o) })
	if o.OverlapRemoval {
		runPhase("overlap-removal", &err, func() { removeOverlaps(g, o) })
	}
	return err
}

// runPhase invokes fn, converting a panic into a [errors.SnapshotComputation]
// error recorded in *err. Only the first phase's failure is kept; later
// phases still run against whatever state the failed one left.
func runPhase(name string, err *error, fn func()) {
	defer func() {
		if r := recover(); r != nil && *err == nil {
			*err = errors.New(errors.SnapshotComputation, "layout phase %q panicked: %v", name, r)
		}
	}()
	fn()
}

func seedOrTime(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}
