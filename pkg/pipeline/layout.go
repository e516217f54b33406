package pipeline

import (
	"context"

	"github.com/fieldtrace/dynagraph/pkg/graph"
	"github.com/fieldtrace/dynagraph/pkg/layout"
)

// Layout lays out every snapshot in place, in order, seeding each one from
// the one before it. It never returns an error of its own — a failed pass
// for one snapshot is recorded by pkg/layout's own "log and continue"
// handling and surfaces through the observability hooks and the
// errors.Collector attached to ctx (see errors.WithCollector).
func Layout(ctx context.Context, runID string, snapshots []graph.Snapshot, opts Options) {
	layout.Run(ctx, runID, snapshots, opts.LayoutOptions()...)
}
