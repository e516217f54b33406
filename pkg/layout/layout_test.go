package layout

import (
	"context"
	"testing"

	"github.com/fieldtrace/dynagraph/pkg/graph"
)

func TestRunSeedsSubsequentSnapshotsFromThePrevious(t *testing.T) {
	g1 := buildTriangle()
	g2 := buildTriangle()
	snapshots := []graph.Snapshot{
		{Start: 0, End: 1, Graph: g1},
		{Start: 1, End: 2, Graph: g2},
	}

	Run(context.Background(), "run-1", snapshots, WithRandomSeed(42), WithIterationsFactor(0.1))

	for _, s := range snapshots {
		if s.Graph.Order() != 3 {
			t.Fatalf("expected 3 nodes, got %d", s.Graph.Order())
		}
	}
}

func TestRunSkipsNilGraphs(t *testing.T) {
	snapshots := []graph.Snapshot{{Start: 0, End: 1, Graph: nil}}
	// Must not panic.
	Run(context.Background(), "run-1", snapshots, WithIterationsFactor(0.1))
}

func TestRunPhaseRecoversPanic(t *testing.T) {
	var err error
	runPhase("boom", &err, func() { panic("kaboom") })
	if err == nil {
		t.Fatal("expected a recovered error")
	}
}
