package layout

import (
	"math"
	"testing"

	"github.com/fieldtrace/dynagraph/pkg/graph"
)

func TestOverlapSweepOnceSeparatesOverlappingDiscs(t *testing.T) {
	g := graph.New()
	_ = g.AddNode(graph.Node{ID: "a", Size: 5})
	_ = g.AddNode(graph.Node{ID: "b", Size: 5})
	a, _ := g.Node("a")
	b, _ := g.Node("b")
	a.X, a.Y = 0, 0
	b.X, b.Y = 1, 0 // discs of radius 5 each, centers 1 apart: heavily overlapping

	moved := overlapSweepOnce(g, 0, 8)
	if !moved {
		t.Fatal("expected overlapping discs to be pushed apart")
	}
	dist := math.Hypot(b.X-a.X, b.Y-a.Y)
	if dist <= 1 {
		t.Fatalf("distance after one sweep = %v, want > 1", dist)
	}
}

func TestOverlapSweepOnceNoOpWhenFarApart(t *testing.T) {
	g := graph.New()
	_ = g.AddNode(graph.Node{ID: "a", Size: 1})
	_ = g.AddNode(graph.Node{ID: "b", Size: 1})
	a, _ := g.Node("a")
	b, _ := g.Node("b")
	a.X, a.Y = 0, 0
	b.X, b.Y = 1000, 0

	if overlapSweepOnce(g, 0, 8) {
		t.Fatal("expected no movement for far-apart discs")
	}
}

func TestRemoveOverlapsConverges(t *testing.T) {
	g := graph.New()
	_ = g.AddNode(graph.Node{ID: "a", Size: 5})
	_ = g.AddNode(graph.Node{ID: "b", Size: 5})
	a, _ := g.Node("a")
	b, _ := g.Node("b")
	a.X, a.Y = 0, 0
	b.X, b.Y = 0.5, 0

	o := DefaultOptions()
	o.IterationsFactor = 0.5
	removeOverlaps(g, o)

	dist := math.Hypot(b.X-a.X, b.Y-a.Y)
	minDist := (a.Size + b.Size) * overlapRatio
	if dist < minDist-1 {
		t.Fatalf("distance after removal = %v, want close to >= %v", dist, minDist)
	}
}
