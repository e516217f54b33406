package layout

import (
	"math/rand"
	"testing"

	"github.com/fieldtrace/dynagraph/pkg/graph"
)

func buildTriangle() *graph.Graph {
	g := graph.New()
	_ = g.AddNode(graph.Node{ID: "a"})
	_ = g.AddNode(graph.Node{ID: "b"})
	_ = g.AddNode(graph.Node{ID: "c"})
	_ = g.AddEdge(graph.Edge{Source: "a", Target: "b"})
	_ = g.AddEdge(graph.Edge{Source: "b", Target: "c"})
	return g
}

func TestSeedStandaloneRandomizesEveryNode(t *testing.T) {
	g := buildTriangle()
	rng := rand.New(rand.NewSource(1))
	seed(g, nil, rng)
	for _, n := range g.Nodes() {
		if n.X == 0 && n.Y == 0 {
			t.Fatalf("node %s left at origin; want a seeded position", n.ID)
		}
	}
}

func TestSeedInheritsPositionedNodes(t *testing.T) {
	g := buildTriangle()
	prev := Index{"a": {X: 5, Y: 7}}
	rng := rand.New(rand.NewSource(1))
	seed(g, prev, rng)

	a, _ := g.Node("a")
	if a.X != 5 || a.Y != 7 {
		t.Fatalf("a = (%v,%v), want (5,7)", a.X, a.Y)
	}
}

func TestSeedNewNodeTakesMeanOfPositionedNeighbors(t *testing.T) {
	g := buildTriangle()
	prev := Index{"a": {X: 0, Y: 0}, "c": {X: 10, Y: 0}}
	rng := rand.New(rand.NewSource(1))
	seed(g, prev, rng)

	b, _ := g.Node("b")
	if b.X != 5 || b.Y != 0 {
		t.Fatalf("b = (%v,%v), want (5,0)", b.X, b.Y)
	}
}

func TestSeedNewNodeWithNoPositionedNeighborFallsBackRandom(t *testing.T) {
	g := graph.New()
	_ = g.AddNode(graph.Node{ID: "isolated"})
	rng := rand.New(rand.NewSource(1))
	seed(g, Index{}, rng)

	n, _ := g.Node("isolated")
	if n.X == 0 && n.Y == 0 {
		t.Fatal("expected a random fallback position, got origin")
	}
}
