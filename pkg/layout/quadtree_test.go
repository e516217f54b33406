package layout

import "testing"

func TestQuadtreeAggregateMassMatchesSum(t *testing.T) {
	bodies := []quadBody{
		{x: 0, y: 0, mass: 1, id: "a"},
		{x: 10, y: 0, mass: 2, id: "b"},
		{x: 0, y: 10, mass: 3, id: "c"},
	}
	tree := newQuadtree(bodies)
	if tree.mass != 6 {
		t.Fatalf("root mass = %v, want 6", tree.mass)
	}
}

func TestQuadtreeForEachApproxCoarsensToRootAtLargeTheta(t *testing.T) {
	bodies := []quadBody{
		{x: 0, y: 0, mass: 1, id: "a"},
		{x: 100, y: 0, mass: 1, id: "b"},
		{x: 0, y: 100, mass: 1, id: "c"},
	}
	tree := newQuadtree(bodies)

	var total float64
	tree.forEachApprox(50, 50, 1000, func(mass, dx, dy, dist float64) {
		total += mass
	})
	if total != 3 {
		t.Fatalf("visited total mass = %v, want 3 (theta=1000 should coarsen to one visit)", total)
	}
}

func TestNewQuadtreeEmptyIsNil(t *testing.T) {
	if tree := newQuadtree(nil); tree != nil {
		t.Fatalf("got %+v, want nil", tree)
	}
}
