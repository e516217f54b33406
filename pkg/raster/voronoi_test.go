package raster

import "testing"

func TestBuildVoronoiAssignsOwnershipNearEachNode(t *testing.T) {
	nodes := []renderNode{
		{X: 10, Y: 10, Size: 5},
		{X: 90, Y: 90, Size: 5},
	}
	field := buildVoronoi(nodes, 100, 100, 20, 1e8)

	if owner := field.ownerAt(10, 10); owner != 1 {
		t.Fatalf("owner near node 0 = %d, want 1", owner)
	}
	if owner := field.ownerAt(90, 90); owner != 2 {
		t.Fatalf("owner near node 1 = %d, want 2", owner)
	}
}

func TestBuildVoronoiDistanceIsZeroInsideNodeRadius(t *testing.T) {
	nodes := []renderNode{{X: 50, Y: 50, Size: 10}}
	field := buildVoronoi(nodes, 100, 100, 20, 1e8)
	if d := field.distanceAt(50, 50); d != 0 {
		t.Fatalf("distance at node center = %v, want 0", d)
	}
}

func TestBuildVoronoiUnclaimedPixelHasNoOwner(t *testing.T) {
	nodes := []renderNode{{X: 5, Y: 5, Size: 1}}
	field := buildVoronoi(nodes, 100, 100, 2, 1e8)
	if owner := field.ownerAt(95, 95); owner != 0 {
		t.Fatalf("far-away owner = %d, want 0", owner)
	}
}

func TestReductionRatioCapsResolution(t *testing.T) {
	r := reductionRatio(1000, 1000, 10000)
	if r*1000*r*1000 > 10000+1 {
		t.Fatalf("capped area = %v, want <= 10000", r*1000*r*1000)
	}
}

func TestReductionRatioNoOpBelowCap(t *testing.T) {
	if r := reductionRatio(10, 10, 1e8); r != 1 {
		t.Fatalf("got %v, want 1", r)
	}
}
