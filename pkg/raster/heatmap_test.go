package raster

import "testing"

func TestBuildHeatmapPeaksAtNodeCenter(t *testing.T) {
	nodes := []renderNode{{X: 50, Y: 50, Size: 5}}
	field := buildHeatmap(nodes, 100, 100, 8, 150, 1e8, 1)

	center := field.values.At(50, 50)
	edge := field.values.At(0, 0)
	if center <= edge {
		t.Fatalf("center=%v should exceed far corner=%v", center, edge)
	}
}

func TestBuildHeatmapNormalizedByNodeCountNotMax(t *testing.T) {
	one := buildHeatmap([]renderNode{{X: 50, Y: 50, Size: 5}}, 100, 100, 8, 150, 1e8, 1)
	two := buildHeatmap([]renderNode{{X: 50, Y: 50, Size: 5}, {X: 50, Y: 50, Size: 5}}, 100, 100, 8, 150, 1e8, 1)

	// Two coincident identical nodes contribute double the raw sum but are
	// normalized by node count, so the peak value should be unchanged.
	if diff := one.values.At(50, 50) - two.values.At(50, 50); diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("one=%v two=%v, want equal after normalization", one.values.At(50, 50), two.values.At(50, 50))
	}
}

func TestBuildHeatmapEmptyNodesYieldsZeroField(t *testing.T) {
	field := buildHeatmap(nil, 10, 10, 8, 150, 1e8, 1)
	if field.hMax != 0 {
		t.Fatalf("hMax = %v, want 0", field.hMax)
	}
}
