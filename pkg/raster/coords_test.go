package raster

import (
	"math"
	"math/rand"
	"testing"

	"github.com/fieldtrace/dynagraph/pkg/graph"
)

func TestMMToPxAndPtToPx(t *testing.T) {
	if got := mmToPx(25.4, 100); math.Abs(got-100) > 0.1 {
		t.Fatalf("25.4mm at 100dpi = %v, want ~100", got)
	}
	if got := ptToPx(72, 150); got != 150 {
		t.Fatalf("72pt at 150dpi = %v, want 150", got)
	}
}

func TestBuildRenderNodesDefaultsMissingValues(t *testing.T) {
	n := &graph.Node{ID: "a"}
	rng := rand.New(rand.NewSource(1))
	out := buildRenderNodes([]*graph.Node{n}, rng)

	if out[0].Size != 1 {
		t.Fatalf("default size = %v, want 1", out[0].Size)
	}
	if out[0].Color.A != 0xff {
		t.Fatalf("default color alpha = %v, want opaque", out[0].Color.A)
	}
	if out[0].X == 0 && out[0].Y == 0 {
		t.Fatal("expected a randomized fallback position")
	}
}

func TestComputeRescaleFitsAllNodesInDrawable(t *testing.T) {
	nodes := []renderNode{
		{X: -100, Y: 0, Size: 10},
		{X: 100, Y: 0, Size: 10},
	}
	o := DefaultOptions()
	params := computeRescale(nodes, o)

	drawW := mmToPx(o.WidthMM-o.Margin.L-o.Margin.R, o.RenderingDPI)
	for _, n := range nodes {
		rx, _ := params.apply(n.X, n.Y, o)
		if rx < 0 || rx > drawW+mmToPx(o.Margin.L+o.Margin.R, o.RenderingDPI) {
			t.Fatalf("node at x=%v rescaled out of canvas: rx=%v", n.X, rx)
		}
	}
}

func TestRescaleParamsApplyFlip(t *testing.T) {
	params := rescaleParams{scale: 1, drawCX: 0, drawCY: 0}
	o := DefaultOptions()
	o.FlipX = true
	rx, ry := params.apply(5, 3, o)
	if rx != -5 || ry != 3 {
		t.Fatalf("got (%v,%v), want (-5,3)", rx, ry)
	}
}
