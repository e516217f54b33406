package raster

import (
	"image/color"
	"testing"

	"github.com/fieldtrace/dynagraph/pkg/fonts"
)

func TestFontSizeForNodeInterpolatesWithinBounds(t *testing.T) {
	o := DefaultOptions()
	sizePt, weight := fontSizeForNode(renderNode{Size: 10}, 10, o)
	if sizePt < o.LabelMinFontSizePt-0.01 || sizePt > o.LabelMaxFontSizePt+5 {
		t.Fatalf("sizePt=%v out of expected range", sizePt)
	}
	if weight == 0 {
		t.Fatal("expected a non-zero quantized weight")
	}
}

func TestLabelColorConstrainsChromaAndLightness(t *testing.T) {
	c := labelColor(color.RGBA{R: 255, G: 0, B: 0, A: 255})
	if c.A != 0xff {
		t.Fatalf("expected opaque output, got alpha=%v", c.A)
	}
}

func TestSelectLabelsSkipsNodesWithoutLabels(t *testing.T) {
	nodes := []renderNode{{X: 0, Y: 0, Size: 5, Label: ""}}
	o := DefaultOptions()
	out := selectLabels(nodes, o, fonts.Load("", o.LabelMaxFontSizePt))
	if len(out) != 0 {
		t.Fatalf("got %d labels, want 0", len(out))
	}
}

func TestSelectLabelsDropsOverlappingCapsules(t *testing.T) {
	nodes := []renderNode{
		{X: 0, Y: 0, Size: 20, Label: "alpha"},
		{X: 1, Y: 1, Size: 1, Label: "beta"}, // nearly coincident, should collide
	}
	o := DefaultOptions()
	o.LabelCount = 10
	out := selectLabels(nodes, o, fonts.Load("", o.LabelMaxFontSizePt))
	if len(out) != 1 {
		t.Fatalf("got %d labels, want 1 (the larger node wins)", len(out))
	}
	if out[0].node.Label != "alpha" {
		t.Fatalf("kept label %q, want %q", out[0].node.Label, "alpha")
	}
}

func TestSelectLabelsRespectsLabelCount(t *testing.T) {
	nodes := []renderNode{
		{X: 0, Y: 0, Size: 5, Label: "a"},
		{X: 1000, Y: 0, Size: 5, Label: "b"},
		{X: 2000, Y: 0, Size: 5, Label: "c"},
	}
	o := DefaultOptions()
	o.LabelCount = 2
	out := selectLabels(nodes, o, fonts.Load("", o.LabelMaxFontSizePt))
	if len(out) > 2 {
		t.Fatalf("got %d labels, want <= 2", len(out))
	}
}
