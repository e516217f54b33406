package raster

import (
	"image/color"
	"sort"

	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
	"golang.org/x/image/font"
)

// weightTable maps a target pen thickness in millimetres to the nearest
// standard font weight (spec §4.4).
var weightTable = []struct {
	weight    int
	thickness float64
}{
	{100, 2}, {200, 3.5}, {300, 5}, {400, 7}, {500, 9.5},
	{600, 12}, {700, 15}, {800, 18}, {900, 21},
}

// fontSizeForNode linearly interpolates a point size between
// LabelMinFontSizePt/LabelMaxFontSizePt based on n.Size relative to the
// largest node in the snapshot, then quantizes the implied pen thickness
// to the nearest standard weight and re-derives the size from that
// weight's tabulated thickness.
func fontSizeForNode(n renderNode, maxSize float64, o Options) (sizePt float64, weight int) {
	t := 0.0
	if maxSize > 0 {
		t = n.Size / maxSize
	}
	sizePt = o.LabelMinFontSizePt + t*(o.LabelMaxFontSizePt-o.LabelMinFontSizePt)

	targetThicknessMM := sizePt * 0.09 // empirical pen-thickness-to-point-size ratio
	best := weightTable[0]
	bestDelta := absF(best.thickness - targetThicknessMM)
	for _, w := range weightTable[1:] {
		if d := absF(w.thickness - targetThicknessMM); d < bestDelta {
			best, bestDelta = w, d
		}
	}
	return best.thickness / 0.09, best.weight
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// labelColor derives a label's fill color from its node's color,
// constraining chroma to [0,70] and lightness to [2,50] in the HCL sense.
func labelColor(c color.RGBA) color.RGBA {
	base, ok := colorful.MakeColor(c)
	if !ok {
		base = colorful.Color{R: 0, G: 0, B: 0}
	}
	h, ch, l := base.Hcl()
	ch = clampF(ch, 0, 0.70)
	l = clampF(l, 0.02, 0.50)
	constrained := colorful.Hcl(h, ch, l)
	r, g, b, _ := constrained.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 0xff}
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// capsule is a label's collision footprint: a horizontal measure (the
// text width plus margin) and, when includeNodeCircle is true, a leading
// circle for the node marker itself.
type capsule struct {
	cx, cy                float64
	halfWidth, halfHeight float64
	circleRadius          float64
}

func (c capsule) intersectsSet(bitmap []bool, bw, bh int, toPx func(x, y float64) (int, int)) bool {
	x0, y0 := toPx(c.cx-c.halfWidth-c.circleRadius, c.cy-c.halfHeight)
	x1, y1 := toPx(c.cx+c.halfWidth+c.circleRadius, c.cy+c.halfHeight)
	for y := clampInt(y0, 0, bh-1); y <= clampInt(y1, 0, bh-1); y++ {
		for x := clampInt(x0, 0, bw-1); x <= clampInt(x1, 0, bw-1); x++ {
			if bitmap[y*bw+x] {
				return true
			}
		}
	}
	return false
}

func (c capsule) stamp(bitmap []bool, bw, bh int, toPx func(x, y float64) (int, int)) {
	x0, y0 := toPx(c.cx-c.halfWidth-c.circleRadius, c.cy-c.halfHeight)
	x1, y1 := toPx(c.cx+c.halfWidth+c.circleRadius, c.cy+c.halfHeight)
	for y := clampInt(y0, 0, bh-1); y <= clampInt(y1, 0, bh-1); y++ {
		for x := clampInt(x0, 0, bw-1); x <= clampInt(x1, 0, bw-1); x++ {
			bitmap[y*bw+x] = true
		}
	}
}

// selectedLabel is one label that survived collision selection and is
// ready to draw.
type selectedLabel struct {
	node     renderNode
	sizePt   int
	fontSize float64
	color    color.RGBA
}

// selectLabels greedily keeps labels in decreasing node-size order,
// testing each candidate's capsule against a reduced-resolution collision
// bitmap and stopping once o.LabelCount have been kept.
func selectLabels(nodes []renderNode, o Options, face font.Face) []selectedLabel {
	order := make([]int, 0, len(nodes))
	maxSize := 0.0
	for i, n := range nodes {
		if n.Label == "" {
			continue
		}
		order = append(order, i)
		if n.Size > maxSize {
			maxSize = n.Size
		}
	}
	sort.SliceStable(order, func(a, b int) bool { return nodes[order[a]].Size > nodes[order[b]].Size })

	// Reduced-resolution bitmap keyed to the render canvas and capped at
	// LabelCollisionPixmapMaxResolution, the same reductionRatio scheme
	// buildVoronoi/buildHeatmap use for their own pixel maps. Nodes are
	// already in render-space pixel coordinates by the time selectLabels
	// runs, so the bitmap maps onto them by the same ratio, not by their
	// bounding box.
	widthPx := int(mmToPx(o.WidthMM, o.RenderingDPI))
	heightPx := int(mmToPx(o.HeightMM, o.RenderingDPI))
	ratio := reductionRatio(widthPx, heightPx, o.LabelCollisionPixmapMaxResolution)
	bw, bh := int(float64(widthPx)*ratio), int(float64(heightPx)*ratio)
	if bw < 1 {
		bw = 1
	}
	if bh < 1 {
		bh = 1
	}
	bitmap := make([]bool, bw*bh)
	toPx := func(x, y float64) (int, int) {
		return int(x * ratio), int(y * ratio)
	}

	var out []selectedLabel
	for _, idx := range order {
		if len(out) >= o.LabelCount {
			break
		}
		n := nodes[idx]
		sizePt, weight := fontSizeForNode(n, maxSize, o)
		width := runewidth.StringWidth(n.Label)
		halfWidth := float64(width) * sizePt * 0.3

		box := capsule{cx: n.X, cy: n.Y, halfWidth: halfWidth, halfHeight: sizePt * 0.6, circleRadius: n.Size}
		if box.intersectsSet(bitmap, bw, bh, toPx) {
			continue
		}
		box.stamp(bitmap, bw, bh, toPx)
		out = append(out, selectedLabel{node: n, sizePt: weight, fontSize: sizePt, color: labelColor(n.Color)})
	}
	return out
}

// drawLabels draws the stroke (border) then fill for every selected
// label, anchored at its node's center.
func drawLabels(ctx *gg.Context, labels []selectedLabel, face font.Face) {
	ctx.SetFontFace(face)
	for _, l := range labels {
		ctx.SetRGBA255(255, 255, 255, 255)
		for _, dx := range []float64{-1, 0, 1} {
			for _, dy := range []float64{-1, 0, 1} {
				if dx == 0 && dy == 0 {
					continue
				}
				ctx.DrawStringAnchored(l.node.Label, l.node.X+dx, l.node.Y+dy, 0.5, 0.5)
			}
		}
		ctx.SetRGBA255(int(l.color.R), int(l.color.G), int(l.color.B), 255)
		ctx.DrawStringAnchored(l.node.Label, l.node.X, l.node.Y, 0.5, 0.5)
	}
}
