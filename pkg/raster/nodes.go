package raster

import (
	"math"
	"sort"

	"github.com/fogleman/gg"
)

// drawNodes renders every node as a filled (and optionally stroked) disc.
// Nodes are sorted largest-first then reversed, so the smallest nodes are
// painted first (background) and the largest land on top, ties broken by
// x (spec §4.4).
func drawNodes(ctx *gg.Context, nodes []renderNode, o Options) {
	order := make([]int, len(nodes))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		na, nb := nodes[order[a]], nodes[order[b]]
		if na.Size != nb.Size {
			return na.Size > nb.Size
		}
		return na.X < nb.X
	})
	// Reverse the descending-size order so the smallest nodes draw first.
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	strokeWidth := mmToPx(o.NodeStrokeWidthMM, o.RenderingDPI)
	for _, idx := range order {
		n := nodes[idx]
		radius := math.Max(n.Size*o.NodeSizeScale, strokeWidth)

		if strokeWidth > 0 {
			ctx.SetRGBA255(0, 0, 0, 255)
			ctx.DrawCircle(n.X, n.Y, radius+strokeWidth)
			ctx.Fill()
		}

		ctx.SetRGBA255(int(n.Color.R), int(n.Color.G), int(n.Color.B), int(n.Color.A))
		ctx.DrawCircle(n.X, n.Y, radius)
		ctx.Fill()
	}
}
