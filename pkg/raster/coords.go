package raster

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/fieldtrace/dynagraph/pkg/graph"
)

// renderNode is a rescaled, defaulted, read-only copy of a [graph.Node]
// used for drawing. Rescaling never writes back to the source graph.
type renderNode struct {
	ID     string
	Label  string
	X, Y   float64
	Size   float64
	Color  color.RGBA
	VID    int
}

// renderEdge mirrors [graph.Edge] with its endpoints resolved to indices
// into the renderNode slice.
type renderEdge struct {
	SourceIdx, TargetIdx int
	Directed             bool
	Opacity              float64
}

// buildRenderNodes applies the missing-value defaults (spec §4.4
// "Defaulting"): a missing position is a random point inside a disc of
// radius 5·sqrt(order); missing size defaults to 1; missing color to
// neutral gray; missing label to empty.
func buildRenderNodes(nodes []*graph.Node, rng *rand.Rand) []renderNode {
	order := len(nodes)
	discRadius := 5 * math.Sqrt(float64(order))

	out := make([]renderNode, len(nodes))
	for i, n := range nodes {
		rn := renderNode{ID: n.ID, Label: n.Label, X: n.X, Y: n.Y, Size: n.Size}
		if rn.X == 0 && rn.Y == 0 {
			// Indistinguishable from "legitimately placed at the origin",
			// but pkg/layout only leaves a node at the exact origin when it
			// never ran FA2 over it — in practice this path only fires for
			// snapshots rendered without going through pkg/layout first.
			angle := rng.Float64() * 2 * math.Pi
			r := rng.Float64() * discRadius
			rn.X, rn.Y = r*math.Cos(angle), r*math.Sin(angle)
		}
		if rn.Size == 0 {
			rn.Size = 1
		}
		if n.Color != nil {
			rn.Color = color.RGBA{R: n.Color.R, G: n.Color.G, B: n.Color.B, A: 0xff}
		} else {
			rn.Color = color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}
		}
		out[i] = rn
	}
	return out
}

// rescaleParams holds the affine transform computed by [computeRescale]:
// render-space coordinate = (x - cx, y - cy)*scale + (drawCX, drawCY).
type rescaleParams struct {
	cx, cy         float64
	scale          float64
	drawCX, drawCY float64
}

// computeRescale derives the pan/scale that fits every node (with its
// size) inside the drawable rectangle (canvas minus margins), centered on
// a blend of the size-weighted barycenter and the geometric bounding-box
// center.
func computeRescale(nodes []renderNode, o Options) rescaleParams {
	drawW := mmToPx(o.WidthMM-o.Margin.L-o.Margin.R, o.RenderingDPI)
	drawH := mmToPx(o.HeightMM-o.Margin.T-o.Margin.B, o.RenderingDPI)
	marginL := mmToPx(o.Margin.L, o.RenderingDPI)
	marginT := mmToPx(o.Margin.T, o.RenderingDPI)

	if len(nodes) == 0 {
		return rescaleParams{scale: 1, drawCX: marginL + drawW/2, drawCY: marginT + drawH/2}
	}

	var sumX, sumY, sumW float64
	minX, minY := nodes[0].X, nodes[0].Y
	maxX, maxY := nodes[0].X, nodes[0].Y
	maxRadius := 0.0
	for _, n := range nodes {
		sumX += n.X * n.Size
		sumY += n.Y * n.Size
		sumW += n.Size
		minX, maxX = math.Min(minX, n.X-n.Size), math.Max(maxX, n.X+n.Size)
		minY, maxY = math.Min(minY, n.Y-n.Size), math.Max(maxY, n.Y+n.Size)
	}
	if sumW == 0 {
		sumW = 1
	}
	baryX, baryY := sumX/sumW, sumY/sumW
	geoX, geoY := (minX+maxX)/2, (minY+maxY)/2

	ratio := o.UseBarycenterRatio
	cx := ratio*baryX + (1-ratio)*geoX
	cy := ratio*baryY + (1-ratio)*geoY

	for _, n := range nodes {
		maxRadius = math.Max(maxRadius, math.Hypot(n.X-cx, n.Y-cy)+n.Size)
	}

	var scale float64
	switch o.FitMode {
	case FitInscribedCircle:
		if maxRadius == 0 {
			scale = 1
		} else {
			scale = math.Min(drawW, drawH) / 2 / maxRadius
		}
	default: // FitBoundingBox
		halfW, halfH := (maxX-minX)/2, (maxY-minY)/2
		sx, sy := 1.0, 1.0
		if halfW > 0 {
			sx = drawW / 2 / halfW
		}
		if halfH > 0 {
			sy = drawH / 2 / halfH
		}
		scale = math.Min(sx, sy)
	}
	if scale <= 0 {
		scale = 1
	}

	return rescaleParams{cx: cx, cy: cy, scale: scale, drawCX: marginL + drawW/2, drawCY: marginT + drawH/2}
}

// apply maps a layout-space point/size into render space, honoring the
// configured flips and rotation (applied about the origin before
// translation, per spec's pre-render rescale ordering).
func (p rescaleParams) apply(x, y float64, o Options) (rx, ry float64) {
	x -= p.cx
	y -= p.cy
	if o.FlipX {
		x = -x
	}
	if o.FlipY {
		y = -y
	}
	if o.RotateDegrees != 0 {
		theta := o.RotateDegrees * math.Pi / 180
		sin, cos := math.Sin(theta), math.Cos(theta)
		x, y = x*cos-y*sin, x*sin+y*cos
	}
	return p.drawCX + x*p.scale, p.drawCY + y*p.scale
}

func (p rescaleParams) applySize(size float64) float64 {
	return size * p.scale
}
