package raster

import (
	"math"
	"math/rand"

	"github.com/fogleman/gg"
)

// smoothingTaps are the 5-tap weights used to smooth per-point edge
// opacity along a polyline (spec §4.4).
var smoothingTaps = [5]float64{0.15, 0.25, 0.2, 0.25, 0.15}

const curveAlpha = math.Pi / 12 // curvature angle α for the curved edge variant

// drawEdges renders every edge as a jittered polyline onto ctx, sampling
// the Voronoi field along the way to attenuate segments that cross
// unrelated nodes' territory.
func drawEdges(ctx *gg.Context, edges []renderEdge, nodes []renderNode, field *voronoiField, o Options, rng *rand.Rand) {
	segmentLenPx := mmToPx(2, o.RenderingDPI)
	if o.EdgeHighQuality {
		segmentLenPx = mmToPx(0.2, o.RenderingDPI)
	}

	for _, e := range edges {
		src, dst := nodes[e.SourceIdx], nodes[e.TargetIdx]
		points := buildPolyline(src, dst, o.EdgeCurved, segmentLenPx)
		opacities := sampleOpacities(points, field, e.SourceIdx+1, e.TargetIdx+1)
		opacities = smoothOpacities(opacities)

		for i := 0; i < len(points)-1; i++ {
			op := (opacities[i] + opacities[i+1]) / 2 * e.Opacity
			if op <= 0 {
				continue
			}
			jitterX := (rng.Float64() - 0.5) * 0.5
			jitterY := (rng.Float64() - 0.5) * 0.5
			ctx.SetRGBA(0, 0, 0, op)
			ctx.SetLineWidth(0.5 + rng.Float64()*0.3)
			ctx.DrawLine(points[i].x+jitterX, points[i].y+jitterY, points[i+1].x+jitterX, points[i+1].y+jitterY)
			ctx.Stroke()
		}
	}
}

type point struct{ x, y float64 }

// buildPolyline samples a straight or curved path from src to dst into
// points spaced roughly segmentLenPx apart. The curved variant bows the
// path laterally using H = d/(2·tan α) per spec's formula.
func buildPolyline(src, dst renderNode, curved bool, segmentLenPx float64) []point {
	d := math.Hypot(dst.X-src.X, dst.Y-src.Y)
	if d == 0 {
		return []point{{src.X, src.Y}, {dst.X, dst.Y}}
	}
	n := int(d / math.Max(segmentLenPx, 0.01))
	if n < 1 {
		n = 1
	}

	ux, uy := (dst.X-src.X)/d, (dst.Y-src.Y)/d
	nx, ny := -uy, ux // unit normal

	var h float64
	if curved {
		h = d / (2 * math.Tan(curveAlpha))
	}

	points := make([]point, 0, n+1)
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		px := src.X + (dst.X-src.X)*t
		py := src.Y + (dst.Y-src.Y)*t
		if curved && h != 0 {
			offset := h * (math.Sqrt(1-(1-t)*t*(d/h)*(d/h)) - 1)
			px += nx * offset
			py += ny * offset
		}
		points = append(points, point{px, py})
	}
	return points
}

// sampleOpacities computes the raw per-point opacity: 1 when the Voronoi
// owner at that point is one of the edge's own endpoints, otherwise a
// cosine falloff of the normalized distance.
func sampleOpacities(points []point, field *voronoiField, srcVID, dstVID int) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		owner := field.ownerAt(p.x, p.y)
		if owner == srcVID || owner == dstVID {
			out[i] = 1
			continue
		}
		dPrime := field.distanceAt(p.x, p.y) / 255
		out[i] = 0.5 + 0.5*math.Cos(math.Pi-dPrime*dPrime*math.Pi)
	}
	return out
}

// smoothOpacities applies the 5-tap weighted filter along the sequence,
// clamping the window at the ends (reusing the nearest in-bounds sample).
func smoothOpacities(in []float64) []float64 {
	out := make([]float64, len(in))
	for i := range in {
		var sum, weight float64
		for k := -2; k <= 2; k++ {
			j := clampInt(i+k, 0, len(in)-1)
			w := smoothingTaps[k+2]
			sum += in[j] * w
			weight += w
		}
		out[i] = sum / weight
	}
	return out
}
