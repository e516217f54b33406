package raster

import "math"

// voronoiField holds the reduced-resolution owner/distance pixel maps
// produced by [buildVoronoi], plus the scale factor mapping a render-space
// pixel coordinate down to the field's resolution.
type voronoiField struct {
	owner    *PixelMap // vid per pixel; 0 = no owner
	distance *PixelMap // modified distance d' in [0,255], u8 range stored as float64
	ratio    float64   // field pixels per render pixel (<=1)
}

// buildVoronoi paints a disc of radius node.Size+rangePx around every node
// at a resolution capped by resolutionMax, assigning each node a vid in
// iteration order starting at 1. A pixel's distance is 0 inside the node's
// own radius, else (d-size)/rangePx normalized into (0,1] and quantized to
// the 0..255 u8 range. Ties are broken by first writer (the first node
// visited that reaches a pixel keeps it).
func buildVoronoi(nodes []renderNode, widthPx, heightPx int, rangePx, resolutionMax float64) *voronoiField {
	ratio := reductionRatio(widthPx, heightPx, resolutionMax)
	fw, fh := int(float64(widthPx)*ratio), int(float64(heightPx)*ratio)
	if fw < 1 {
		fw = 1
	}
	if fh < 1 {
		fh = 1
	}

	owner := NewPixelMap(fw, fh)
	dist := NewPixelMap(fw, fh)
	claimed := make([]bool, fw*fh)
	best := make([]float64, fw*fh)
	for i := range best {
		best[i] = math.Inf(1)
	}

	for i, n := range nodes {
		vid := i + 1
		fx, fy := n.X*ratio, n.Y*ratio
		fsize := n.Size * ratio
		frange := rangePx * ratio
		radius := fsize + frange
		if radius <= 0 {
			continue
		}

		x0, x1 := clampInt(int(fx-radius), 0, fw-1), clampInt(int(fx+radius), 0, fw-1)
		y0, y1 := clampInt(int(fy-radius), 0, fh-1), clampInt(int(fy+radius), 0, fh-1)

		for py := y0; py <= y1; py++ {
			for px := x0; px <= x1; px++ {
				d := math.Hypot(float64(px)-fx, float64(py)-fy)
				if d > radius {
					continue
				}
				idx := py*fw + px
				if claimed[idx] && best[idx] <= d {
					continue
				}
				claimed[idx] = true
				best[idx] = d

				var dPrime float64
				if d <= fsize || frange <= 0 {
					dPrime = 0
				} else {
					dPrime = math.Min(1, (d-fsize)/frange)
				}
				owner.Set(px, py, float64(vid))
				dist.Set(px, py, math.Round(dPrime*255))
			}
		}
	}

	return &voronoiField{owner: owner, distance: dist, ratio: ratio}
}

// reductionRatio returns the largest ratio in (0,1] such that
// (width*ratio)*(height*ratio) <= resolutionMax.
func reductionRatio(width, height int, resolutionMax float64) float64 {
	total := float64(width) * float64(height)
	if total <= resolutionMax || resolutionMax <= 0 {
		return 1
	}
	return math.Sqrt(resolutionMax / total)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ownerAt samples the owner field at a render-space pixel coordinate using
// nearest-neighbor, per spec's "Voronoi owner uses nearest-neighbor".
func (f *voronoiField) ownerAt(x, y float64) int {
	fx, fy := int(x*f.ratio), int(y*f.ratio)
	return int(f.owner.At(fx, fy))
}

// distanceAt samples the modified-distance field at a render-space pixel
// coordinate using nearest-neighbor.
func (f *voronoiField) distanceAt(x, y float64) float64 {
	fx, fy := int(x*f.ratio), int(y*f.ratio)
	return f.distance.At(fx, fy)
}
