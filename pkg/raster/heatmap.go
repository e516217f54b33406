package raster

import "math"

// heatmapField is the reduced-resolution additive density field produced
// by [buildHeatmap].
type heatmapField struct {
	values *PixelMap // normalized by node count, NOT by max
	hMax   float64
	ratio  float64
}

// buildHeatmap sums, for every pixel, 1/(1+(max(0,d-size*nodeSizeRatio)/spreadPx)^2)
// over every node, at a resolution capped by resolutionMax. The result is
// normalized by the node count (not the field's own maximum), with hMax
// recorded separately for callers (hillshading, hypsometric coloring) that
// need the peak.
func buildHeatmap(nodes []renderNode, widthPx, heightPx int, spreadMM, renderingDPI, resolutionMax, nodeSizeRatio float64) *heatmapField {
	ratio := reductionRatio(widthPx, heightPx, resolutionMax)
	fw, fh := int(float64(widthPx)*ratio), int(float64(heightPx)*ratio)
	if fw < 1 {
		fw = 1
	}
	if fh < 1 {
		fh = 1
	}
	spreadPx := spreadMM * ratio * renderingDPI * 0.0393701

	field := NewPixelMap(fw, fh)
	if spreadPx <= 0 || len(nodes) == 0 {
		return &heatmapField{values: field, ratio: ratio}
	}

	for _, n := range nodes {
		fx, fy := n.X*ratio, n.Y*ratio
		fsize := n.Size * ratio * nodeSizeRatio
		// A node's contribution decays to negligible well past ~6 spreads;
		// cap the scan radius there to keep this linear in node count.
		radius := fsize + 6*spreadPx
		x0, x1 := clampInt(int(fx-radius), 0, fw-1), clampInt(int(fx+radius), 0, fw-1)
		y0, y1 := clampInt(int(fy-radius), 0, fh-1), clampInt(int(fy+radius), 0, fh-1)

		for py := y0; py <= y1; py++ {
			for px := x0; px <= x1; px++ {
				d := math.Hypot(float64(px)-fx, float64(py)-fy)
				v := math.Max(0, d-fsize) / spreadPx
				contribution := 1 / (1 + v*v)
				idx := py*fw + px
				field.Values[idx] += contribution
			}
		}
	}

	hMax := 0.0
	n := float64(len(nodes))
	for i, v := range field.Values {
		normalized := v / n
		field.Values[i] = normalized
		if normalized > hMax {
			hMax = normalized
		}
	}

	return &heatmapField{values: field, hMax: hMax, ratio: ratio}
}
