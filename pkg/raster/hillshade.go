package raster

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// hillshadeLayer is the per-pixel reflectance (L) and alpha computed from
// a heatmap field, plus an optional hypsometric color keyed on h/hMax.
type hillshadeLayer struct {
	width, height int
	alpha         []float64
	color         []color.RGBA // only populated when hypsometric coloring is enabled
}

// buildHillshade computes dx/dy via central differences (border pixels
// reuse the center value), then slope/aspect/Lambertian reflectance L per
// spec §4.4's formulas, converting L to an alpha via gradient(L) = max(0,
// 0.2+0.8*min(1,1.4*L))^0.6. When hypsometric is true, each pixel also gets
// a color from a blue-to-warm gradient keyed on h/hMax via go-colorful's
// HCL interpolation.
func buildHillshade(h *heatmapField, strength, sunAzimuthDeg, sunElevationDeg float64, hypsometric bool) *hillshadeLayer {
	w, hgt := h.values.Width, h.values.Height
	layer := &hillshadeLayer{width: w, height: hgt, alpha: make([]float64, w*hgt)}
	if hypsometric {
		layer.color = make([]color.RGBA, w*hgt)
	}

	z := strength * math.Sqrt(float64(w*hgt))
	azimuth := sunAzimuthDeg * math.Pi / 180
	elevation := sunElevationDeg * math.Pi / 180

	at := func(x, y int) float64 { return h.values.At(clampInt(x, 0, w-1), clampInt(y, 0, hgt-1)) }

	for y := 0; y < hgt; y++ {
		for x := 0; x < w; x++ {
			dx := at(x-1, y) - at(x+1, y)
			dy := at(x, y-1) - at(x, y+1)

			slope := math.Atan(z * math.Hypot(dx, dy))
			aspect := math.Atan2(-dy, -dx)
			l := math.Cos(math.Pi-aspect-azimuth)*math.Sin(slope)*math.Sin(math.Pi/2-elevation) +
				math.Cos(slope)*math.Cos(math.Pi/2-elevation)

			alpha := math.Pow(math.Max(0, 0.2+0.8*math.Min(1, 1.4*l)), 0.6)
			idx := y*w + x
			layer.alpha[idx] = alpha

			if hypsometric {
				layer.color[idx] = hypsometricColor(at(x, y), h.hMax)
			}
		}
	}
	return layer
}

// hypsometricColor maps a normalized height into a low-to-high gradient
// using perceptually-uniform HCL interpolation between a cool low color
// and a warm high color.
func hypsometricColor(h, hMax float64) color.RGBA {
	if hMax <= 0 {
		return color.RGBA{R: 0, G: 0, B: 0, A: 0}
	}
	t := h / hMax
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	low := colorful.Hcl(230, 0.4, 0.25)
	high := colorful.Hcl(40, 0.7, 0.75)
	blended := low.BlendHcl(high, t)
	r, g, b, _ := blended.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 0xff}
}
