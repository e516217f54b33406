package raster

import "image"

// Frame is an RGBA raster at rendering resolution, optionally resampled to
// a different output resolution by resampleToOutputDPI.
type Frame struct {
	Image *image.RGBA
	// WidthPx/HeightPx describe Image.Bounds(); kept alongside for
	// convenience when a caller only needs the dimensions.
	WidthPx, HeightPx int
}

// PixelMap is a rectangular array of scalars indexed by linear pixel
// coordinate y*width+x. It backs the distance field, Voronoi owner field,
// and heatmap height field.
type PixelMap struct {
	Width, Height int
	Values        []float64
}

// NewPixelMap allocates a zero-valued map of the given dimensions.
func NewPixelMap(width, height int) *PixelMap {
	return &PixelMap{Width: width, Height: height, Values: make([]float64, width*height)}
}

// At returns the value at (x,y), or 0 if out of bounds.
func (m *PixelMap) At(x, y int) float64 {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return 0
	}
	return m.Values[y*m.Width+x]
}

// Set writes the value at (x,y). Out-of-bounds writes are ignored.
func (m *PixelMap) Set(x, y int, v float64) {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return
	}
	m.Values[y*m.Width+x] = v
}
