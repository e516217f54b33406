package raster

import "image/color"

// FitMode chooses how the drawable rectangle is fit around every node.
type FitMode int

const (
	// FitBoundingBox scales x and y independently, then takes the smaller
	// of the two scales.
	FitBoundingBox FitMode = iota
	// FitInscribedCircle derives a single scale from the maximum radius
	// (distance from center plus node size) across all nodes.
	FitInscribedCircle
)

// Margin is a rectangle's four edge margins, in millimetres.
type Margin struct {
	L, T, R, B float64
}

// Options configures one Render call. Use [DefaultOptions] and override
// individual fields.
type Options struct {
	WidthMM, HeightMM float64
	RenderingDPI      float64
	OutputDPI         float64
	Margin            Margin

	BackgroundColor color.RGBA

	UseBarycenterRatio float64
	FitMode            FitMode
	FlipX, FlipY       bool
	RotateDegrees      float64

	VoronoiRangePx        float64
	VoronoiResolutionMax  float64
	HeatmapSpreadMM       float64
	HeatmapResolutionMax  float64
	HillshadeEnabled      bool
	SunAzimuthDegrees     float64
	SunElevationDegrees   float64
	HillshadeStrength     float64
	HypsometricGradient   bool

	EdgeCurved     bool
	EdgeHighQuality bool

	LabelCount                        int
	LabelCollisionPixmapMaxResolution float64
	LabelMinFontSizePt                float64
	LabelMaxFontSizePt                float64
	FontPath                          string

	NodeStrokeWidthMM float64
	NodeSizeScale     float64
}

// DefaultOptions returns the spec's documented defaults for a
// letter-ish-sized, 150 DPI render with hillshading enabled and the
// hypsometric gradient and curved edges disabled.
func DefaultOptions() Options {
	return Options{
		WidthMM:      280,
		HeightMM:     280,
		RenderingDPI: 150,
		OutputDPI:    150,
		Margin:       Margin{L: 5, T: 5, R: 5, B: 5},

		BackgroundColor: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},

		UseBarycenterRatio: 0.2,
		FitMode:            FitBoundingBox,

		VoronoiRangePx:       40,
		VoronoiResolutionMax: 1e8,
		HeatmapSpreadMM:      8,
		HeatmapResolutionMax: 1e5,
		HillshadeEnabled:     true,
		SunAzimuthDegrees:    315,
		SunElevationDegrees:  45,
		HillshadeStrength:    1,
		HypsometricGradient:  false,

		EdgeCurved:      false,
		EdgeHighQuality: true,

		LabelCount:                        40,
		LabelCollisionPixmapMaxResolution: 1e7,
		LabelMinFontSizePt:                6,
		LabelMaxFontSizePt:                18,

		NodeStrokeWidthMM: 0.3,
		NodeSizeScale:     1,
	}
}

// Option mutates an Options value.
type Option func(*Options)

func apply(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// WithDimensions overrides the canvas size in millimetres.
func WithDimensions(widthMM, heightMM float64) Option {
	return func(o *Options) { o.WidthMM, o.HeightMM = widthMM, heightMM }
}

// WithDPI overrides the internal rendering DPI and the final output DPI.
// When they differ, the frame is rendered at renderingDPI and resampled.
func WithDPI(renderingDPI, outputDPI float64) Option {
	return func(o *Options) { o.RenderingDPI, o.OutputDPI = renderingDPI, outputDPI }
}

// WithFontPath overrides the TTF file used for labels. Empty keeps the
// basicfont fallback face.
func WithFontPath(path string) Option {
	return func(o *Options) { o.FontPath = path }
}

// WithHillshade enables or disables the hillshade layer.
func WithHillshade(enabled bool) Option {
	return func(o *Options) { o.HillshadeEnabled = enabled }
}

// WithLabelCount overrides the maximum number of labels drawn.
func WithLabelCount(n int) Option {
	return func(o *Options) { o.LabelCount = n }
}

// mmToPx converts a millimetre length to pixels at the given DPI.
func mmToPx(mm, dpi float64) float64 {
	return mm * dpi * 0.0393701
}

// ptToPx converts a point length to pixels at the given DPI.
func ptToPx(pt, dpi float64) float64 {
	return pt * dpi / 72
}
