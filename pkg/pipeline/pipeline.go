// Package pipeline provides the slice → layout → raster pipeline that CLI
// and API entry points share.
//
// By centralizing this logic, every entry point gets the same caching,
// logging, and per-snapshot failure handling instead of duplicating it.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Slice: parse a GEXF document and project it into an ordered sequence
//     of snapshots over sliding time windows.
//  2. Layout: compute ForceAtlas2 positions for every snapshot, carrying
//     each one's positions forward to seed the next.
//  3. Raster: rasterize every laid-out snapshot into a PNG frame.
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, nil, logger)
//	opts := pipeline.Options{InputPath: "commits.gexf", Range: 7 * dayMs}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for i, frame := range result.Frames {
//	    os.WriteFile(fmt.Sprintf("frame-%03d.png", i), frame, 0644)
//	}
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/fieldtrace/dynagraph/pkg/cache"
	"github.com/fieldtrace/dynagraph/pkg/layout"
	"github.com/fieldtrace/dynagraph/pkg/raster"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultWidthMM / DefaultHeightMM are the default frame dimensions.
	DefaultWidthMM  = 280.0
	DefaultHeightMM = 280.0

	// DefaultRenderingDPI / DefaultOutputDPI set the raster resolution and
	// the final resample target.
	DefaultRenderingDPI = 150.0
	DefaultOutputDPI    = 150.0

	// DefaultRandomSeed seeds the first snapshot's position layout.
	DefaultRandomSeed = int64(42)
)

// FormatPNG is presently the only supported output format — spec's
// Non-goals delegate image encoding to a codec, and the only codec this
// pipeline wires (image/png via pkg/raster) produces PNG.
const FormatPNG = "png"

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{FormatPNG: true}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
type Options struct {
	// Slice options
	InputPath string  `json:"input_path"`
	Range     float64 `json:"range,omitempty"`
	Step      float64 `json:"step,omitempty"`
	Refresh   bool    `json:"refresh,omitempty"`

	// Layout options. LinLog/StrongGravity/BarnesHut/OverlapRemoval are
	// *bool rather than bool so that "unset" (nil, fall back to
	// pkg/layout's own default) is distinguishable from an explicit false.
	Gravity          float64 `json:"gravity,omitempty"`
	LinLog           *bool   `json:"lin_log,omitempty"`
	StrongGravity    *bool   `json:"strong_gravity,omitempty"`
	BarnesHut        *bool   `json:"barnes_hut,omitempty"`
	OverlapRemoval   *bool   `json:"overlap_removal,omitempty"`
	IterationsFactor float64 `json:"iterations_factor,omitempty"`
	RandomSeed       int64   `json:"random_seed,omitempty"`

	// Raster options
	WidthMM             float64 `json:"width_mm,omitempty"`
	HeightMM            float64 `json:"height_mm,omitempty"`
	RenderingDPI        float64 `json:"rendering_dpi,omitempty"`
	OutputDPI           float64 `json:"output_dpi,omitempty"`
	FontPath            string  `json:"font_path,omitempty"`
	LabelCount          int     `json:"label_count,omitempty"`
	HillshadeEnabled    *bool   `json:"hillshade_enabled,omitempty"`
	Format              string  `json:"format,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID identifies this execution (see pkg/session.Run).
	RunID string

	// SnapshotCount is the number of time-windowed snapshots produced by
	// the slice stage.
	SnapshotCount int

	// Frames holds one PNG per snapshot, in order. A nil entry marks a
	// snapshot whose raster stage failed and was skipped ("log and
	// continue" — see Err).
	Frames [][]byte

	// Err aggregates every recoverable per-snapshot failure from the
	// layout and raster stages (see [errors.Collector]). A fatal slice-
	// stage failure is returned directly from Execute instead, never
	// folded in here.
	Err error

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	SnapshotCount int
	FramesWritten int
	FramesFailed  int
	SliceTime     time.Duration
	LayoutTime    time.Duration
	RasterTime    time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	SliceHit    bool // Whether the sliced snapshot sequence came from cache
	LayoutHit   bool // Whether laid-out positions came from cache
	FrameHits   int  // Rendered frames served from cache
	FrameMisses int  // Rendered frames computed fresh
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: png)", format)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. Idempotent — calling it multiple times has the same effect
// as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForSlice(); err != nil {
		return err
	}
	o.SetLayoutDefaults()
	o.SetRasterDefaults()
	o.validated = true
	return nil
}

// ValidateForSlice checks required fields for slicing.
func (o *Options) ValidateForSlice() error {
	if o.InputPath == "" {
		return fmt.Errorf("input_path is required")
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.RandomSeed == 0 {
		o.RandomSeed = DefaultRandomSeed
	}
	if o.IterationsFactor == 0 {
		o.IterationsFactor = 1
	}
	d := layout.DefaultOptions()
	if o.StrongGravity == nil {
		o.StrongGravity = &d.StrongGravity
	}
	if o.LinLog == nil {
		o.LinLog = &d.LinLog
	}
	if o.BarnesHut == nil {
		o.BarnesHut = &d.BarnesHut
	}
	if o.OverlapRemoval == nil {
		o.OverlapRemoval = &d.OverlapRemoval
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	return nil
}

// SetRasterDefaults sets default values for rendering.
func (o *Options) SetRasterDefaults() {
	if o.WidthMM == 0 {
		o.WidthMM = DefaultWidthMM
	}
	if o.HeightMM == 0 {
		o.HeightMM = DefaultHeightMM
	}
	if o.RenderingDPI == 0 {
		o.RenderingDPI = DefaultRenderingDPI
	}
	if o.OutputDPI == 0 {
		o.OutputDPI = DefaultOutputDPI
	}
	if o.Format == "" {
		o.Format = FormatPNG
	}
	if o.HillshadeEnabled == nil {
		d := raster.DefaultOptions().HillshadeEnabled
		o.HillshadeEnabled = &d
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRaster validates and sets defaults for rendering.
func (o *Options) ValidateForRaster() error {
	o.SetLayoutDefaults()
	o.SetRasterDefaults()
	return ValidateFormat(o.Format)
}

// LayoutOptions builds the [layout.Option] list corresponding to these
// pipeline options. Call [Options.SetLayoutDefaults] first so the *bool
// flags are non-nil.
func (o *Options) LayoutOptions() []layout.Option {
	o.SetLayoutDefaults()
	var opts []layout.Option
	opts = append(opts, layout.WithRandomSeed(o.RandomSeed))
	opts = append(opts, layout.WithIterationsFactor(o.IterationsFactor))
	opts = append(opts, layout.WithGravity(orDefault(o.Gravity, layout.DefaultOptions().Gravity)))
	opts = append(opts, layout.WithStrongGravity(*o.StrongGravity))
	opts = append(opts, layout.WithLinLog(*o.LinLog))
	opts = append(opts, layout.WithBarnesHut(*o.BarnesHut))
	opts = append(opts, layout.WithOverlapRemoval(*o.OverlapRemoval))
	return opts
}

// RasterOptions builds the [raster.Option] list corresponding to these
// pipeline options. Call [Options.SetRasterDefaults] first so
// HillshadeEnabled is non-nil.
func (o *Options) RasterOptions() []raster.Option {
	o.SetRasterDefaults()
	var opts []raster.Option
	opts = append(opts, raster.WithDimensions(o.WidthMM, o.HeightMM))
	opts = append(opts, raster.WithDPI(o.RenderingDPI, o.OutputDPI))
	if o.FontPath != "" {
		opts = append(opts, raster.WithFontPath(o.FontPath))
	}
	opts = append(opts, raster.WithHillshade(*o.HillshadeEnabled))
	if o.LabelCount > 0 {
		opts = append(opts, raster.WithLabelCount(o.LabelCount))
	}
	return opts
}

// SliceKeyOpts returns cache key options for the slice stage.
func (o *Options) SliceKeyOpts() cache.SliceKeyOpts {
	return cache.SliceKeyOpts{RangeSeconds: o.Range, StepSeconds: o.Step}
}

// LayoutKeyOpts returns cache key options for the layout stage. seed
// identifies the layout parameters that affect every snapshot's positions
// deterministically (the random seed and force settings); it does not vary
// per snapshot, since pkg/layout.Run lays out the whole sequence in one
// pass, carrying positions from each snapshot to the next.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	o.SetLayoutDefaults()
	return cache.LayoutKeyOpts{
		Width:  int(o.WidthMM),
		Height: int(o.HeightMM),
		Seed:   fmt.Sprintf("%d:%v:%v:%v:%v", o.RandomSeed, o.Gravity, *o.LinLog, *o.StrongGravity, *o.BarnesHut),
	}
}

// FrameKeyOpts returns cache key options for one rendered frame.
func (o *Options) FrameKeyOpts() cache.FrameKeyOpts {
	return cache.FrameKeyOpts{
		Width:  int(o.WidthMM),
		Height: int(o.HeightMM),
		DPI:    o.OutputDPI,
		Theme:  o.Format,
	}
}

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}
