// Package config loads the Settings that seed a [pipeline.Options] value:
// rendering/layout defaults such as FA2 gravity, overlap-removal margins,
// DPI, Voronoi/heatmap resolution caps, hillshading sun position, and
// label thresholds.
//
// Three tiers of precedence apply, highest first: explicit CLI flags,
// a TOML config file, and the package defaults baked into
// [pipeline.Options]'s own SetLayoutDefaults/SetRasterDefaults. Settings
// only carries the fields a file or flag might plausibly override; a zero
// value for any field means "don't override, let the next tier decide."
package config

import (
	"github.com/BurntSushi/toml"

	"github.com/fieldtrace/dynagraph/pkg/errors"
	"github.com/fieldtrace/dynagraph/pkg/pipeline"
)

// Settings mirrors the subset of [pipeline.Options] a config file or CLI
// flag is expected to override. Field names and TOML keys follow
// pipeline.Options's JSON tags so a file can be written by hand without
// translating between two vocabularies.
type Settings struct {
	Gravity          *float64 `toml:"gravity"`
	LinLog           *bool    `toml:"lin_log"`
	StrongGravity    *bool    `toml:"strong_gravity"`
	BarnesHut        *bool    `toml:"barnes_hut"`
	OverlapRemoval   *bool    `toml:"overlap_removal"`
	IterationsFactor *float64 `toml:"iterations_factor"`
	RandomSeed       *int64   `toml:"random_seed"`

	WidthMM          *float64 `toml:"width_mm"`
	HeightMM         *float64 `toml:"height_mm"`
	RenderingDPI     *float64 `toml:"rendering_dpi"`
	OutputDPI        *float64 `toml:"output_dpi"`
	FontPath         *string  `toml:"font_path"`
	LabelCount       *int     `toml:"label_count"`
	HillshadeEnabled *bool    `toml:"hillshade_enabled"`
}

// Load parses a TOML config file into a Settings value. A missing or
// empty path is not an error — it yields the zero Settings, under which
// every field of pipeline.Options is left to the next tier.
func Load(path string) (Settings, error) {
	var s Settings
	if path == "" {
		return s, nil
	}
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return Settings{}, errors.Wrap(errors.InputIO, err, "load config %s", path)
	}
	return s, nil
}

// Option overrides one field of Settings, the CLI-flag tier of
// precedence. Only a flag the user actually set should produce an
// Option — an unset flag must never override a value the TOML tier
// already supplied.
type Option func(*Settings)

// WithGravity overrides the FA2 gravity strength.
func WithGravity(g float64) Option { return func(s *Settings) { s.Gravity = &g } }

// WithRandomSeed overrides the layout PRNG seed.
func WithRandomSeed(seed int64) Option { return func(s *Settings) { s.RandomSeed = &seed } }

// WithDimensions overrides the frame's physical dimensions.
func WithDimensions(widthMM, heightMM float64) Option {
	return func(s *Settings) { s.WidthMM = &widthMM; s.HeightMM = &heightMM }
}

// WithRenderingDPI overrides the DPI the raster stage draws at before
// resampling to OutputDPI.
func WithRenderingDPI(dpi float64) Option { return func(s *Settings) { s.RenderingDPI = &dpi } }

// WithOutputDPI overrides the DPI frames are resampled to before encoding.
func WithOutputDPI(dpi float64) Option { return func(s *Settings) { s.OutputDPI = &dpi } }

// WithFontPath overrides the TTF path used for node labels.
func WithFontPath(path string) Option { return func(s *Settings) { s.FontPath = &path } }

// WithLabelCount overrides how many node labels are placed per frame.
func WithLabelCount(n int) Option { return func(s *Settings) { s.LabelCount = &n } }

// WithHillshade overrides whether the hillshade background layer is drawn.
func WithHillshade(enabled bool) Option { return func(s *Settings) { s.HillshadeEnabled = &enabled } }

// Apply merges opts onto s in order, each one overriding whatever field it
// touches. Use this to layer CLI-flag overrides onto a file-loaded
// Settings before calling [Settings.ApplyTo].
func (s Settings) Apply(opts ...Option) Settings {
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// ApplyTo copies every non-nil field of s onto opts, overriding whatever
// pipeline.Options already held there. Call this after populating opts
// from CLI flags/input path and before opts.ValidateAndSetDefaults, so
// the package defaults remain the lowest-precedence tier.
func (s Settings) ApplyTo(opts *pipeline.Options) {
	if s.Gravity != nil {
		opts.Gravity = *s.Gravity
	}
	if s.LinLog != nil {
		opts.LinLog = s.LinLog
	}
	if s.StrongGravity != nil {
		opts.StrongGravity = s.StrongGravity
	}
	if s.BarnesHut != nil {
		opts.BarnesHut = s.BarnesHut
	}
	if s.OverlapRemoval != nil {
		opts.OverlapRemoval = s.OverlapRemoval
	}
	if s.IterationsFactor != nil {
		opts.IterationsFactor = *s.IterationsFactor
	}
	if s.RandomSeed != nil {
		opts.RandomSeed = *s.RandomSeed
	}
	if s.WidthMM != nil {
		opts.WidthMM = *s.WidthMM
	}
	if s.HeightMM != nil {
		opts.HeightMM = *s.HeightMM
	}
	if s.RenderingDPI != nil {
		opts.RenderingDPI = *s.RenderingDPI
	}
	if s.OutputDPI != nil {
		opts.OutputDPI = *s.OutputDPI
	}
	if s.FontPath != nil {
		opts.FontPath = *s.FontPath
	}
	if s.LabelCount != nil {
		opts.LabelCount = *s.LabelCount
	}
	if s.HillshadeEnabled != nil {
		opts.HillshadeEnabled = s.HillshadeEnabled
	}
}
