package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fieldtrace/dynagraph/pkg/config"
	"github.com/fieldtrace/dynagraph/pkg/pipeline"
)

// renderCommand creates the render command, which runs the full
// slice -> layout -> raster pipeline over a GEXF file and writes one PNG
// per snapshot into the output directory.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output       string
		configPath   string
		rangeSeconds float64
		stepSeconds  float64
		widthMM      float64
		heightMM     float64
		renderingDPI float64
		outputDPI    float64
		fontPath     string
		labelCount   int
		gravity      float64
		randomSeed   int64
		hillshade    bool
		noHillshade  bool
		refresh      bool
		noCache      bool
		noStore      bool
	)

	cmd := &cobra.Command{
		Use:   "render <input.gexf>",
		Short: "Render a dynamic graph's snapshots to PNG frames",
		Long: `render parses a GEXF file with temporal attributes, cuts it into
sliding time-window snapshots, lays each one out with ForceAtlas2 seeded
from the previous snapshot's positions, and rasterizes every snapshot to
a PNG frame under the output directory.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			prog := newProgress(logger)

			settings, err := config.Load(configPath)
			if err != nil {
				return err
			}

			var flagOpts []config.Option
			fl := cmd.Flags()
			if fl.Changed("gravity") {
				flagOpts = append(flagOpts, config.WithGravity(gravity))
			}
			if fl.Changed("random-seed") {
				flagOpts = append(flagOpts, config.WithRandomSeed(randomSeed))
			}
			if fl.Changed("width-mm") || fl.Changed("height-mm") {
				flagOpts = append(flagOpts, config.WithDimensions(widthMM, heightMM))
			}
			if fl.Changed("rendering-dpi") {
				flagOpts = append(flagOpts, config.WithRenderingDPI(renderingDPI))
			}
			if fl.Changed("output-dpi") {
				flagOpts = append(flagOpts, config.WithOutputDPI(outputDPI))
			}
			if fl.Changed("font") {
				flagOpts = append(flagOpts, config.WithFontPath(fontPath))
			}
			if fl.Changed("label-count") {
				flagOpts = append(flagOpts, config.WithLabelCount(labelCount))
			}
			if hillshade {
				flagOpts = append(flagOpts, config.WithHillshade(true))
			}
			if noHillshade {
				flagOpts = append(flagOpts, config.WithHillshade(false))
			}
			settings = settings.Apply(flagOpts...)

			opts := pipeline.Options{
				InputPath: args[0],
				Range:     rangeSeconds,
				Step:      stepSeconds,
				Refresh:   refresh,
				Format:    pipeline.FormatPNG,
				Logger:    logger,
			}
			settings.ApplyTo(&opts)

			store, err := newStore(noStore)
			if err != nil {
				return fmt.Errorf("open run store: %w", err)
			}
			runner, err := c.newRunner(noCache, store)
			if err != nil {
				return fmt.Errorf("create runner: %w", err)
			}
			defer runner.Close()

			result, err := runner.Execute(ctx, opts)
			if err != nil {
				return fmt.Errorf("render: %w", err)
			}

			if err := os.MkdirAll(output, 0o755); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}
			written := 0
			for i, frame := range result.Frames {
				if frame == nil {
					continue
				}
				path := filepath.Join(output, fmt.Sprintf("frame-%04d.png", i))
				if err := os.WriteFile(path, frame, 0o644); err != nil {
					return fmt.Errorf("write %s: %w", path, err)
				}
				written++
			}

			prog.done(fmt.Sprintf("run %s: %d/%d frames written to %s", result.RunID, written, result.SnapshotCount, output))
			if result.Err != nil {
				logger.Warnf("some snapshots failed: %v", result.Err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "frames", "directory to write PNG frames to")
	cmd.Flags().StringVar(&configPath, "config", "", "path to a TOML settings file")
	cmd.Flags().Float64Var(&rangeSeconds, "range", 0, "snapshot window length in the document's time units, milliseconds for date formats (0 = format default)")
	cmd.Flags().Float64Var(&stepSeconds, "step", 0, "distance between successive window starts, in the same units as --range (0 = format default)")
	cmd.Flags().Float64Var(&widthMM, "width-mm", 0, "frame width in millimeters")
	cmd.Flags().Float64Var(&heightMM, "height-mm", 0, "frame height in millimeters")
	cmd.Flags().Float64Var(&renderingDPI, "rendering-dpi", 0, "DPI the raster stage draws at before resampling")
	cmd.Flags().Float64Var(&outputDPI, "output-dpi", 0, "DPI frames are resampled to before encoding")
	cmd.Flags().StringVar(&fontPath, "font", "", "path to a TTF font for node labels (falls back to a built-in face)")
	cmd.Flags().IntVar(&labelCount, "label-count", 0, "maximum number of node labels drawn per frame")
	cmd.Flags().Float64Var(&gravity, "gravity", 0, "ForceAtlas2 gravity strength")
	cmd.Flags().Int64Var(&randomSeed, "random-seed", 0, "layout PRNG seed")
	cmd.Flags().BoolVar(&hillshade, "hillshade", false, "draw the hillshaded heatmap background layer")
	cmd.Flags().BoolVar(&noHillshade, "no-hillshade", false, "disable the hillshaded heatmap background layer")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass the cache and recompute every stage")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the on-disk artifact cache entirely")
	cmd.Flags().BoolVar(&noStore, "no-store", false, "don't persist this run in the session store")

	return cmd
}
