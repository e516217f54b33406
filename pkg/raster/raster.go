package raster

import (
	"context"
	"image"
	"math/rand"
	"time"

	"github.com/fogleman/gg"

	"github.com/fieldtrace/dynagraph/pkg/errors"
	"github.com/fieldtrace/dynagraph/pkg/fonts"
	"github.com/fieldtrace/dynagraph/pkg/graph"
	"github.com/fieldtrace/dynagraph/pkg/observability"
)

// Render rasterizes one snapshot to a [Frame] at opts.OutputDPI. It never
// panics out to the caller: a failed stage is wrapped into an
// [errors.RenderFailure] and returned, letting the pipeline log and skip
// the frame rather than aborting the whole run.
func Render(ctx context.Context, runID string, snapshotIndex int, snap graph.Snapshot, opts ...Option) (frame *Frame, err error) {
	o := apply(opts...)
	start := time.Now()
	observability.Pipeline().OnRasterStart(ctx, runID, snapshotIndex)
	defer func() {
		observability.Pipeline().OnRasterComplete(ctx, runID, snapshotIndex, time.Since(start), err)
		errors.CollectFromContext(ctx, err)
	}()

	defer func() {
		if r := recover(); r != nil {
			err = errors.New(errors.RenderFailure, "raster: snapshot %d panicked: %v", snapshotIndex, r)
		}
	}()

	if snap.Graph == nil {
		return nil, errors.New(errors.RenderFailure, "raster: snapshot %d has no graph", snapshotIndex)
	}

	widthPx := int(mmToPx(o.WidthMM, o.RenderingDPI))
	heightPx := int(mmToPx(o.HeightMM, o.RenderingDPI))

	rng := rand.New(rand.NewSource(int64(snapshotIndex) + 1))
	nodes := buildRenderNodes(snap.Graph.Nodes(), rng)
	edges := buildRenderEdges(snap.Graph, nodes)

	params := computeRescale(nodes, o)
	for i := range nodes {
		nodes[i].X, nodes[i].Y = params.apply(nodes[i].X, nodes[i].Y, o)
		nodes[i].Size = params.applySize(nodes[i].Size)
	}

	voronoi := buildVoronoi(nodes, widthPx, heightPx, o.VoronoiRangePx, o.VoronoiResolutionMax)
	heatmap := buildHeatmap(nodes, widthPx, heightPx, o.HeatmapSpreadMM, o.RenderingDPI, o.HeatmapResolutionMax, 1.0)

	background := gg.NewContext(widthPx, heightPx)
	background.SetColor(o.BackgroundColor)
	background.Clear()
	if o.HillshadeEnabled {
		hillshade := buildHillshade(heatmap, o.HillshadeStrength, o.SunAzimuthDegrees, o.SunElevationDegrees, o.HypsometricGradient)
		drawHillshadeLayer(background, hillshade, heatmap.ratio)
	}

	layered := gg.NewContext(widthPx, heightPx)
	drawEdges(layered, edges, nodes, voronoi, o, rng)
	drawNodes(layered, nodes, o)

	face := fonts.Load(o.FontPath, o.LabelMaxFontSizePt)
	labels := selectLabels(nodes, o, face)
	drawLabels(layered, labels, face)

	flattened := composite(background, layered)
	resampled := resampleToOutputDPI(flattened, o.RenderingDPI, o.OutputDPI)

	return &Frame{Image: resampled, WidthPx: resampled.Bounds().Dx(), HeightPx: resampled.Bounds().Dy()}, nil
}

// buildRenderEdges resolves every graph edge's endpoints to indices into
// nodes, dropping any edge whose endpoint isn't present (defensive: the
// slicer already guarantees this never happens for snapshots it produced).
func buildRenderEdges(g *graph.Graph, nodes []renderNode) []renderEdge {
	index := make(map[string]int, len(nodes))
	for i, n := range nodes {
		index[n.ID] = i
	}
	var out []renderEdge
	for _, e := range g.Edges() {
		si, ok := index[e.Source]
		if !ok {
			continue
		}
		ti, ok := index[e.Target]
		if !ok {
			continue
		}
		opacity := e.Opacity
		if opacity == 0 {
			opacity = 1
		}
		out = append(out, renderEdge{SourceIdx: si, TargetIdx: ti, Directed: e.Directed, Opacity: opacity})
	}
	return out
}

// drawHillshadeLayer paints the hillshade's alpha as a gray shade onto
// background at full render resolution, upsampling from the reduced
// hillshade resolution via bilinear interpolation. The hypsometric colors
// in layer.color are not painted.
func drawHillshadeLayer(ctx *gg.Context, layer *hillshadeLayer, ratio float64) {
	img := ctx.Image().(*image.RGBA)
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			fx, fy := float64(x)*ratio, float64(y)*ratio
			alpha := bilinearSample(layer.alpha, layer.width, layer.height, fx, fy)
			shade := uint8(clampF(alpha, 0, 1) * 255)
			base := img.RGBAAt(x, y)
			base.R = shade
			base.G = shade
			base.B = shade
			img.SetRGBA(x, y, base)
		}
	}
}

// bilinearSample interpolates a scalar field at fractional coordinates.
func bilinearSample(values []float64, w, h int, fx, fy float64) float64 {
	x0, y0 := clampInt(int(fx), 0, w-1), clampInt(int(fy), 0, h-1)
	x1, y1 := clampInt(x0+1, 0, w-1), clampInt(y0+1, 0, h-1)
	tx, ty := fx-float64(x0), fy-float64(y0)

	v00 := values[y0*w+x0]
	v10 := values[y0*w+x1]
	v01 := values[y1*w+x0]
	v11 := values[y1*w+x1]

	top := v00 + (v10-v00)*tx
	bottom := v01 + (v11-v01)*tx
	return top + (bottom-top)*ty
}
