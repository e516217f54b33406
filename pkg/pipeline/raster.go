package pipeline

import (
	"bytes"
	"context"
	"image/png"

	"github.com/fieldtrace/dynagraph/pkg/errors"
	"github.com/fieldtrace/dynagraph/pkg/graph"
	"github.com/fieldtrace/dynagraph/pkg/raster"
)

// RasterOne rasterizes one snapshot and encodes it as PNG — spec's
// "delegate to an image codec" non-goal for the encoding step itself.
func RasterOne(ctx context.Context, runID string, snapshotIndex int, snap graph.Snapshot, opts Options) ([]byte, error) {
	frame, err := raster.Render(ctx, runID, snapshotIndex, snap, opts.RasterOptions()...)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, frame.Image); err != nil {
		return nil, errors.Wrap(errors.RenderFailure, err, "encode snapshot %d as png", snapshotIndex)
	}
	return buf.Bytes(), nil
}
