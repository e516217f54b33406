package pipeline

import (
	"os"

	"github.com/fieldtrace/dynagraph/pkg/errors"
	"github.com/fieldtrace/dynagraph/pkg/gexf"
	"github.com/fieldtrace/dynagraph/pkg/graph"
	"github.com/fieldtrace/dynagraph/pkg/slicer"
)

// Slice parses the GEXF document at opts.InputPath and projects it into an
// ordered sequence of snapshots. Any returned error has code InputIO or
// InputSchema — the slice stage has no recoverable failure mode, since a
// document that can't be parsed leaves nothing for layout/raster to work
// with.
func Slice(opts Options) ([]graph.Snapshot, error) {
	if err := errors.ValidateSourcePath(opts.InputPath); err != nil {
		return nil, err
	}
	f, err := os.Open(opts.InputPath)
	if err != nil {
		return nil, errors.Wrap(errors.InputIO, err, "open %s", opts.InputPath)
	}
	defer f.Close()

	doc, err := gexf.Parse(f)
	if err != nil {
		return nil, err
	}

	var rng, step *float64
	if opts.Range != 0 {
		rng = &opts.Range
	}
	if opts.Step != 0 {
		step = &opts.Step
	}
	snapshots, err := slicer.Slice(doc, slicer.Options{Range: rng, Step: step})
	if err != nil {
		return nil, err
	}
	return snapshots, nil
}
