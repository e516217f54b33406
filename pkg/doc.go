// Package pkg provides the core libraries for dynagraph: a pipeline that
// turns a GEXF graph with temporal attributes into a sequence of rendered
// frames, one per sliding time window.
//
// # Architecture
//
// The typical data flow through dynagraph:
//
//	GEXF document (<nodes>/<edges>/<spells>)
//	         ↓
//	    [gexf] package (parse into an in-memory document)
//	         ↓
//	    [graph] package (mixed directed/undirected multigraph)
//	         ↓
//	    [slicer] package (cut into sliding-window snapshots)
//	         ↓
//	    [layout] package (ForceAtlas2 positions, seeded from the previous snapshot)
//	         ↓
//	    [raster] package (Voronoi/heatmap/hillshade rendering)
//	         ↓
//	    PNG frames
//
// [pipeline] orchestrates the last three stages behind a single
// Slice -> Layout -> Raster call, with caching ([cache]) and run
// persistence ([session]) shared by every entry point.
//
// # Quick Start
//
//	f, _ := os.Open("commits.gexf")
//	doc, _ := gexf.Parse(f)
//	weekMs := 7 * 86400 * 1000.0 // date-like time values are in milliseconds
//	snapshots, _ := slicer.Slice(doc, slicer.Options{Range: &weekMs})
//	layout.Run(context.Background(), "run-1", snapshots)
//	frame, _ := raster.Render(context.Background(), "run-1", 0, snapshots[0])
//
// Or, via the shared pipeline:
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, nil, nil)
//	result, _ := runner.Execute(ctx, pipeline.Options{InputPath: "commits.gexf"})
//
// # Main Packages
//
// [graph] - the multigraph model: insertion-ordered nodes/edges, attribute
// bags, mixed directedness.
//
// [gexf] - GEXF 1.3 parsing: elements, temporal attribute descriptors, and
// the date/dateTime/integer/double time-value normalization spec.md §3
// describes.
//
// [slicer] - sliding-window snapshot generation and per-window attribute
// projection.
//
// [layout] - per-snapshot sizing, seeded positions, Barnes-Hut-accelerated
// ForceAtlas2, overlap removal.
//
// [raster] - Voronoi/heatmap fields, hillshading, edge/node/label drawing,
// layer compositing, DPI rescaling.
//
// [pipeline] - Slice -> Layout -> Raster orchestration shared by the CLI
// and HTTP API, with per-stage option validation and defaulting.
//
// [cache] - artifact caching for each pipeline stage: an in-memory-free
// file backend, a Redis backend for shared worker processes, and a no-op.
//
// [session] - Run persistence (options, stats, status) across file and
// MongoDB backends.
//
// [config] - TOML-file settings overriding pipeline.Options defaults.
//
// [fonts] - TTF loading with a built-in bitmap fallback for node labels.
//
// [graph]: https://pkg.go.dev/github.com/fieldtrace/dynagraph/pkg/graph
// [gexf]: https://pkg.go.dev/github.com/fieldtrace/dynagraph/pkg/gexf
// [slicer]: https://pkg.go.dev/github.com/fieldtrace/dynagraph/pkg/slicer
// [layout]: https://pkg.go.dev/github.com/fieldtrace/dynagraph/pkg/layout
// [raster]: https://pkg.go.dev/github.com/fieldtrace/dynagraph/pkg/raster
// [pipeline]: https://pkg.go.dev/github.com/fieldtrace/dynagraph/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/fieldtrace/dynagraph/pkg/cache
// [session]: https://pkg.go.dev/github.com/fieldtrace/dynagraph/pkg/session
// [config]: https://pkg.go.dev/github.com/fieldtrace/dynagraph/pkg/config
// [fonts]: https://pkg.go.dev/github.com/fieldtrace/dynagraph/pkg/fonts
package pkg
