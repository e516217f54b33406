// Package raster renders one [graph.Snapshot] to an RGBA [Frame].
//
// Rendering proceeds in stages: rescale the snapshot's node positions into
// drawing space (§coords.go), build a reduced-resolution Voronoi-owner
// field used to attenuate edges crossing unrelated nodes (§voronoi.go), an
// additive heatmap field with optional hillshading for a topographic
// density background (§heatmap.go, §hillshade.go), then draw edges, nodes,
// and a greedily-selected set of labels onto a layered canvas
// (§edges.go, §nodes.go, §labels.go) that composite flattens into the
// final frame, which resampleToOutputDPI then resamples to the requested
// output DPI (§compositing.go).
//
// Rendering borrows the snapshot read-only: node/edge coordinates and
// sizes used during drawing are a rescaled copy, never written back.
package raster
