// Package graph provides the in-memory graph model shared by the slicer,
// layout, and raster stages.
//
// # Overview
//
// A [Graph] is a labeled, mixed directed/undirected multigraph: nodes and
// edges each carry an attribute bag, self-loops are disallowed, and multiple
// edges between the same pair of nodes are permitted. Iteration order for
// [Graph.Nodes] and [Graph.Edges] is insertion order — callers (notably the
// slicer's snapshot projection and the layout's deterministic seeding) rely
// on this.
//
// # Degree conventions
//
// [Graph.InDegree] follows graph-theoretic convention for a mixed graph: it
// counts incoming directed edges plus all undirected edges incident to the
// node, since an undirected edge has no preferred direction.
//
// # Building a graph
//
//	g := graph.New()
//	_ = g.AddNode(graph.Node{ID: "a", Label: "Alpha"})
//	_ = g.AddNode(graph.Node{ID: "b", Label: "Beta"})
//	_ = g.AddEdge(graph.Edge{Source: "a", Target: "b", Directed: true})
//
// # Relationship to other packages
//
// pkg/gexf parses GEXF documents, and pkg/slicer projects a parsed document
// into a sequence of per-snapshot Graphs.
// pkg/layout mutates node X/Y/Size in place. pkg/raster borrows a Graph
// read-only to produce a rendered frame.
package graph
