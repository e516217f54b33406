package slicer

import (
	"github.com/fieldtrace/dynagraph/pkg/errors"
	"github.com/fieldtrace/dynagraph/pkg/gexf"
	"github.com/fieldtrace/dynagraph/pkg/graph"
)

// Slice projects doc into an ordered sequence of snapshots under opts.
//
// Each window Sk becomes one [graph.Snapshot] containing the nodes active
// in Sk and the edges whose both endpoints are active in Sk. A window that
// yields zero nodes still produces an (empty) snapshot: the sequence's
// length and Start/End values carry their own meaning independent of
// occupancy.
func Slice(doc *gexf.Document, opts Options) ([]graph.Snapshot, error) {
	if doc == nil {
		return nil, errors.New(errors.InputSchema, "slice: nil document")
	}
	res := opts.resolve(doc.TimeFormat)
	if res.Range == 0 {
		// spec.md §9 boundary behavior: an explicit zero range produces
		// zero snapshots, not an error.
		return []graph.Snapshot{}, nil
	}
	if err := errors.ValidateWindow(res.Range, res.Step); err != nil {
		return nil, err
	}

	ws := windows(doc.DateMin, doc.DateMax, res)
	snapshots := make([]graph.Snapshot, 0, len(ws))
	for _, w := range ws {
		g := graph.New()
		activeIDs := make(map[string]bool)

		for _, n := range doc.Nodes {
			a := activity{Start: n.Start, End: n.End, Timestamp: n.Timestamp, Spells: n.Spells}
			if !active(a, w, doc.TimeRepresentation) {
				continue
			}
			attrs := project(doc.NodeAttributes, n.Attrs, w)
			node := graph.Node{ID: n.ID, Label: n.Label, Attrs: attrs}
			if err := g.AddNode(node); err != nil {
				return nil, errors.Wrap(errors.SnapshotComputation, err, "slice: add node %q", n.ID)
			}
			activeIDs[n.ID] = true
		}

		for _, e := range doc.Edges {
			a := activity{Start: e.Start, End: e.End, Timestamp: e.Timestamp, Spells: e.Spells}
			if !active(a, w, doc.TimeRepresentation) {
				continue
			}
			if !activeIDs[e.Source] || !activeIDs[e.Target] {
				continue
			}
			attrs := project(doc.EdgeAttributes, e.Attrs, w)
			edge := graph.Edge{Source: e.Source, Target: e.Target, Directed: e.Directed, Attrs: attrs}
			if err := g.AddEdge(edge); err != nil {
				return nil, errors.Wrap(errors.SnapshotComputation, err, "slice: add edge %s->%s", e.Source, e.Target)
			}
		}

		snapshots = append(snapshots, graph.Snapshot{Start: w.Start, End: w.End, Graph: g})
	}
	return snapshots, nil
}
