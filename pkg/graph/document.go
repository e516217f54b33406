package graph

import (
	"encoding/json"
	"fmt"
)

// =============================================================================
// Intermediate JSON — the wire format spec §6 calls "Intermediate JSON"
// =============================================================================

// Document is the intermediate JSON representation of a sequence of
// snapshots: `{ "slices": [ { start, end, nodes, edges } ] }`. Once
// pkg/layout has run, each node carries x, y, size; pkg/raster only reads
// a Document, never a live [Graph].
type Document struct {
	Slices []SliceJSON `json:"slices"`
}

// SliceJSON is the JSON shape of one [Snapshot].
type SliceJSON struct {
	Start float64   `json:"start"`
	End   float64   `json:"end"`
	Nodes []NodeJSON `json:"nodes"`
	Edges []EdgeJSON `json:"edges"`
}

// NodeJSON is the JSON shape of one node within a slice.
type NodeJSON struct {
	ID    string         `json:"id"`
	Label string         `json:"label,omitempty"`
	X     float64        `json:"x,omitempty"`
	Y     float64        `json:"y,omitempty"`
	Size  float64        `json:"size,omitempty"`
	Color *ColorJSON     `json:"color,omitempty"`
	Attrs map[string]any `json:"attrs,omitempty"`
}

// ColorJSON is the JSON shape of a [Color].
type ColorJSON struct {
	R, G, B uint8
}

// EdgeJSON is the JSON shape of one edge within a slice.
type EdgeJSON struct {
	Source   string         `json:"source"`
	Target   string         `json:"target"`
	Directed bool           `json:"directed,omitempty"`
	Opacity  float64        `json:"opacity,omitempty"`
	Attrs    map[string]any `json:"attrs,omitempty"`
}

// ToJSON converts a [Snapshot] to its wire representation, in the graph's
// insertion order.
func (s Snapshot) ToJSON() SliceJSON {
	out := SliceJSON{Start: s.Start, End: s.End}
	for _, n := range s.Graph.Nodes() {
		nj := NodeJSON{ID: n.ID, Label: n.Label, X: n.X, Y: n.Y, Size: n.Size, Attrs: n.Attrs}
		if n.Color != nil {
			nj.Color = &ColorJSON{R: n.Color.R, G: n.Color.G, B: n.Color.B}
		}
		out.Nodes = append(out.Nodes, nj)
	}
	for _, e := range s.Graph.Edges() {
		out.Edges = append(out.Edges, EdgeJSON{
			Source: e.Source, Target: e.Target, Directed: e.Directed,
			Opacity: e.Opacity, Attrs: e.Attrs,
		})
	}
	return out
}

// FromJSON reconstructs a [Snapshot] from its wire representation.
func FromJSON(sj SliceJSON) (Snapshot, error) {
	g := New()
	for _, nj := range sj.Nodes {
		n := Node{ID: nj.ID, Label: nj.Label, X: nj.X, Y: nj.Y, Size: nj.Size, Attrs: nj.Attrs}
		if nj.Color != nil {
			n.Color = &Color{R: nj.Color.R, G: nj.Color.G, B: nj.Color.B}
		}
		if err := g.AddNode(n); err != nil {
			return Snapshot{}, fmt.Errorf("node %s: %w", nj.ID, err)
		}
	}
	for _, ej := range sj.Edges {
		e := Edge{Source: ej.Source, Target: ej.Target, Directed: ej.Directed, Opacity: ej.Opacity, Attrs: ej.Attrs}
		if err := g.AddEdge(e); err != nil {
			return Snapshot{}, fmt.Errorf("edge %s→%s: %w", ej.Source, ej.Target, err)
		}
	}
	return Snapshot{Start: sj.Start, End: sj.End, Graph: g}, nil
}

// MarshalDocument serializes a sequence of snapshots to pretty-printed JSON.
func MarshalDocument(snapshots []Snapshot) ([]byte, error) {
	doc := Document{Slices: make([]SliceJSON, len(snapshots))}
	for i, s := range snapshots {
		doc.Slices[i] = s.ToJSON()
	}
	return json.MarshalIndent(doc, "", "  ")
}

// UnmarshalDocument deserializes intermediate JSON into a sequence of snapshots.
func UnmarshalDocument(data []byte) ([]Snapshot, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal document: %w", err)
	}
	out := make([]Snapshot, len(doc.Slices))
	for i, sj := range doc.Slices {
		s, err := FromJSON(sj)
		if err != nil {
			return nil, fmt.Errorf("slice %d: %w", i, err)
		}
		out[i] = s
	}
	return out, nil
}
