package slicer

import (
	"testing"

	"github.com/fieldtrace/dynagraph/pkg/gexf"
)

func TestSliceSingleNodeScenario(t *testing.T) {
	doc := &gexf.Document{
		TimeFormat:         gexf.FormatInteger,
		TimeRepresentation: gexf.RepresentationInterval,
		Nodes:              []gexf.Node{{ID: "a", Start: f(0), End: f(15)}},
		DateMin:            0,
		DateMax:            15,
	}
	snaps, err := Slice(doc, Options{Range: f(10), Step: f(5)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snaps) != 2 {
		t.Fatalf("got %d snapshots, want 2: %+v", len(snaps), snaps)
	}
	if snaps[0].Start != 0 || snaps[0].End != 10 || snaps[1].Start != 5 || snaps[1].End != 15 {
		t.Fatalf("got %+v", snaps)
	}
	for _, s := range snaps {
		if s.Graph.Order() != 1 {
			t.Fatalf("snapshot %+v: got order %d, want 1", s, s.Graph.Order())
		}
	}
}

func TestSliceEdgeRequiresBothEndpointsActive(t *testing.T) {
	doc := &gexf.Document{
		TimeFormat:         gexf.FormatInteger,
		TimeRepresentation: gexf.RepresentationInterval,
		Nodes: []gexf.Node{
			{ID: "a", Start: f(0), End: f(10)},
			{ID: "b", Start: f(6), End: f(20)},
		},
		Edges:   []gexf.Edge{{ID: "e0", Source: "a", Target: "b", Start: f(0), End: f(20)}},
		DateMin: 0,
		DateMax: 20,
	}
	snaps, err := Slice(doc, Options{Range: f(5), Step: f(5)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// window [0,5): a active, b not active yet -> edge excluded.
	if snaps[0].Graph.Size() != 0 {
		t.Fatalf("window 0: got %d edges, want 0", snaps[0].Graph.Size())
	}
	// window [5,10): both active -> edge included.
	var found bool
	for _, s := range snaps {
		if s.Start == 5 && s.End == 10 {
			found = true
			if s.Graph.Size() != 1 {
				t.Fatalf("window [5,10): got %d edges, want 1", s.Graph.Size())
			}
		}
	}
	if !found {
		t.Fatal("expected a [5,10) window in the sequence")
	}
}

func TestSliceTimestampScenario(t *testing.T) {
	// Two-node timestamp graph: A@3, B@7, range=4 step=2.
	doc := &gexf.Document{
		TimeFormat:         gexf.FormatInteger,
		TimeRepresentation: gexf.RepresentationTimestamp,
		Nodes: []gexf.Node{
			{ID: "a", Timestamp: f(3)},
			{ID: "b", Timestamp: f(7)},
		},
		DateMin: 3,
		DateMax: 7,
	}
	snaps, err := Slice(doc, Options{Range: f(4), Step: f(2)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snaps) == 0 {
		t.Fatal("expected at least one snapshot")
	}
	last := snaps[len(snaps)-1]
	if last.End != 7 {
		t.Fatalf("got last window end %v, want 7", last.End)
	}
}

func TestSliceRejectsNonPositiveWindow(t *testing.T) {
	doc := &gexf.Document{TimeFormat: gexf.FormatInteger, DateMin: 0, DateMax: 10}
	if _, err := Slice(doc, Options{Range: f(-1), Step: f(1)}); err == nil {
		t.Fatal("expected an error for a negative range")
	}
}

func TestSliceZeroRangeYieldsZeroSnapshots(t *testing.T) {
	// spec.md §9 boundary behavior: range = 0 -> zero snapshots, not an
	// error and not silently coerced to the format default.
	doc := &gexf.Document{TimeFormat: gexf.FormatInteger, DateMin: 0, DateMax: 10}
	snaps, err := Slice(doc, Options{Range: f(0), Step: f(1)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snaps) != 0 {
		t.Fatalf("got %d snapshots, want 0: %+v", len(snaps), snaps)
	}
}

func TestSliceNilDocument(t *testing.T) {
	if _, err := Slice(nil, Options{}); err == nil {
		t.Fatal("expected an error for a nil document")
	}
}
