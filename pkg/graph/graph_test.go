package graph

import "testing"

func TestAddNodeErrors(t *testing.T) {
	g := New()
	if err := g.AddNode(Node{ID: ""}); err != ErrInvalidNodeID {
		t.Errorf("empty ID: err = %v, want ErrInvalidNodeID", err)
	}
	if err := g.AddNode(Node{ID: "a"}); err != nil {
		t.Fatalf("AddNode: %v", err)
	}
	if err := g.AddNode(Node{ID: "a"}); err != ErrDuplicateNodeID {
		t.Errorf("dup ID: err = %v, want ErrDuplicateNodeID", err)
	}
}

func TestAddEdgeErrors(t *testing.T) {
	g := New()
	_ = g.AddNode(Node{ID: "a"})
	_ = g.AddNode(Node{ID: "b"})

	tests := []struct {
		name string
		e    Edge
		want error
	}{
		{"unknown source", Edge{Source: "x", Target: "b"}, ErrUnknownSourceNode},
		{"unknown target", Edge{Source: "a", Target: "x"}, ErrUnknownTargetNode},
		{"self loop", Edge{Source: "a", Target: "a"}, ErrSelfLoop},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := g.AddEdge(tt.e); err != tt.want {
				t.Errorf("AddEdge: err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestInDegreeMixedGraph(t *testing.T) {
	g := New()
	for _, id := range []string{"a", "b", "c"} {
		_ = g.AddNode(Node{ID: id})
	}
	// a -> b directed; b -- c undirected.
	_ = g.AddEdge(Edge{Source: "a", Target: "b", Directed: true})
	_ = g.AddEdge(Edge{Source: "b", Target: "c", Directed: false})

	if got := g.InDegree("b"); got != 2 {
		t.Errorf("InDegree(b) = %d, want 2 (1 directed incoming + 1 undirected)", got)
	}
	if got := g.InDegree("a"); got != 0 {
		t.Errorf("InDegree(a) = %d, want 0", got)
	}
	if got := g.InDegree("c"); got != 1 {
		t.Errorf("InDegree(c) = %d, want 1 (undirected)", got)
	}
}

func TestInsertionOrderPreserved(t *testing.T) {
	g := New()
	ids := []string{"z", "a", "m"}
	for _, id := range ids {
		_ = g.AddNode(Node{ID: id})
	}
	nodes := g.Nodes()
	for i, n := range nodes {
		if n.ID != ids[i] {
			t.Errorf("Nodes()[%d].ID = %q, want %q (insertion order)", i, n.ID, ids[i])
		}
	}
}

func TestMultiEdgesAllowed(t *testing.T) {
	g := New()
	_ = g.AddNode(Node{ID: "a"})
	_ = g.AddNode(Node{ID: "b"})
	_ = g.AddEdge(Edge{Source: "a", Target: "b"})
	_ = g.AddEdge(Edge{Source: "a", Target: "b"})
	if g.Size() != 2 {
		t.Errorf("Size() = %d, want 2 (parallel edges allowed)", g.Size())
	}
}

func TestDefaultOpacity(t *testing.T) {
	g := New()
	_ = g.AddNode(Node{ID: "a"})
	_ = g.AddNode(Node{ID: "b"})
	_ = g.AddEdge(Edge{Source: "a", Target: "b"})
	if got := g.Edges()[0].Opacity; got != 1 {
		t.Errorf("Opacity = %v, want 1 (default)", got)
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	g := New()
	_ = g.AddNode(Node{ID: "a", Label: "Alpha", X: 1, Y: 2, Size: 3})
	_ = g.AddNode(Node{ID: "b", Label: "Beta"})
	_ = g.AddEdge(Edge{Source: "a", Target: "b", Directed: true})

	snap := Snapshot{Start: 0, End: 10, Graph: g}
	data, err := MarshalDocument([]Snapshot{snap})
	if err != nil {
		t.Fatalf("MarshalDocument: %v", err)
	}

	out, err := UnmarshalDocument(data)
	if err != nil {
		t.Fatalf("UnmarshalDocument: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("got %d slices, want 1", len(out))
	}
	if out[0].Graph.Order() != 2 || out[0].Graph.Size() != 1 {
		t.Errorf("round-tripped graph has %d nodes, %d edges, want 2, 1", out[0].Graph.Order(), out[0].Graph.Size())
	}
	a, ok := out[0].Graph.Node("a")
	if !ok || a.X != 1 || a.Y != 2 || a.Size != 3 {
		t.Errorf("node a not round-tripped correctly: %+v", a)
	}
}
