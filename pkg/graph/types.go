package graph

// Snapshot is a graph projection onto one half-open [Start, End) time
// window, produced by pkg/slicer. It holds a whole [Graph] for that window
// rather than defining its own node/edge types, keeping one definition of
// the attribute-bag shape.
//
// Invariant: every edge in a Snapshot has both endpoints present in the
// same Snapshot's node list (pkg/slicer enforces this when building
// snapshots; pkg/graph.Graph.Validate re-checks it generically).
type Snapshot struct {
	Start, End float64 // normalized time values (see pkg/gexf.ParseTime)
	Graph      *Graph
}

// NodePositionIndex maps a node ID to its last-known (X, Y) position. Its
// lifetime is one snapshot boundary: pkg/layout builds one from a
// Snapshot's positions after laying it out, and consults the previous
// snapshot's index to seed the next snapshot (spec §4.3's "position
// seeding").
type NodePositionIndex map[string]Position

// Position is a 2-D coordinate.
type Position struct {
	X, Y float64
}

// Capture builds a NodePositionIndex from the current positions of every
// node in the graph. Nodes with non-finite coordinates (not yet laid out)
// are omitted.
func (g *Graph) Capture() NodePositionIndex {
	idx := make(NodePositionIndex, g.Order())
	for _, n := range g.Nodes() {
		if isFinite(n.X) && isFinite(n.Y) {
			idx[n.ID] = Position{X: n.X, Y: n.Y}
		}
	}
	return idx
}

// Apply writes idx's positions back onto g's nodes by ID. Node IDs absent
// from idx are left untouched; IDs in idx absent from g are ignored — the
// caller (pkg/pipeline restoring a cached layout) may be applying a
// previous run's index to a graph whose node set has since changed.
func (g *Graph) Apply(idx NodePositionIndex) {
	for id, pos := range idx {
		if n, ok := g.nodes[id]; ok {
			n.X, n.Y = pos.X, pos.Y
		}
	}
}

func isFinite(f float64) bool {
	return f == f && f > -maxFinite && f < maxFinite
}

const maxFinite = 1e300
