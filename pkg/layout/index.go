package layout

import "github.com/fieldtrace/dynagraph/pkg/graph"

// Index is an alias for [graph.NodePositionIndex], the snapshot-boundary
// mapping from node ID to its laid-out position that this package's [Run]
// carries forward from one snapshot to the next.
type Index = graph.NodePositionIndex

// Position is an alias for [graph.Position].
type Position = graph.Position

// BuildIndex captures the current positions of every node in g.
func BuildIndex(g *graph.Graph) Index {
	return g.Capture()
}
