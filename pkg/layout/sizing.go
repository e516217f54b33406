package layout

import (
	"math"

	"github.com/fieldtrace/dynagraph/pkg/graph"
)

// computeSizes writes size = sqrt(sizeMin + sizeFactor·inDegree^sizePower)
// into every node of g.
func computeSizes(g *graph.Graph, o Options) {
	for _, n := range g.Nodes() {
		deg := float64(g.InDegree(n.ID))
		n.Size = math.Sqrt(o.SizeMin + o.SizeFactor*math.Pow(deg, o.SizePower))
	}
}

// ComputeSizes is the exported form of computeSizes. Sizing depends only on
// in-degree, not on the force simulation, so a caller that restores cached
// positions (skipping [Run] entirely) can call this to get correctly-sized
// nodes without re-running ForceAtlas2.
func ComputeSizes(g *graph.Graph, opts ...Option) {
	computeSizes(g, apply(opts...))
}
