package layout

import (
	"math"
	"math/rand"

	"github.com/fieldtrace/dynagraph/pkg/graph"
)

// seed assigns an initial position to every node in g. When prev is nil
// this is a standalone run: every node gets a uniform random position in a
// square of side sqrt(order)*100 centered at the origin. Otherwise, nodes
// present in prev keep their inherited position; nodes absent from prev
// take the mean position of their neighbors that ARE present in prev
// (prev is a read-only snapshot, so this is independent of the order in
// which new nodes are visited), falling back to a random position in the
// same square when no neighbor qualifies.
func seed(g *graph.Graph, prev Index, rng *rand.Rand) {
	order := g.Order()
	side := math.Sqrt(float64(order)) * 100

	randomPoint := func() (float64, float64) {
		return (rng.Float64() - 0.5) * side, (rng.Float64() - 0.5) * side
	}

	if prev == nil {
		for _, n := range g.Nodes() {
			n.X, n.Y = randomPoint()
		}
		return
	}

	for _, n := range g.Nodes() {
		if p, ok := prev[n.ID]; ok {
			n.X, n.Y = p.X, p.Y
			continue
		}

		var sumX, sumY float64
		var count int
		g.ForEachNeighbor(n.ID, func(neighborID string, _ graph.Edge) {
			if p, ok := prev[neighborID]; ok {
				sumX += p.X
				sumY += p.Y
				count++
			}
		})

		if count > 0 {
			n.X, n.Y = sumX/float64(count), sumY/float64(count)
		} else {
			n.X, n.Y = randomPoint()
		}
	}
}
