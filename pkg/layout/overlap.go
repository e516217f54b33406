package layout

import (
	"math"

	"github.com/fieldtrace/dynagraph/pkg/graph"
)

// removeOverlaps runs the three overlap-removal sweeps from overlapSweeps()
// in sequence, each pushing apart nodes whose discs (scaled by
// overlapRatio) intersect, using a uniform grid of at most overlapGridSize
// cells per axis to find candidate pairs in roughly constant time per node.
func removeOverlaps(g *graph.Graph, o Options) {
	for _, sw := range overlapSweeps() {
		maxIter := sw.maxIterations(o.IterationsFactor)
		margin := mmToUnits(sw.marginMM)
		for it := 0; it < maxIter; it++ {
			if !overlapSweepOnce(g, margin, sw.speed) {
				break
			}
		}
	}
}

// mmToUnits converts a millimetre margin into the layout's coordinate
// units. The layout has no physical scale of its own before rasterization,
// so a millimetre is treated as one coordinate unit; pkg/raster is what
// ultimately maps layout units to pixels via rendering_dpi.
func mmToUnits(mm float64) float64 {
	return mm
}

// overlapSweepOnce applies one displacement pass across a uniform grid and
// reports whether any pair was pushed apart (callers loop until false or
// maxIterations is reached).
func overlapSweepOnce(g *graph.Graph, margin, speed float64) bool {
	nodes := g.Nodes()
	if len(nodes) < 2 {
		return false
	}

	minX, minY, maxX, maxY := bounds(nodes)
	w, h := maxX-minX, maxY-minY
	if w == 0 {
		w = 1
	}
	if h == 0 {
		h = 1
	}
	// A cell is never narrower than the largest possible minimum distance,
	// so every overlapping pair lies in the same or an adjacent cell.
	maxSize := 0.0
	for _, n := range nodes {
		maxSize = math.Max(maxSize, n.Size)
	}
	reach := 2*maxSize*overlapRatio + margin
	cellW, cellH := math.Max(w/overlapGridSize, reach), math.Max(h/overlapGridSize, reach)

	type cellKey struct{ cx, cy int }
	grid := make(map[cellKey][]int, len(nodes))
	cellOf := func(n *graph.Node) cellKey {
		cx := int((n.X - minX) / cellW)
		cy := int((n.Y - minY) / cellH)
		return cellKey{cx, cy}
	}
	for i, n := range nodes {
		grid[cellOf(n)] = append(grid[cellOf(n)], i)
	}

	moved := false
	for i, ni := range nodes {
		k := cellOf(ni)
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				for _, j := range grid[cellKey{k.cx + dx, k.cy + dy}] {
					if j <= i {
						continue
					}
					nj := nodes[j]
					ddx, ddy := nj.X-ni.X, nj.Y-ni.Y
					dist := math.Hypot(ddx, ddy)
					minDist := (ni.Size+nj.Size)*overlapRatio + margin
					if dist >= minDist || dist == 0 && minDist == 0 {
						continue
					}
					if dist == 0 {
						ddx, ddy, dist = 1, 0, 1e-9
					}
					push := (minDist - dist) / 2 * speed / 8
					ux, uy := ddx/dist, ddy/dist
					ni.X -= ux * push
					ni.Y -= uy * push
					nj.X += ux * push
					nj.Y += uy * push
					moved = true
				}
			}
		}
	}
	return moved
}

func bounds(nodes []*graph.Node) (minX, minY, maxX, maxY float64) {
	minX, minY = nodes[0].X, nodes[0].Y
	maxX, maxY = nodes[0].X, nodes[0].Y
	for _, n := range nodes[1:] {
		minX, maxX = math.Min(minX, n.X), math.Max(maxX, n.X)
		minY, maxY = math.Min(minY, n.Y), math.Max(maxY, n.Y)
	}
	return
}
