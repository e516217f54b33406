package layout

import (
	"math"
	"runtime"
	"sync"

	"github.com/fieldtrace/dynagraph/pkg/graph"
)

// runFA2 runs the three ForceAtlas2 passes from passes(o) in sequence over
// g, each pass repeatedly accumulating repulsion, attraction, and gravity
// forces and integrating them into node positions.
func runFA2(g *graph.Graph, o Options) {
	for _, p := range passes(o) {
		n := p.iterations(o.IterationsFactor)
		for it := 0; it < n; it++ {
			step(g, p, o)
		}
	}
}

type force struct{ fx, fy float64 }

// step performs one ForceAtlas2 iteration: accumulate repulsion +
// attraction + gravity per node, then integrate positions scaled by
// 1/slowDown.
func step(g *graph.Graph, p pass, o Options) {
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return
	}
	forces := make([]force, len(nodes))

	accumulateRepulsion(g, nodes, forces, p, o)
	accumulateAttraction(g, nodes, forces, o)
	accumulateGravity(nodes, forces, o)

	for i, n := range nodes {
		n.X += forces[i].fx / p.slowDown
		n.Y += forces[i].fy / p.slowDown
	}
}

func mass(n *graph.Node, g *graph.Graph) float64 {
	return 1 + float64(g.InDegree(n.ID))
}

// accumulateRepulsion adds the pairwise (or Barnes-Hut-approximated)
// anti-collision force to forces. Per-node contributions are independent
// reads against a shared read-only quadtree, so they're computed
// concurrently across a worker pool.
func accumulateRepulsion(g *graph.Graph, nodes []*graph.Node, forces []force, p pass, o Options) {
	bodies := make([]quadBody, len(nodes))
	for i, n := range nodes {
		bodies[i] = quadBody{x: n.X, y: n.Y, mass: mass(n, g), id: n.ID}
	}

	var tree *quadNode
	if p.barnesHut {
		tree = newQuadtree(bodies)
	}

	kr := 1.0 // repulsion coefficient; scaling applied via o.Scaling below
	workers := runtime.GOMAXPROCS(0)
	if workers > len(nodes) {
		workers = len(nodes)
	}
	if workers < 1 {
		workers = 1
	}

	var wg sync.WaitGroup
	chunk := (len(nodes) + workers - 1) / workers
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if lo >= len(nodes) {
			break
		}
		if hi > len(nodes) {
			hi = len(nodes)
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				bi := bodies[i]
				var fx, fy float64
				if tree != nil {
					tree.forEachApprox(bi.x, bi.y, p.theta, func(m, dx, dy, dist float64) {
						f := kr * o.Scaling * bi.mass * m / dist
						fx -= f * dx / dist
						fy -= f * dy / dist
					})
				} else {
					for j := range bodies {
						if j == i {
							continue
						}
						dx, dy := bodies[j].x-bi.x, bodies[j].y-bi.y
						dist := math.Hypot(dx, dy)
						if dist == 0 {
							dist = 1e-9
						}
						f := kr * o.Scaling * bi.mass * bodies[j].mass / dist
						fx -= f * dx / dist
						fy -= f * dy / dist
					}
				}
				forces[i].fx += fx
				forces[i].fy += fy
			}
		}(lo, hi)
	}
	wg.Wait()
}

// accumulateAttraction adds the along-edge attraction force. edgeWeightInfluence
// is fixed at 0 per spec, so every edge contributes equally regardless of
// any weight attribute.
func accumulateAttraction(g *graph.Graph, nodes []*graph.Node, forces []force, o Options) {
	index := make(map[string]int, len(nodes))
	for i, n := range nodes {
		index[n.ID] = i
	}

	for _, e := range g.Edges() {
		si, ok := index[e.Source]
		if !ok {
			continue
		}
		ti, ok := index[e.Target]
		if !ok {
			continue
		}
		sn, tn := nodes[si], nodes[ti]
		dx, dy := tn.X-sn.X, tn.Y-sn.Y
		dist := math.Hypot(dx, dy)
		if dist == 0 {
			continue
		}

		var magnitude float64
		if o.LinLog {
			magnitude = math.Log1p(dist)
		} else {
			magnitude = dist
		}

		fx, fy := magnitude*dx/dist, magnitude*dy/dist
		forces[si].fx += fx
		forces[si].fy += fy
		forces[ti].fx -= fx
		forces[ti].fy -= fy
	}
}

// accumulateGravity pulls every node toward the origin proportional to
// mass. strongGravity applies a constant-strength pull independent of
// distance; the default variant tapers off with distance.
func accumulateGravity(nodes []*graph.Node, forces []force, o Options) {
	if o.Gravity == 0 {
		return
	}
	for i, n := range nodes {
		dist := math.Hypot(n.X, n.Y)
		if dist == 0 {
			continue
		}
		m := 1 + n.Size
		var g float64
		if o.StrongGravity {
			g = o.Gravity * m
		} else {
			g = o.Gravity * m / dist
		}
		forces[i].fx -= g * n.X / dist
		forces[i].fy -= g * n.Y / dist
	}
}
