package layout

import "math"

// quadBody is the minimal shape the quadtree needs from a node: its
// position and a mass proxy (1 + inDegree, the FA2 convention).
type quadBody struct {
	x, y, mass float64
	id         string
}

// quadNode is one node of a Barnes-Hut quadtree: either a leaf holding a
// single body, or an internal node holding the aggregate mass/center of
// mass of its four children.
type quadNode struct {
	x0, y0, x1, y1 float64 // bounding box

	body     *quadBody // set on leaves
	children [4]*quadNode

	mass   float64
	cx, cy float64 // center of mass
}

func newQuadtree(bodies []quadBody) *quadNode {
	if len(bodies) == 0 {
		return nil
	}
	minX, minY := bodies[0].x, bodies[0].y
	maxX, maxY := bodies[0].x, bodies[0].y
	for _, b := range bodies[1:] {
		minX, maxX = math.Min(minX, b.x), math.Max(maxX, b.x)
		minY, maxY = math.Min(minY, b.y), math.Max(maxY, b.y)
	}
	// Guard against a degenerate (zero-area) bounding box.
	if maxX-minX < 1 {
		maxX, minX = maxX+1, minX-1
	}
	if maxY-minY < 1 {
		maxY, minY = maxY+1, minY-1
	}

	root := &quadNode{x0: minX, y0: minY, x1: maxX, y1: maxY}
	for i := range bodies {
		root.insert(&bodies[i])
	}
	return root
}

func (q *quadNode) insert(b *quadBody) {
	if q.body == nil && q.mass == 0 {
		q.body = b
		q.mass = b.mass
		q.cx, q.cy = b.x, b.y
		return
	}

	// Coincident (or numerically inseparable) bodies cannot be told apart by
	// subdividing, so the leaf keeps them together as one aggregate.
	merge := q.body != nil && (q.body.x == b.x && q.body.y == b.y || q.width() < 1e-9)
	if q.body != nil && !merge {
		existing := &quadBody{x: q.body.x, y: q.body.y, mass: q.mass, id: q.body.id}
		q.body = nil
		q.subdivideInto(existing)
	}

	if !merge {
		q.subdivideInto(b)
	}
	totalMass := q.mass + b.mass
	q.cx = (q.cx*q.mass + b.x*b.mass) / totalMass
	q.cy = (q.cy*q.mass + b.y*b.mass) / totalMass
	q.mass = totalMass
}

func (q *quadNode) subdivideInto(b *quadBody) {
	mx, my := (q.x0+q.x1)/2, (q.y0+q.y1)/2
	idx := 0
	if b.x >= mx {
		idx |= 1
	}
	if b.y >= my {
		idx |= 2
	}
	child := q.children[idx]
	if child == nil {
		x0, x1 := q.x0, mx
		if idx&1 != 0 {
			x0, x1 = mx, q.x1
		}
		y0, y1 := q.y0, my
		if idx&2 != 0 {
			y0, y1 = my, q.y1
		}
		child = &quadNode{x0: x0, y0: y0, x1: x1, y1: y1}
		q.children[idx] = child
	}
	child.insert(b)
}

// width returns the side length of the node's bounding box.
func (q *quadNode) width() float64 {
	return math.Max(q.x1-q.x0, q.y1-q.y0)
}

// forEachApprox walks the tree applying fn to every body and every
// internal node whose aggregate is a good-enough Barnes-Hut approximation
// of its contents from the viewpoint (x,y), per the θ accuracy parameter:
// width/distance < theta.
func (q *quadNode) forEachApprox(x, y, theta float64, fn func(mass, dx, dy, dist float64)) {
	if q == nil {
		return
	}
	dx, dy := q.cx-x, q.cy-y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		dist = 1e-9
	}

	if q.body != nil {
		fn(q.mass, dx, dy, dist)
		return
	}

	if q.width()/dist < theta {
		fn(q.mass, dx, dy, dist)
		return
	}

	for _, c := range q.children {
		c.forEachApprox(x, y, theta, fn)
	}
}
