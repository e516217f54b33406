// Package layout computes 2-D node positions for one [graph.Snapshot] at a
// time using a ForceAtlas2 variant followed by an overlap-removal pass.
//
// # Sizing
//
// Every node's Size is first derived from its in-degree:
// size = sqrt(sizeMin + sizeFactor·inDegree^sizePower).
//
// # Seeding
//
// A standalone run seeds every node at a uniform random position in a
// square centered on the origin. A run that is part of a sequence instead
// inherits positions from the previous snapshot's [Index] and derives new
// nodes' positions from the mean of their already-positioned neighbors,
// falling back to a random position when a new node has no positioned
// neighbor either.
//
// # Force simulation
//
// After seeding, [Run] applies three successive ForceAtlas2 passes (rough,
// precision, slow refine, each with its own iteration count/slowDown/θ)
// followed, when
// enabled, by three overlap-removal sweeps. Barnes-Hut quadtree
// approximation is used for the repulsion term in the passes that request
// it.
package layout
