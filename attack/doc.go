// Package attack computes attack orders: sequences in which vertices are
// removed from a graph to study how its connectivity degrades.
//
// What
//
//   - TargetedOrder:     repeatedly removes a vertex of maximum current degree,
//     found by a linear scan. O(n²) over n vertices.
//   - FastTargetedOrder: the same policy driven by degree buckets. Every vertex
//     sits in the bucket equal to its current degree; removing a vertex moves
//     each live neighbor from bucket d to d-1. O(n + m) after an O(n·log n)
//     sort that fixes a deterministic vertex indexing.
//   - RandomOrder:       a uniformly random permutation, the baseline.
//
// All three return a permutation of the vertex set and never mutate the
// caller's graph: the targeted algorithms consume a private core.Graph.Clone.
//
// Tie-breaking
//
//	When several vertices share the maximum degree the choice is
//	implementation-defined but deterministic for a fixed graph: TargetedOrder
//	takes the smallest ID, FastTargetedOrder takes the last entry of the bucket.
//	The two orders therefore agree on the multiset of vertices and on the
//	first removal degree; after a tie they may diverge.
//
// Preconditions
//
//	Graphs must be undirected (ErrDirectedGraph) and symmetric. Symmetry is
//	checked up front with core.Graph.Validate, and FastTargetedOrder re-checks
//	every bucket move against the private copy; either violation surfaces as
//	core.ErrInconsistentGraph.
package attack
