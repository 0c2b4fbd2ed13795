// SPDX-License-Identifier: MIT
//
// File: adjacency_list.go
// Role: Conversion between Graph and the raw node→neighbors representation,
// plus the symmetry check that guards undirected graphs.
// Policy:
//   - FromAdjacency stores the input verbatim (no mirroring) and then validates,
//     so asymmetric undirected input fails fast instead of being silently repaired.
//   - AdjacencyList returns a snapshot; mutating it never affects the graph.

package core

import (
	"cmp"
	"fmt"
	"slices"
)

// FromAdjacency builds a Graph from a node→neighbors mapping such as the one
// produced by external generators and loaders.
//
// Every key becomes a vertex. For directed graphs, neighbor IDs that are not
// keys are added as vertices with no out-edges. For undirected graphs the
// mapping must already be symmetric; otherwise ErrInconsistentGraph is returned.
// Duplicate neighbor entries collapse into one edge. Self-loops yield
// ErrLoopNotAllowed.
//
// Complexity: O(V + E).
func FromAdjacency[K cmp.Ordered](adj map[K][]K, opts ...GraphOption) (*Graph[K], error) {
	g := NewGraph[K](opts...)
	for id := range adj {
		g.AddVertex(id)
	}

	var arcs int
	for from, nbrs := range adj {
		for _, to := range nbrs {
			if from == to {
				return nil, fmt.Errorf("FromAdjacency(%v): %w", from, ErrLoopNotAllowed)
			}
			if g.directed {
				if err := g.AddEdge(from, to); err != nil {
					return nil, fmt.Errorf("FromAdjacency: %w", err)
				}
				continue
			}
			if !g.HasVertex(to) {
				return nil, fmt.Errorf("FromAdjacency: %v lists unknown neighbor %v: %w",
					from, to, ErrInconsistentGraph)
			}
			// Raw, one-directional insert; symmetry is verified below.
			if g.adj[from].Add(to) {
				arcs++
			}
		}
	}
	if g.directed {
		return g, nil
	}

	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("FromAdjacency: %w", err)
	}
	g.edges = arcs / 2

	return g, nil
}

// Validate checks the undirected symmetry invariant
// v ∈ adj[u] ⇔ u ∈ adj[v]. Directed graphs are always valid.
// Returns ErrInconsistentGraph naming the first offending pair found.
//
// Complexity: O(V + E).
func (g *Graph[K]) Validate() error {
	if g.directed {
		return nil
	}

	var bad error
	for u, set := range g.adj {
		set.Each(func(v K) bool {
			back, ok := g.adj[v]
			if !ok || !back.Contains(u) {
				bad = fmt.Errorf("edge %v→%v has no mirror: %w", u, v, ErrInconsistentGraph)
				return true // stop
			}
			return false
		})
		if bad != nil {
			return bad
		}
	}

	return nil
}

// AdjacencyList returns a snapshot mapping every vertex to its sorted neighbor IDs.
// Vertices without neighbors map to an empty, non-nil slice.
//
// Complexity: O(V + E·log d).
func (g *Graph[K]) AdjacencyList() map[K][]K {
	out := make(map[K][]K, len(g.adj))
	for id, set := range g.adj {
		nbrs := set.ToSlice()
		slices.Sort(nbrs)
		out[id] = nbrs
	}

	return out
}
