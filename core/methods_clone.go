// File: methods_clone.go
// Role: Deep copies of graph instances.
// Ownership:
//   - The clone shares no neighbor set with the source; mutating one never
//     affects the other.

package core

import mapset "github.com/deckarep/golang-set/v2"

// Clone returns a deep copy of the Graph: configuration, vertices and edges.
// Every neighbor set is copied independently.
//
// Complexity: O(V + E).
func (g *Graph[K]) Clone() *Graph[K] {
	clone := &Graph[K]{
		directed: g.directed,
		adj:      make(map[K]mapset.Set[K], len(g.adj)),
		edges:    g.edges,
	}
	for id, set := range g.adj {
		clone.adj[id] = set.Clone()
	}
	if g.directed {
		clone.in = make(map[K]mapset.Set[K], len(g.in))
		for id, set := range g.in {
			clone.in[id] = set.Clone()
		}
	}

	return clone
}
