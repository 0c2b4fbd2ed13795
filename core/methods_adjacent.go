// File: methods_adjacent.go
// Role: Read-only adjacency queries (neighbors, degrees, vertex listing).
// Determinism:
//   - Neighbors() and Vertices() return ascending IDs.
//   - EachNeighbor() follows set iteration order and is NOT ordered; use it only
//     where the result does not depend on visit order (reachability, counting).

package core

import (
	"fmt"
	"slices"
)

// Neighbors returns the sorted neighbor IDs of id (out-neighbors for directed graphs).
// Returns ErrVertexNotFound if id is absent.
// Complexity: O(d·log d).
func (g *Graph[K]) Neighbors(id K) ([]K, error) {
	set, ok := g.adj[id]
	if !ok {
		return nil, fmt.Errorf("Neighbors(%v): %w", id, ErrVertexNotFound)
	}
	out := set.ToSlice()
	slices.Sort(out)

	return out, nil
}

// EachNeighbor calls fn for every neighbor of id until fn returns false.
// Iteration order is unspecified. fn must not mutate g.
// Returns ErrVertexNotFound if id is absent.
// Complexity: O(d), no allocations.
func (g *Graph[K]) EachNeighbor(id K, fn func(nbr K) bool) error {
	set, ok := g.adj[id]
	if !ok {
		return fmt.Errorf("EachNeighbor(%v): %w", id, ErrVertexNotFound)
	}
	// mapset stops when the callback returns true; invert the contract.
	set.Each(func(nbr K) bool { return !fn(nbr) })

	return nil
}

// Degree returns the number of neighbors of id (out-degree for directed graphs).
// Complexity: O(1).
func (g *Graph[K]) Degree(id K) (int, error) {
	set, ok := g.adj[id]
	if !ok {
		return 0, fmt.Errorf("Degree(%v): %w", id, ErrVertexNotFound)
	}

	return set.Cardinality(), nil
}

// InDegree returns the number of edges pointing at id.
// For undirected graphs it equals Degree.
// Complexity: O(1).
func (g *Graph[K]) InDegree(id K) (int, error) {
	if !g.directed {
		return g.Degree(id)
	}
	set, ok := g.in[id]
	if !ok {
		return 0, fmt.Errorf("InDegree(%v): %w", id, ErrVertexNotFound)
	}

	return set.Cardinality(), nil
}

// Vertices returns all vertex IDs in ascending order.
// Complexity: O(V·log V).
func (g *Graph[K]) Vertices() []K {
	out := make([]K, 0, len(g.adj))
	for id := range g.adj {
		out = append(out, id)
	}
	slices.Sort(out)

	return out
}

// VertexCount returns |V|. Complexity: O(1).
func (g *Graph[K]) VertexCount() int { return len(g.adj) }

// EdgeCount returns |E|; an undirected edge counts once. Complexity: O(1).
func (g *Graph[K]) EdgeCount() int { return g.edges }

// Directed reports whether edges are one-way.
func (g *Graph[K]) Directed() bool { return g.directed }
