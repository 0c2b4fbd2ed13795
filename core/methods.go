// Package core: vertex and edge lifecycle.
//
// This file provides the mutation primitives of the Graph Store. Adjacency is
// a map of neighbor sets, so existence checks, insertion and deletion of a
// single edge are O(1); removing a vertex touches only its incident edges.

package core

import "fmt"

// AddVertex inserts id into the graph. Adding an existing vertex is a no-op.
// Complexity: O(1) amortized.
func (g *Graph[K]) AddVertex(id K) {
	if _, exists := g.adj[id]; exists {
		return
	}
	g.adj[id] = newSet[K]()
	if g.directed {
		g.in[id] = newSet[K]()
	}
}

// HasVertex reports whether a vertex with the given ID exists in the graph.
// Complexity: O(1).
func (g *Graph[K]) HasVertex(id K) bool {
	_, exists := g.adj[id]

	return exists
}

// RemoveVertex deletes id and every edge incident to it.
// For each neighbor n of id, id is dropped from n's set, so the cost is
// proportional to the degree of id and never to the size of the graph.
// Returns ErrVertexNotFound if id is absent.
// Complexity: O(deg(id)); O(in(id)+out(id)) for directed graphs.
func (g *Graph[K]) RemoveVertex(id K) error {
	out, exists := g.adj[id]
	if !exists {
		return fmt.Errorf("RemoveVertex(%v): %w", id, ErrVertexNotFound)
	}

	if !g.directed {
		out.Each(func(nbr K) bool {
			if set, ok := g.adj[nbr]; ok {
				set.Remove(id)
			}
			return false // keep iterating
		})
		g.edges -= out.Cardinality()
		delete(g.adj, id)

		return nil
	}

	// Directed: unlink id from the in-index of its heads and from the
	// out-sets of its tails.
	out.Each(func(head K) bool {
		g.in[head].Remove(id)
		return false
	})
	in := g.in[id]
	in.Each(func(tail K) bool {
		g.adj[tail].Remove(id)
		return false
	})
	g.edges -= out.Cardinality() + in.Cardinality()
	delete(g.adj, id)
	delete(g.in, id)

	return nil
}

// AddEdge connects from and to, auto-adding missing endpoints.
// Undirected graphs store the edge in both neighbor sets.
// Adding an edge that already exists is a no-op (graphs are simple).
// Returns ErrLoopNotAllowed when from == to.
// Complexity: O(1) amortized.
func (g *Graph[K]) AddEdge(from, to K) error {
	if from == to {
		return fmt.Errorf("AddEdge(%v,%v): %w", from, to, ErrLoopNotAllowed)
	}
	g.AddVertex(from)
	g.AddVertex(to)

	if !g.adj[from].Add(to) {
		return nil // already present
	}
	if g.directed {
		g.in[to].Add(from)
	} else {
		g.adj[to].Add(from)
	}
	g.edges++

	return nil
}

// HasEdge reports whether the edge from→to exists.
// For undirected graphs HasEdge(u,v) == HasEdge(v,u).
// Complexity: O(1).
func (g *Graph[K]) HasEdge(from, to K) bool {
	set, ok := g.adj[from]
	if !ok {
		return false
	}

	return set.Contains(to)
}
