// Package core provides the in-memory Graph Store used by every other package
// of the resilience module.
//
// A Graph G = (V,E) maps each vertex ID to the set of its neighbor IDs:
//
//	adj[u] = { v | (u,v) ∈ E }
//
// Undirected graphs keep the symmetry invariant v ∈ adj[u] ⇔ u ∈ adj[v].
// Directed graphs drop it, and additionally keep an in-neighbor index so that
// removing a vertex never scans the whole graph.
//
// Properties:
//
//   - Generic vertex IDs: any cmp.Ordered type (int, string, …).
//   - Simple graphs only: self-loops are rejected (ErrLoopNotAllowed) and
//     adding an existing edge is a no-op.
//   - Deterministic iteration: Vertices() and Neighbors() return sorted slices.
//   - Explicit ownership: Clone() deep-copies the graph; no neighbor set is
//     ever shared between two Graph values.
//
// Core Methods:
//
//	// Construction
//	NewGraph[K](opts ...GraphOption) *Graph[K]                 // O(1)
//	FromAdjacency[K](adj map[K][]K, opts ...) (*Graph[K], error) // O(V+E)
//
//	// Vertex / edge lifecycle
//	AddVertex(id K)              // O(1)
//	AddEdge(from, to K) error    // O(1)
//	RemoveVertex(id K) error     // O(deg(id))
//
//	// Query
//	HasVertex(id K) bool                 // O(1)
//	HasEdge(from, to K) bool             // O(1)
//	Neighbors(id K) ([]K, error)         // O(d·log d), sorted
//	EachNeighbor(id K, fn) error         // O(d), unordered
//	Degree(id K) (int, error)            // O(1)
//	InDegree(id K) (int, error)          // O(1)
//	Vertices() []K                       // O(V·log V), sorted
//	VertexCount(), EdgeCount() int       // O(1)
//
//	// Whole-graph
//	Clone() *Graph[K]                    // O(V+E)
//	AdjacencyList() map[K][]K            // O(V+E·log d)
//	Validate() error                     // O(V+E)
//
// Concurrency:
//
//	A Graph is not safe for concurrent mutation. Ownership is single-writer:
//	whoever holds the pointer may mutate it; pass Clone() to anything that must
//	not observe or cause mutations.
//
// Errors:
//
//	ErrVertexNotFound    – operation referenced an absent vertex
//	ErrLoopNotAllowed    – self-loop (from == to)
//	ErrInconsistentGraph – undirected adjacency is not symmetric
package core
