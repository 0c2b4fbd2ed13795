// Package core defines the Graph type, its construction options and the
// sentinel errors shared by the Graph Store.
//
// Errors:
//
//	ErrVertexNotFound    - requested vertex does not exist.
//	ErrLoopNotAllowed    - self-loop (from == to) was requested.
//	ErrInconsistentGraph - undirected adjacency is not symmetric.
package core

import (
	"cmp"
	"errors"

	mapset "github.com/deckarep/golang-set/v2"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted; graphs are simple.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrInconsistentGraph indicates an undirected graph whose adjacency is not
	// symmetric (v ∈ adj[u] but u ∉ adj[v]).
	ErrInconsistentGraph = errors.New("core: inconsistent undirected adjacency")
)

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(o *graphOptions)

// graphOptions is the non-generic option target, so options can be shared
// between graphs of different vertex types.
type graphOptions struct {
	directed bool
}

// WithDirected sets whether edges are one-way (true) or mirrored (false).
// Graphs are undirected by default.
func WithDirected(directed bool) GraphOption {
	return func(o *graphOptions) { o.directed = directed }
}

// Graph is the adjacency-set graph.
//
// adj[u] holds the out-neighbors of u (all neighbors for undirected graphs).
// in[v] holds the in-neighbors of v and is only maintained for directed graphs.
// edges counts logical edges: an undirected edge {u,v} counts once.
type Graph[K cmp.Ordered] struct {
	directed bool

	adj   map[K]mapset.Set[K]
	in    map[K]mapset.Set[K]
	edges int
}

// NewGraph creates an empty Graph. By default the graph is undirected.
// Complexity: O(1)
func NewGraph[K cmp.Ordered](opts ...GraphOption) *Graph[K] {
	var o graphOptions
	for _, opt := range opts {
		opt(&o)
	}

	g := &Graph[K]{
		directed: o.directed,
		adj:      make(map[K]mapset.Set[K]),
	}
	if g.directed {
		g.in = make(map[K]mapset.Set[K])
	}

	return g
}

// newSet allocates a neighbor set. Graphs are single-writer, so the
// lock-free set variant is used throughout.
func newSet[K cmp.Ordered]() mapset.Set[K] {
	return mapset.NewThreadUnsafeSet[K]()
}
