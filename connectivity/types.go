// Package connectivity provides tunable options and error definitions
// for breadth-first reachability over a core.Graph.
package connectivity

import (
	"cmp"
	"errors"
	"fmt"
)

// Sentinel errors for connectivity queries.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("connectivity: graph is nil")

	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("connectivity: start vertex not found")

	// ErrDirectedGraph is returned when component enumeration is requested
	// on a directed graph.
	ErrDirectedGraph = errors.New("connectivity: directed graphs not supported")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("connectivity: invalid option supplied")
)

// Option configures Visited via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation
// when Visited is invoked.
type Option[K cmp.Ordered] func(*Options[K])

// Options holds parameters and callbacks that customize a traversal.
type Options[K cmp.Ordered] struct {
	// OnVisit is called when a vertex is dequeued, with its BFS depth.
	// Returning an error aborts the traversal.
	OnVisit func(id K, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 disables the limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no depth limit and a no-op hook.
func DefaultOptions[K cmp.Ordered]() Options[K] {
	return Options[K]{
		OnVisit:  func(K, int) error { return nil },
		MaxDepth: 0,
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the traversal.
func WithOnVisit[K cmp.Ordered](fn func(id K, depth int) error) Option[K] {
	return func(o *Options[K]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the traversal to vertices at most d edges from start.
//
//	d > 0: limit to depth d
//	d == 0: no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth[K cmp.Ordered](d int) Option[K] {
	return func(o *Options[K]) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}
