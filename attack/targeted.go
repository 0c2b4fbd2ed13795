package attack

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/resilience/core"
)

// checkGraph enforces the preconditions shared by the targeted algorithms.
func checkGraph[K cmp.Ordered](g *core.Graph[K]) error {
	if g == nil {
		return ErrGraphNil
	}
	if g.Directed() {
		return ErrDirectedGraph
	}
	if err := g.Validate(); err != nil {
		return fmt.Errorf("attack: %w", err)
	}

	return nil
}

// TargetedOrder returns the vertices in the order a naive max-degree attack
// removes them: at each step every remaining vertex is scanned, the first one
// (smallest ID) of maximum current degree is removed from a private copy
// together with its edges, and appended to the result.
//
// The caller's graph is not modified.
//
// Complexity: O(n² + m) time, O(n + m) space for the copy.
func TargetedOrder[K cmp.Ordered](g *core.Graph[K]) ([]K, error) {
	if err := checkGraph(g); err != nil {
		return nil, err
	}

	work := g.Clone()
	remaining := work.Vertices()
	order := make([]K, 0, len(remaining))

	for len(remaining) > 0 {
		best, maxDeg := 0, -1
		for i, id := range remaining {
			d, err := work.Degree(id)
			if err != nil {
				return nil, fmt.Errorf("attack: %w", err)
			}
			if d > maxDeg {
				best, maxDeg = i, d
			}
		}

		id := remaining[best]
		if err := work.RemoveVertex(id); err != nil {
			return nil, fmt.Errorf("attack: %w", err)
		}
		remaining = slices.Delete(remaining, best, best+1)
		order = append(order, id)
	}

	return order, nil
}
