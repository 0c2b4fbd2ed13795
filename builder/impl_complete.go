// SPDX-License-Identifier: MIT
// Package: resilience/builder
//
// impl_complete.go — implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 0 (else ErrTooFewVertices); n == 0 yields an empty graph.
//   • Adds vertices 0..n-1 in ascending order.
//   • Emits each unordered pair {i,j} with i<j once; directed graphs also get j→i.
//
// Complexity:
//   • Time: O(n) vertices + O(n²) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/resilience/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 0
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph[int], _ builderConfig) error {
		if err := validateMin(methodComplete, n, minCompleteNodes); err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			g.AddVertex(i)
		}
		directed := g.Directed()
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := g.AddEdge(i, j); err != nil {
					return fmt.Errorf("%s: AddEdge(%d→%d): %w", methodComplete, i, j, err)
				}
				// K_n on a digraph needs both orientations.
				if directed {
					if err := g.AddEdge(j, i); err != nil {
						return fmt.Errorf("%s: AddEdge(%d→%d): %w", methodComplete, j, i, err)
					}
				}
			}
		}

		return nil
	}
}
