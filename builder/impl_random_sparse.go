// SPDX-License-Identifier: MIT
// Package: resilience/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Model:
//   - Erdős–Rényi G(n,p): include each admissible edge independently with prob p.
//   - Undirected: iterate unordered pairs {i,j} with i<j.
//   - Directed: iterate ordered pairs (i,j), i≠j.
//
// Contract:
//   - n ≥ 0 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource);
//     p ∈ {0,1} is deterministic and needs no RNG.
//
// Determinism:
//   - Stable trial order: for each i asc, j asc. A fixed seed gives a fixed graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/resilience/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 0
)

// RandomSparse returns a Constructor that samples an Erdős–Rényi graph
// over n vertices with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph[int], cfg builderConfig) error {
		if err := validateMin(methodRandomSparse, n, minRandomSparseVertices); err != nil {
			return err
		}
		if err := validateProbability(methodRandomSparse, p); err != nil {
			return err
		}
		rng := cfg.rng
		if rng == nil && p != MinProbability && p != MaxProbability {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		for i := 0; i < n; i++ {
			g.AddVertex(i)
		}

		// keep decides one Bernoulli trial; p ∈ {0,1} never touches the RNG.
		keep := func() bool {
			switch p {
			case MinProbability:
				return false
			case MaxProbability:
				return true
			}
			return rng.Float64() < p
		}

		directed := g.Directed()
		for i := 0; i < n; i++ {
			start := i + 1
			if directed {
				start = 0
			}
			for j := start; j < n; j++ {
				if i == j || !keep() {
					continue
				}
				if err := g.AddEdge(i, j); err != nil {
					return fmt.Errorf("%s: AddEdge(%d→%d): %w", methodRandomSparse, i, j, err)
				}
			}
		}

		return nil
	}
}
