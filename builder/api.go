// SPDX-License-Identifier: MIT
// Package: resilience/builder
//
// api.go — public entry point tying constructors to a fresh core.Graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/resilience/core"
)

// Constructor adds vertices and edges to g according to cfg.
// Constructors are applied in order by BuildGraph, so several can be composed
// on one graph (later ones see the vertices of earlier ones).
type Constructor func(g *core.Graph[int], cfg builderConfig) error

// BuildGraph creates a graph with gopts, resolves bopts into a config and runs
// every constructor against it.
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - Any sentinel returned by a constructor, wrapped with context.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph[int], error) {
	g := core.NewGraph[int](gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}
