// Package degree computes in-degree statistics of a core.Graph.
//
// For undirected graphs the in-degree of a vertex is its degree.
package degree

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/katalvlaran/resilience/core"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("degree: graph is nil")

// InDegrees maps every vertex of g to its in-degree. Vertices without
// incoming edges map to 0.
// Complexity: O(V).
func InDegrees[K cmp.Ordered](g *core.Graph[K]) (map[K]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	out := make(map[K]int, g.VertexCount())
	for _, id := range g.Vertices() {
		d, err := g.InDegree(id)
		if err != nil {
			return nil, fmt.Errorf("degree: %w", err)
		}
		out[id] = d
	}

	return out, nil
}

// InDegreeDistribution returns the unnormalized distribution of in-degrees:
// in-degree → number of vertices with that in-degree.
// Complexity: O(V).
func InDegreeDistribution[K cmp.Ordered](g *core.Graph[K]) (map[int]int, error) {
	in, err := InDegrees(g)
	if err != nil {
		return nil, err
	}

	dist := make(map[int]int)
	for _, d := range in {
		dist[d]++
	}

	return dist, nil
}

// Normalize scales dist so that its values sum to 1.
// An empty (or all-zero) distribution yields an empty map.
func Normalize(dist map[int]int) map[int]float64 {
	total := 0
	for _, n := range dist {
		total += n
	}

	out := make(map[int]float64, len(dist))
	if total == 0 {
		return out
	}
	for d, n := range dist {
		out[d] = float64(n) / float64(total)
	}

	return out
}
