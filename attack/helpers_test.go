package attack_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/resilience/builder"
	"github.com/katalvlaran/resilience/core"
)

// removalDegrees replays order on a copy of g and records the degree of each
// vertex at the moment it is removed.
func removalDegrees(t testing.TB, g *core.Graph[int], order []int) []int {
	t.Helper()
	work := g.Clone()
	out := make([]int, 0, len(order))
	for _, id := range order {
		d, err := work.Degree(id)
		require.NoError(t, err)
		out = append(out, d)
		require.NoError(t, work.RemoveVertex(id))
	}

	return out
}

// requirePermutation asserts order lists every vertex of g exactly once.
func requirePermutation(t testing.TB, g *core.Graph[int], order []int) {
	t.Helper()
	require.Len(t, order, g.VertexCount())
	seen := make(map[int]bool, len(order))
	for _, id := range order {
		require.Truef(t, g.HasVertex(id), "unknown vertex %d", id)
		require.Falsef(t, seen[id], "vertex %d repeated", id)
		seen[id] = true
	}
}

func randomGraph(t testing.TB, seed int64, n int, p float64) *core.Graph[int] {
	t.Helper()
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(seed)},
		builder.RandomSparse(n, p))
	require.NoError(t, err)

	return g
}

func completeGraph(t testing.TB, n int) *core.Graph[int] {
	t.Helper()
	g, err := builder.BuildGraph(nil, nil, builder.Complete(n))
	require.NoError(t, err)

	return g
}
