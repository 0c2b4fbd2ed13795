package connectivity_test

import (
	"errors"
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/resilience/connectivity"
	"github.com/katalvlaran/resilience/core"
)

// TestVisited_Errors verifies that invalid inputs and options are rejected.
func TestVisited_Errors(t *testing.T) {
	_, err := connectivity.Visited[int](nil, 0)
	assert.ErrorIs(t, err, connectivity.ErrGraphNil)

	g := core.NewGraph[int]()
	_, err = connectivity.Visited(g, 0)
	assert.ErrorIs(t, err, connectivity.ErrStartVertexNotFound)

	g.AddVertex(0)
	_, err = connectivity.Visited(g, 0, connectivity.WithMaxDepth[int](-1))
	assert.ErrorIs(t, err, connectivity.ErrOptionViolation)
}

// TestVisited_SingleVertex covers the trivial one-vertex graph.
func TestVisited_SingleVertex(t *testing.T) {
	g := core.NewGraph[int]()
	g.AddVertex(7)

	got, err := connectivity.Visited(g, 7)
	require.NoError(t, err)
	assert.True(t, got.Equal(mapset.NewThreadUnsafeSet(7)))
}

// TestVisited_Disconnected ensures only the start's component is explored.
func TestVisited_Disconnected(t *testing.T) {
	g := twoTriangles(t)

	got, err := connectivity.Visited(g, 4)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{3, 4, 5}, got.ToSlice())
}

// TestVisited_EachVertexOnce checks that a dense graph with many paths to
// every vertex still visits each vertex exactly once.
func TestVisited_EachVertexOnce(t *testing.T) {
	g := complete(t, 6)

	visits := map[int]int{}
	_, err := connectivity.Visited(g, 0, connectivity.WithOnVisit(func(id int, _ int) error {
		visits[id]++
		return nil
	}))
	require.NoError(t, err)
	require.Len(t, visits, 6)
	for id, n := range visits {
		assert.Equalf(t, 1, n, "vertex %d visited %d times", id, n)
	}
}

// TestVisited_MaxDepth verifies depth limiting on a path 0-1-2-3.
func TestVisited_MaxDepth(t *testing.T) {
	g := core.NewGraph[int]()
	for i := 0; i < 3; i++ {
		require.NoError(t, g.AddEdge(i, i+1))
	}

	got, err := connectivity.Visited(g, 0, connectivity.WithMaxDepth[int](1))
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{0, 1}, got.ToSlice())

	got, err = connectivity.Visited(g, 0, connectivity.WithMaxDepth[int](0))
	require.NoError(t, err)
	assert.Equal(t, 4, got.Cardinality(), "0 means no limit")
}

// TestVisited_HookDepthsAndAbort asserts BFS depths and error propagation.
func TestVisited_HookDepthsAndAbort(t *testing.T) {
	g := core.NewGraph[string]()
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("B", "C"))

	depth := map[string]int{}
	_, err := connectivity.Visited(g, "A", connectivity.WithOnVisit(func(id string, d int) error {
		depth[id] = d
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "C": 2}, depth)

	stop := errors.New("stop")
	_, err = connectivity.Visited(g, "A", connectivity.WithOnVisit(func(id string, _ int) error {
		if id == "B" {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
}

// TestVisited_Directed follows edges from tail to head only.
func TestVisited_Directed(t *testing.T) {
	g := core.NewGraph[int](core.WithDirected(true))
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(2, 1))

	got, err := connectivity.Visited(g, 0)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{0, 1}, got.ToSlice())

	got, err = connectivity.Visited(g, 1)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{1}, got.ToSlice())
}
