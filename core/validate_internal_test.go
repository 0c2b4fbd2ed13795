package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestValidate_DetectsCorruption breaks symmetry behind the public API,
// which is the only way an undirected Graph can become inconsistent.
func TestValidate_DetectsCorruption(t *testing.T) {
	g := NewGraph[int]()
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 3))
	require.NoError(t, g.Validate())

	g.adj[3].Remove(2)
	require.ErrorIs(t, g.Validate(), ErrInconsistentGraph)
}

func TestValidate_DirectedAlwaysValid(t *testing.T) {
	g := NewGraph[int](WithDirected(true))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.Validate())
}
