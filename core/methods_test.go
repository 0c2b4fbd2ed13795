package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/resilience/core"
)

type GraphSuite struct {
	suite.Suite
	g *core.Graph[int]
}

func (s *GraphSuite) SetupTest() {
	// Undirected by default; individual tests may override
	s.g = core.NewGraph[int]()
}

func (s *GraphSuite) TestAddVertexAndHasVertex() {
	require := require.New(s.T())
	require.False(s.g.HasVertex(1), "empty graph should not have 1")

	s.g.AddVertex(1)
	require.True(s.g.HasVertex(1), "graph should have 1 after AddVertex")

	// Idempotence: adding again does not change count
	s.g.AddVertex(1)
	require.Equal(1, s.g.VertexCount(), "adding duplicate vertex should not increase count")
}

func (s *GraphSuite) TestAddEdgeMirrorsAndDedups() {
	require := require.New(s.T())

	require.NoError(s.g.AddEdge(1, 2))
	require.True(s.g.HasVertex(1) && s.g.HasVertex(2), "AddEdge should auto-add vertices")
	require.True(s.g.HasEdge(1, 2))
	require.True(s.g.HasEdge(2, 1), "undirected edge must be mirrored")

	// Second insert of the same edge (either direction) is a no-op
	require.NoError(s.g.AddEdge(1, 2))
	require.NoError(s.g.AddEdge(2, 1))
	require.Equal(1, s.g.EdgeCount())
}

func (s *GraphSuite) TestAddEdgeRejectsSelfLoop() {
	require := require.New(s.T())
	err := s.g.AddEdge(3, 3)
	require.ErrorIs(err, core.ErrLoopNotAllowed)
	require.False(s.g.HasVertex(3), "rejected loop must not add its endpoint")
}

func (s *GraphSuite) TestRemoveVertexUndirected() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge(0, 1))
	require.NoError(s.g.AddEdge(0, 2))
	require.NoError(s.g.AddEdge(1, 2))

	require.NoError(s.g.RemoveVertex(0))
	require.False(s.g.HasVertex(0))
	require.False(s.g.HasEdge(1, 0), "mirror edge 1→0 should be removed")
	require.False(s.g.HasEdge(2, 0), "mirror edge 2→0 should be removed")
	require.True(s.g.HasEdge(1, 2), "unrelated edge must survive")
	require.Equal(1, s.g.EdgeCount())
	require.NoError(s.g.Validate())
}

func (s *GraphSuite) TestRemoveVertexMissing() {
	err := s.g.RemoveVertex(42)
	s.Require().ErrorIs(err, core.ErrVertexNotFound)

	// Removing twice fails the second time
	s.g.AddVertex(7)
	s.Require().NoError(s.g.RemoveVertex(7))
	s.Require().ErrorIs(s.g.RemoveVertex(7), core.ErrVertexNotFound)
}

func (s *GraphSuite) TestRemoveVertexDirected() {
	require := require.New(s.T())
	dg := core.NewGraph[string](core.WithDirected(true))
	require.NoError(dg.AddEdge("X", "Y"))
	require.NoError(dg.AddEdge("Z", "Y"))
	require.NoError(dg.AddEdge("Y", "W"))
	require.False(dg.HasEdge("Y", "X"), "directed edges are not mirrored")

	require.NoError(dg.RemoveVertex("Y"))
	require.False(dg.HasEdge("X", "Y"))
	require.False(dg.HasEdge("Z", "Y"))
	require.Equal(0, dg.EdgeCount())

	in, err := dg.InDegree("W")
	require.NoError(err)
	require.Equal(0, in, "W lost its only in-edge")
}

func (s *GraphSuite) TestNeighborsSortedAndDegree() {
	require := require.New(s.T())
	for _, v := range []int{5, 3, 9, 1} {
		require.NoError(s.g.AddEdge(0, v))
	}

	nb, err := s.g.Neighbors(0)
	require.NoError(err)
	require.Equal([]int{1, 3, 5, 9}, nb)

	d, err := s.g.Degree(0)
	require.NoError(err)
	require.Equal(4, d)

	_, err = s.g.Neighbors(100)
	require.ErrorIs(err, core.ErrVertexNotFound)
	_, err = s.g.Degree(100)
	require.ErrorIs(err, core.ErrVertexNotFound)
}

func (s *GraphSuite) TestEachNeighborStopsEarly() {
	require := require.New(s.T())
	for v := 1; v <= 5; v++ {
		require.NoError(s.g.AddEdge(0, v))
	}

	seen := 0
	require.NoError(s.g.EachNeighbor(0, func(int) bool {
		seen++
		return seen < 2
	}))
	require.Equal(2, seen)

	require.ErrorIs(s.g.EachNeighbor(-1, func(int) bool { return true }), core.ErrVertexNotFound)
}

func (s *GraphSuite) TestVerticesSorted() {
	for _, v := range []int{4, 2, 8, 6} {
		s.g.AddVertex(v)
	}
	s.Require().Equal([]int{2, 4, 6, 8}, s.g.Vertices())
}

func (s *GraphSuite) TestCloneIsIndependent() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge(0, 1))
	require.NoError(s.g.AddEdge(1, 2))

	c := s.g.Clone()
	require.Equal(s.g.AdjacencyList(), c.AdjacencyList())

	require.NoError(c.RemoveVertex(1))
	require.True(s.g.HasEdge(0, 1), "original must be untouched by clone mutation")
	require.Equal(2, s.g.EdgeCount())
	require.Equal(0, c.EdgeCount())

	require.NoError(s.g.AddEdge(0, 2))
	require.False(c.HasEdge(0, 2), "clone must be untouched by original mutation")
}

func (s *GraphSuite) TestCloneDirectedKeepsInIndex() {
	require := require.New(s.T())
	dg := core.NewGraph[int](core.WithDirected(true))
	require.NoError(dg.AddEdge(1, 2))

	c := dg.Clone()
	require.True(c.Directed())
	require.NoError(c.RemoveVertex(2))
	require.False(c.HasEdge(1, 2))
	require.True(dg.HasEdge(1, 2))
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}
