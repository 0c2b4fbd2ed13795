package core_test

import (
	"fmt"

	"github.com/katalvlaran/resilience/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// 1) Create an undirected graph keyed by int:
	g := core.NewGraph[int]()

	// 2) Add edges (auto-adds vertices 0, 1, 2):
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(1, 2)
	_ = g.AddEdge(2, 0)

	// 3) Inspect vertices and edges:
	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Edge 1→0 exists?", g.HasEdge(1, 0))

	// 4) Remove a vertex and its edges:
	_ = g.RemoveVertex(1)
	fmt.Println("After removing 1, vertices:", g.Vertices())
	fmt.Println("Edge 0→1 exists?", g.HasEdge(0, 1))

	// Output:
	// Vertices: [0 1 2]
	// Edge 1→0 exists? true
	// After removing 1, vertices: [0 2]
	// Edge 0→1 exists? false
}

// ExampleFromAdjacency shows the raw node→neighbors form used by loaders.
func ExampleFromAdjacency() {
	g, err := core.FromAdjacency(map[string][]string{
		"a": {"b"},
		"b": {"a", "c"},
		"c": {"b"},
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	nb, _ := g.Neighbors("b")
	fmt.Println(g.VertexCount(), g.EdgeCount(), nb)

	_, err = core.FromAdjacency(map[string][]string{"a": {"b"}, "b": {}})
	fmt.Println(err != nil)

	// Output:
	// 3 2 [a c]
	// true
}

// ExampleGraph_Clone shows that a clone can be consumed without touching the source.
func ExampleGraph_Clone() {
	g := core.NewGraph[int]()
	_ = g.AddEdge(0, 1)

	c := g.Clone()
	_ = c.RemoveVertex(0)

	fmt.Println(g.VertexCount(), c.VertexCount())

	// Output:
	// 2 1
}
