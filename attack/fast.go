package attack

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/resilience/core"
)

// FastTargetedOrder returns a max-degree attack order computed with degree
// buckets instead of a scan per removal.
//
// Implementation:
//   - Stage 1: copy g, index its vertices densely in ascending ID order and
//     derive per-vertex neighbor lists in ascending index order.
//   - Stage 2: bucket every vertex by its initial degree.
//   - Stage 3: walk buckets from the highest degree down. For each non-empty
//     bucket pop a vertex, move every live neighbor one bucket down, delete the
//     vertex from the copy and append it to the result.
//
// Asymmetric input is rejected up front by g.Validate(). As a second line of
// defense, each bucket move also compares the neighbor's degree in the copy
// with its bucket, and the result length is checked against n; either
// mismatch yields core.ErrInconsistentGraph.
//
// The caller's graph is not modified.
//
// Complexity: O(n·log n + m) time (the log factor is the one-off ID sort),
// O(n + m) space.
func FastTargetedOrder[K cmp.Ordered](g *core.Graph[K]) ([]K, error) {
	if err := checkGraph(g); err != nil {
		return nil, err
	}

	work := g.Clone()
	ids := work.Vertices()
	n := len(ids)
	index := make(map[K]int, n)
	for i, id := range ids {
		index[id] = i
	}

	// Scanning tails in ascending index order appends each tail to its heads'
	// lists in ascending order, so no per-list sort is needed.
	adj := make([][]int, n)
	deg := make([]int, n)
	for u, id := range ids {
		if err := work.EachNeighbor(id, func(nbr K) bool {
			v := index[nbr]
			adj[v] = append(adj[v], u)
			deg[u]++
			return true
		}); err != nil {
			return nil, fmt.Errorf("attack: %w", err)
		}
	}

	b := newDegreeBuckets(deg)
	alive := make([]bool, n)
	for i := range alive {
		alive[i] = true
	}
	order := make([]K, 0, n)

	for d := b.maxDegree(); d >= 0; d-- {
		for {
			i, ok := b.pop(d)
			if !ok {
				break
			}
			alive[i] = false
			for _, v := range adj[i] {
				if !alive[v] {
					continue
				}
				if err := moveDown(work, b, ids[v], v); err != nil {
					return nil, err
				}
			}
			if err := work.RemoveVertex(ids[i]); err != nil {
				return nil, fmt.Errorf("attack: %w", err)
			}
			order = append(order, ids[i])
		}
	}

	if len(order) != n {
		return nil, fmt.Errorf("attack: emitted %d of %d vertices: %w", len(order), n, core.ErrInconsistentGraph)
	}

	return order, nil
}

// moveDown checks that the bucket of vertex v still matches its degree in
// work, then lowers it by one.
func moveDown[K cmp.Ordered](work *core.Graph[K], b *degreeBuckets, id K, v int) error {
	cur, err := work.Degree(id)
	if err != nil {
		return fmt.Errorf("attack: %w", err)
	}
	if cur != b.deg[v] || !b.decrement(v) {
		return fmt.Errorf("attack: vertex %v has degree %d but sits in bucket %d: %w",
			id, cur, b.deg[v], core.ErrInconsistentGraph)
	}

	return nil
}
