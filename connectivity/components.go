package connectivity

import (
	"cmp"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/resilience/core"
)

// Components enumerates the connected components of an undirected graph.
// It repeatedly picks the smallest unassigned vertex, collects its component
// by BFS, and continues until every vertex belongs to exactly one set.
//
// Time:   O(V + E) plus O(V·log V) to order the seeds.
// Memory: O(V) for the shared seen-set and the output.
func Components[K cmp.Ordered](g *core.Graph[K]) ([]mapset.Set[K], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.Directed() {
		return nil, ErrDirectedGraph
	}

	seen := mapset.NewThreadUnsafeSet[K]()
	var comps []mapset.Set[K]
	for _, id := range g.Vertices() {
		if seen.Contains(id) {
			continue
		}
		w := &walker[K]{
			graph: g,
			opts:  DefaultOptions[K](),
			seen:  seen,
			comp:  mapset.NewThreadUnsafeSet[K](),
		}
		if err := w.run(id); err != nil {
			return nil, err
		}
		comps = append(comps, w.comp)
	}

	return comps, nil
}

// LargestComponentSize returns the cardinality of the largest connected
// component, or 0 for an empty graph.
func LargestComponentSize[K cmp.Ordered](g *core.Graph[K]) (int, error) {
	comps, err := Components(g)
	if err != nil {
		return 0, err
	}

	largest := 0
	for _, c := range comps {
		if n := c.Cardinality(); n > largest {
			largest = n
		}
	}

	return largest, nil
}
