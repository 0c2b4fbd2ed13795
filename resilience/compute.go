package resilience

import (
	"cmp"
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
	"go.uber.org/zap"

	"github.com/katalvlaran/resilience/connectivity"
	"github.com/katalvlaran/resilience/core"
)

// Compute removes the vertices of order from g one by one and returns the
// largest component size before the first removal and after each one.
//
// Every entry of order must name a distinct vertex of g; an absent or
// repeated entry yields an error wrapping core.ErrVertexNotFound and g is
// left unmodified. The order may cover a subset of the vertices.
//
// g is mutated: on success it holds exactly the vertices not in order.
//
// Complexity: O(k·(n·log n + m)) for an order of length k; every step
// re-enumerates components from sorted seeds.
func Compute[K cmp.Ordered](g *core.Graph[K], order []K, opts ...Option) (Curve, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.Directed() {
		return nil, ErrDirectedGraph
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := checkOrder(g, order); err != nil {
		return nil, err
	}

	largest, err := connectivity.LargestComponentSize(g)
	if err != nil {
		return nil, fmt.Errorf("resilience: %w", err)
	}
	curve := make(Curve, 0, len(order)+1)
	curve = append(curve, largest)

	for step, id := range order {
		if err = g.RemoveVertex(id); err != nil {
			return nil, fmt.Errorf("resilience: step %d: %w", step+1, err)
		}
		if largest, err = connectivity.LargestComponentSize(g); err != nil {
			return nil, fmt.Errorf("resilience: step %d: %w", step+1, err)
		}
		curve = append(curve, largest)
		o.logger.Debug("vertex removed",
			zap.Any("node", id),
			zap.Int("step", step+1),
			zap.Int("largest", largest))
	}

	o.logger.Info("resilience computed",
		zap.Int("removals", len(order)),
		zap.Int("initial", curve.Initial()),
		zap.Int("final", curve.Final()))

	return curve, nil
}

// checkOrder rejects entries that are missing from g or repeated.
func checkOrder[K cmp.Ordered](g *core.Graph[K], order []K) error {
	seen := mapset.NewThreadUnsafeSetWithSize[K](len(order))
	for i, id := range order {
		if !g.HasVertex(id) {
			return fmt.Errorf("resilience: order[%d]=%v: %w", i, id, core.ErrVertexNotFound)
		}
		if !seen.Add(id) {
			return fmt.Errorf("resilience: order[%d]=%v repeated: %w", i, id, core.ErrVertexNotFound)
		}
	}

	return nil
}
