package connectivity

import (
	"cmp"
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/resilience/core"
)

// queueItem pairs a vertex ID with its BFS depth.
type queueItem[K cmp.Ordered] struct {
	id    K
	depth int
}

// walker encapsulates mutable BFS state.
// seen may be shared between walks (component enumeration); comp, when
// non-nil, collects the vertices reached by this walk only.
type walker[K cmp.Ordered] struct {
	graph *core.Graph[K]
	opts  Options[K]
	queue []queueItem[K]
	seen  mapset.Set[K]
	comp  mapset.Set[K]
}

// Visited returns the set of vertices reachable from start, start included.
// On directed graphs edges are followed from tail to head.
// Returns ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, or the
// error of an OnVisit hook.
func Visited[K cmp.Ordered](g *core.Graph[K], start K, opts ...Option[K]) (mapset.Set[K], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions[K]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartVertexNotFound, start)
	}

	reached := mapset.NewThreadUnsafeSet[K]()
	w := &walker[K]{graph: g, opts: o, seen: reached}
	if err := w.run(start); err != nil {
		return nil, err
	}

	return reached, nil
}

// run seeds the queue with start and drains it.
func (w *walker[K]) run(start K) error {
	w.enqueue(start, 0)
	// head index instead of re-slicing keeps the backing array reusable.
	for head := 0; head < len(w.queue); head++ {
		item := w.queue[head]
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("connectivity: OnVisit error at %v: %w", item.id, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	w.queue = w.queue[:0]

	return nil
}

// enqueue marks id seen and appends it to the queue.
func (w *walker[K]) enqueue(id K, depth int) {
	w.seen.Add(id)
	if w.comp != nil {
		w.comp.Add(id)
	}
	w.queue = append(w.queue, queueItem[K]{id: id, depth: depth})
}

// enqueueNeighbors enqueues every unseen neighbor within MaxDepth.
func (w *walker[K]) enqueueNeighbors(item queueItem[K]) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}

	return w.graph.EachNeighbor(item.id, func(nbr K) bool {
		if !w.seen.Contains(nbr) {
			w.enqueue(nbr, next)
		}
		return true
	})
}
