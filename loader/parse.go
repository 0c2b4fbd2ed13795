package loader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/resilience/core"
)

// Parse reads an adjacency text graph from r.
//
// Errors:
//   - ErrSyntax for a non-integer token, with its line number.
//   - ErrDuplicateNode when a node ID starts two lines.
//   - core.ErrInconsistentGraph for asymmetric undirected input
//     (unless WithSymmetrize is set).
//   - core.ErrLoopNotAllowed for a node listing itself.
func Parse(r io.Reader, opts ...Option) (*core.Graph[int], error) {
	o := newOptions(opts...)

	adj, err := readAdjacency(r)
	if err != nil {
		return nil, err
	}

	g, err := build(adj, o)
	if err != nil {
		return nil, err
	}
	o.logger.Info("graph loaded",
		zap.Int("nodes", g.VertexCount()),
		zap.Int("edges", g.EdgeCount()),
		zap.Bool("directed", g.Directed()))

	return g, nil
}

func readAdjacency(r io.Reader) (map[int][]int, error) {
	adj := make(map[int][]int)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}

		ids := make([]int, len(fields))
		for i, tok := range fields {
			id, err := strconv.Atoi(tok)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: bad node id %q", ErrSyntax, line, tok)
			}
			ids[i] = id
		}
		if _, dup := adj[ids[0]]; dup {
			return nil, fmt.Errorf("%w: line %d: node %d", ErrDuplicateNode, line, ids[0])
		}
		adj[ids[0]] = ids[1:]
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("loader: read: %w", err)
	}

	return adj, nil
}

func build(adj map[int][]int, o options) (*core.Graph[int], error) {
	if o.directed {
		g, err := core.FromAdjacency(adj, core.WithDirected(true))
		if err != nil {
			return nil, fmt.Errorf("loader: %w", err)
		}
		return g, nil
	}
	if !o.symmetrize {
		g, err := core.FromAdjacency(adj)
		if err != nil {
			return nil, fmt.Errorf("loader: %w", err)
		}
		return g, nil
	}

	g := core.NewGraph[int]()
	for id := range adj {
		g.AddVertex(id)
	}
	for from, nbrs := range adj {
		for _, to := range nbrs {
			if err := g.AddEdge(from, to); err != nil {
				return nil, fmt.Errorf("loader: %w", err)
			}
		}
	}

	return g, nil
}
