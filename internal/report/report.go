// Package report runs one attack-and-measure analysis and renders its result.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/resilience/attack"
	"github.com/katalvlaran/resilience/core"
	"github.com/katalvlaran/resilience/internal/config"
	"github.com/katalvlaran/resilience/resilience"
)

// Report is the outcome of attacking one graph.
type Report struct {
	Strategy attack.Strategy  `json:"strategy"`
	Nodes    int              `json:"nodes"`
	Edges    int              `json:"edges"`
	Order    []int            `json:"order"`
	Curve    resilience.Curve `json:"curve"`
}

// Analyze computes the attack order for s on g and replays it on a copy,
// so g itself is left unmodified. seed only matters for attack.Random;
// seed 0 selects the same default sequence as a nil RNG.
func Analyze(g *core.Graph[int], s attack.Strategy, seed int64, logger *zap.Logger) (*Report, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	order, err := attack.Order(g, s, attack.NewRand(seed))
	if err != nil {
		return nil, err
	}
	logger.Debug("attack order computed", zap.String("strategy", string(s)), zap.Int("length", len(order)))

	curve, err := resilience.Compute(g.Clone(), order, resilience.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	return &Report{
		Strategy: s,
		Nodes:    g.VertexCount(),
		Edges:    g.EdgeCount(),
		Order:    order,
		Curve:    curve,
	}, nil
}

// Write renders r to w in the given format (config.OutputText or
// config.OutputJSON).
func Write(w io.Writer, r *Report, format string) error {
	switch strings.ToLower(format) {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case config.OutputText, "":
		_, err := fmt.Fprintf(w, "strategy: %s\nnodes: %d\nedges: %d\norder: %s\ncurve: %s\n",
			r.Strategy, r.Nodes, r.Edges, joinInts(r.Order), joinInts(r.Curve))
		return err
	}

	return fmt.Errorf("report: unknown output format %q", format)
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprint(x)
	}

	return strings.Join(parts, " ")
}
