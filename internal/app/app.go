// Package app wires configuration, graph acquisition and reporting into a
// single run of the resilience command.
package app

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/resilience/attack"
	"github.com/katalvlaran/resilience/builder"
	"github.com/katalvlaran/resilience/core"
	"github.com/katalvlaran/resilience/internal/config"
	"github.com/katalvlaran/resilience/internal/report"
	"github.com/katalvlaran/resilience/internal/server"
	"github.com/katalvlaran/resilience/loader"
)

// App runs one configured analysis, or serves the HTTP API.
type App struct {
	out    io.Writer
	cfg    *config.Config
	logger *zap.Logger
}

// NewApp returns an App writing reports to out. A nil logger disables logging.
func NewApp(out io.Writer, cfg *config.Config, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &App{out: out, cfg: cfg, logger: logger}
}

// NewLogger builds a production zap logger at the named level
// ("debug", "info", "warn", "error").
func NewLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)

	return zc.Build()
}

// Run executes the configured work. With Listen set it serves the HTTP API
// until ctx is canceled; otherwise it analyzes one graph and writes the
// report.
func (a *App) Run(ctx context.Context) error {
	if a.cfg.Listen != "" {
		return server.Serve(ctx, a.cfg.Listen, a.logger)
	}

	g, err := a.Graph(ctx)
	if err != nil {
		return err
	}
	strategy, err := attack.ParseStrategy(a.cfg.Strategy)
	if err != nil {
		return err
	}

	rep, err := report.Analyze(g, strategy, a.cfg.Seed, a.logger)
	if err != nil {
		return err
	}
	a.logger.Info("analysis finished",
		zap.String("strategy", string(strategy)),
		zap.Int("nodes", rep.Nodes),
		zap.Int("initial", rep.Curve.Initial()),
		zap.Int("final", rep.Curve.Final()))

	return report.Write(a.out, rep, a.cfg.Output)
}

// Graph obtains the graph named by the configuration: a loaded source, a
// complete graph or an Erdős–Rényi graph.
func (a *App) Graph(ctx context.Context) (*core.Graph[int], error) {
	switch {
	case a.cfg.Source != "":
		opts := []loader.Option{loader.WithLogger(a.logger)}
		if a.cfg.Symmetrize {
			opts = append(opts, loader.WithSymmetrize())
		}
		return loader.Load(ctx, a.cfg.Source, opts...)
	case a.cfg.Complete > 0:
		return builder.BuildGraph(nil, nil, builder.Complete(a.cfg.Complete))
	case a.cfg.ERNodes > 0:
		return builder.BuildGraph(nil,
			[]builder.BuilderOption{builder.WithSeed(a.cfg.Seed)},
			builder.RandomSparse(a.cfg.ERNodes, a.cfg.ERProbability))
	}

	return nil, fmt.Errorf("%w: no graph source given", config.ErrInvalidConfig)
}
