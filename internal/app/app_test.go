package app_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/katalvlaran/resilience/internal/app"
	"github.com/katalvlaran/resilience/internal/config"
	"github.com/katalvlaran/resilience/internal/report"
)

func TestRun_Complete(t *testing.T) {
	cfg := config.Default()
	cfg.Complete = 4
	cfg.Strategy = "targeted"

	out := &bytes.Buffer{}
	require.NoError(t, app.NewApp(out, cfg, zaptest.NewLogger(t)).Run(context.Background()))
	assert.Contains(t, out.String(), "curve: 4 3 2 1 0\n")
}

func TestRun_SourceFileJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.txt")
	// two triangles, the second listed one-sided
	require.NoError(t, os.WriteFile(path, []byte("0 1 2\n1 0 2\n2 0 1\n3 4 5\n4 5\n"), 0o600))

	cfg := config.Default()
	cfg.Source = path
	cfg.Symmetrize = true
	cfg.Output = config.OutputJSON

	out := &bytes.Buffer{}
	require.NoError(t, app.NewApp(out, cfg, nil).Run(context.Background()))

	var rep report.Report
	require.NoError(t, json.Unmarshal(out.Bytes(), &rep))
	assert.Equal(t, 6, rep.Nodes)
	assert.Equal(t, 6, rep.Edges)
	assert.Len(t, rep.Order, 6)
	assert.Equal(t, 3, rep.Curve.Initial())
	assert.Equal(t, 0, rep.Curve.Final())
}

func TestRun_StrictSourceRejectsAsymmetry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.txt")
	require.NoError(t, os.WriteFile(path, []byte("0 1\n1\n"), 0o600))

	cfg := config.Default()
	cfg.Source = path
	err := app.NewApp(&bytes.Buffer{}, cfg, nil).Run(context.Background())
	require.Error(t, err)
}

func TestGraph_ErdosRenyiIsSeeded(t *testing.T) {
	cfg := config.Default()
	cfg.ERNodes = 40
	cfg.ERProbability = 0.1
	cfg.Seed = 7

	a, err := app.NewApp(nil, cfg, nil).Graph(context.Background())
	require.NoError(t, err)
	b, err := app.NewApp(nil, cfg, nil).Graph(context.Background())
	require.NoError(t, err)
	assert.Equal(t, a.AdjacencyList(), b.AdjacencyList())
	assert.Equal(t, 40, a.VertexCount())
}

func TestGraph_NoSource(t *testing.T) {
	_, err := app.NewApp(nil, config.Default(), nil).Graph(context.Background())
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestNewLogger(t *testing.T) {
	l, err := app.NewLogger("debug")
	require.NoError(t, err)
	assert.NotNil(t, l)

	_, err = app.NewLogger("shout")
	assert.Error(t, err)
}
