package cli_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/resilience/internal/cli"
	"github.com/katalvlaran/resilience/internal/config"
)

func TestParse_Help(t *testing.T) {
	for _, args := range [][]string{{"-h"}, {}} {
		out := &bytes.Buffer{}
		cfg, exit, err := cli.Parse(args, out)
		require.NoError(t, err)
		assert.True(t, exit)
		assert.Nil(t, cfg)
		assert.Contains(t, out.String(), "Usage:")
	}
}

func TestParse_PositionalSource(t *testing.T) {
	cfg, exit, err := cli.Parse([]string{"-strategy", "random", "-seed", "9", "graph.txt"}, &bytes.Buffer{})
	require.NoError(t, err)
	require.False(t, exit)
	assert.Equal(t, "graph.txt", cfg.Source)
	assert.Equal(t, "random", cfg.Strategy)
	assert.Equal(t, int64(9), cfg.Seed)
	assert.Equal(t, config.OutputText, cfg.Output)
}

func TestParse_FlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
er_nodes       = 100
er_probability = 0.05
strategy       = "targeted"
output         = "json"
`), 0o600))

	cfg, _, err := cli.Parse([]string{"-config", path, "-output", "text", "-er-p", "0.1"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.ERNodes)
	assert.InDelta(t, 0.1, cfg.ERProbability, 1e-12)
	assert.Equal(t, "targeted", cfg.Strategy, "not overridden")
	assert.Equal(t, "text", cfg.Output)
}

func TestParse_Errors(t *testing.T) {
	cases := map[string][]string{
		"unknown flag":    {"--this-is-not-a-valid-flag"},
		"bad strategy":    {"-complete", "4", "-strategy", "degree"},
		"two sources":     {"-complete", "4", "graph.txt"},
		"two positionals": {"a.txt", "b.txt"},
		"missing config":  {"-config", "/does/not/exist.hcl"},
		"NaN probability": {"-er-nodes", "5", "-er-p", "NaN"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := cli.Parse(args, &bytes.Buffer{})
			require.Error(t, err)
			var exitErr *cli.ExitError
			require.True(t, errors.As(err, &exitErr))
			assert.Equal(t, 2, exitErr.Code)
		})
	}
}
