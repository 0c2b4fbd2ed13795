package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/katalvlaran/resilience/internal/config"
)

// ExitError is an error that carries the process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns the validated Config,
// a boolean telling the caller to exit cleanly (help was printed), or an
// ExitError.
//
// Settings come from an optional HCL file (-config) and are then overridden
// by any flag given explicitly on the command line. A single positional
// argument is taken as the graph source.
func Parse(args []string, output io.Writer) (*config.Config, bool, error) {
	flagSet := flag.NewFlagSet("resilience", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
resilience - measures how a graph falls apart under node attacks.

Usage:
  resilience [options] [GRAPH]

Arguments:
  GRAPH
    Path or http(s) URL of an adjacency text file.

Options:
`)
		flagSet.PrintDefaults()
	}

	defaults := config.Default()
	configFlag := flagSet.String("config", "", "Path to an HCL run configuration.")
	sourceFlag := flagSet.String("source", "", "Path or URL of the graph to load.")
	symFlag := flagSet.Bool("symmetrize", false, "Mirror one-sided edges of the loaded graph.")
	completeFlag := flagSet.Int("complete", 0, "Generate the complete graph on N nodes.")
	erNodesFlag := flagSet.Int("er-nodes", 0, "Generate an Erdős–Rényi graph on N nodes.")
	erPFlag := flagSet.Float64("er-p", 0, "Edge probability of the Erdős–Rényi graph.")
	strategyFlag := flagSet.String("strategy", defaults.Strategy, "Attack strategy: 'targeted', 'fast' or 'random'.")
	seedFlag := flagSet.Int64("seed", 0, "Seed for graph generation and random attacks.")
	outputFlag := flagSet.String("output", defaults.Output, "Report format: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", defaults.LogLevel, "Logging level: 'debug', 'info', 'warn' or 'error'.")
	listenFlag := flagSet.String("listen", "", "Serve the HTTP API on this address instead of running once.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: "at most one GRAPH argument is accepted"}
	}

	cfg := defaults
	if *configFlag != "" {
		fromFile, err := config.LoadFile(*configFlag)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		cfg = fromFile
	}

	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "source":
			cfg.Source = *sourceFlag
		case "symmetrize":
			cfg.Symmetrize = *symFlag
		case "complete":
			cfg.Complete = *completeFlag
		case "er-nodes":
			cfg.ERNodes = *erNodesFlag
		case "er-p":
			cfg.ERProbability = *erPFlag
		case "strategy":
			cfg.Strategy = *strategyFlag
		case "seed":
			cfg.Seed = *seedFlag
		case "output":
			cfg.Output = *outputFlag
		case "log-level":
			cfg.LogLevel = *logLevelFlag
		case "listen":
			cfg.Listen = *listenFlag
		}
	})
	if flagSet.NArg() == 1 {
		cfg.Source = flagSet.Arg(0)
	}

	if cfg.Source == "" && cfg.Complete == 0 && cfg.ERNodes == 0 && cfg.Listen == "" {
		flagSet.Usage()
		return nil, true, nil
	}
	if err := cfg.Validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return cfg, false, nil
}
