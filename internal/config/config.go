// Package config holds the run configuration of the resilience command and
// decodes it from HCL files.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/resilience/attack"
)

// ErrInvalidConfig is returned by Validate and wraps every rule violation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config describes one run: where the graph comes from, how it is attacked
// and how results are reported. Exactly one graph source (Source, Complete
// or ERNodes) is required unless Listen is set.
type Config struct {
	Source        string  `hcl:"source,optional"`
	Symmetrize    bool    `hcl:"symmetrize,optional"`
	Complete      int     `hcl:"complete,optional"`
	ERNodes       int     `hcl:"er_nodes,optional"`
	ERProbability float64 `hcl:"er_probability,optional"`
	Strategy      string  `hcl:"strategy,optional"`
	Seed          int64   `hcl:"seed,optional"`
	Output        string  `hcl:"output,optional"`
	LogLevel      string  `hcl:"log_level,optional"`
	Listen        string  `hcl:"listen,optional"`
}

// Default returns a Config with every optional setting filled in.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()

	return c
}

func (c *Config) applyDefaults() {
	if c.Strategy == "" {
		c.Strategy = string(attack.FastTargeted)
	}
	if c.Output == "" {
		c.Output = OutputText
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Parse decodes HCL source. filename is only used in diagnostics.
func Parse(src []byte, filename string) (*Config, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %s", filename, diags.Error())
	}

	return decode(file, filename)
}

// LoadFile reads and decodes the HCL file at path.
func LoadFile(path string) (*Config, error) {
	file, diags := hclparse.NewParser().ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %s", path, diags.Error())
	}

	return decode(file, path)
}

func decode(file *hcl.File, name string) (*Config, error) {
	var c Config
	if diags := gohcl.DecodeBody(file.Body, nil, &c); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %s", name, diags.Error())
	}
	c.applyDefaults()

	return &c, nil
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	sources := 0
	if c.Source != "" {
		sources++
	}
	if c.Complete > 0 {
		sources++
	}
	if c.ERNodes > 0 {
		sources++
	}
	switch {
	case sources > 1:
		return fmt.Errorf("%w: source, complete and er_nodes are mutually exclusive", ErrInvalidConfig)
	case sources == 0 && c.Listen == "":
		return fmt.Errorf("%w: no graph source given", ErrInvalidConfig)
	}

	if c.Complete < 0 {
		return fmt.Errorf("%w: complete must be >= 0, got %d", ErrInvalidConfig, c.Complete)
	}
	if c.ERNodes < 0 {
		return fmt.Errorf("%w: er_nodes must be >= 0, got %d", ErrInvalidConfig, c.ERNodes)
	}
	if math.IsNaN(c.ERProbability) || c.ERProbability < 0 || c.ERProbability > 1 {
		return fmt.Errorf("%w: er_probability must be in [0,1], got %v", ErrInvalidConfig, c.ERProbability)
	}
	if _, err := attack.ParseStrategy(c.Strategy); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	switch strings.ToLower(c.Output) {
	case OutputText, OutputJSON:
	default:
		return fmt.Errorf("%w: output must be %q or %q, got %q", ErrInvalidConfig, OutputText, OutputJSON, c.Output)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}
