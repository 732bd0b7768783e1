package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/flowgraph/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// DefaultFile is read when no file is named explicitly and it exists in
// the working directory.
const DefaultFile = "flowgraph.hcl"

// fileRoot mirrors the settings file. Pointers distinguish an absent
// attribute from a zero value.
type fileRoot struct {
	LogLevel  *string     `hcl:"log_level,optional"`
	LogFormat *string     `hcl:"log_format,optional"`
	MaxDepth  *int        `hcl:"max_depth,optional"`
	Output    *outputFile `hcl:"output,block"`
}

type outputFile struct {
	Format *string `hcl:"format,optional"`
	Color  *bool   `hcl:"color,optional"`
	Width  *int    `hcl:"width,optional"`
}

// Load reads the settings file at path. An empty path falls back to
// DefaultFile when it exists and to Default() otherwise.
func Load(ctx context.Context, path string) (*Config, error) {
	logger := ctxlog.FromContext(ctx)

	if path == "" {
		if _, err := os.Stat(DefaultFile); err != nil {
			logger.Debug("No config file, using defaults.")
			return Default(), nil
		}
		path = DefaultFile
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	logger.Debug("Loading config file.", "path", path)
	return Decode(ctx, path, src, os.Environ())
}

// Decode parses src as a settings file on top of Default(). environ is a
// list of KEY=VALUE pairs exposed as `env`.
func Decode(ctx context.Context, filename string, src []byte, environ []string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file %s: %w", filename, diags)
	}

	var root fileRoot
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": envValue(environ)},
	}
	diags = gohcl.DecodeBody(file.Body, evalCtx, &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config file %s: %w", filename, diags)
	}

	cfg := Default()
	if err := root.apply(cfg); err != nil {
		return nil, fmt.Errorf("config file %s: %w", filename, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", filename, err)
	}

	ctxlog.FromContext(ctx).Debug("Config file decoded.", "path", filename, "log_level", cfg.LogLevel, "max_depth", cfg.MaxDepth)
	return cfg, nil
}

func (r *fileRoot) apply(cfg *Config) error {
	if r.LogLevel != nil {
		cfg.LogLevel = *r.LogLevel
	}
	if r.LogFormat != nil {
		cfg.LogFormat = *r.LogFormat
	}
	if r.MaxDepth != nil {
		cfg.MaxDepth = *r.MaxDepth
	}
	if r.Output == nil {
		return nil
	}
	if r.Output.Format != nil {
		cfg.Output.Format = *r.Output.Format
	}
	if r.Output.Color != nil {
		cfg.Output.Color = *r.Output.Color
	}
	if r.Output.Width != nil {
		if *r.Output.Width < 0 {
			return errors.New("output width must not be negative")
		}
		cfg.Output.Width = uint(*r.Output.Width)
	}
	return nil
}

// envValue turns KEY=VALUE pairs into a cty map of strings.
func envValue(environ []string) cty.Value {
	vars := make(map[string]cty.Value, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		vars[k] = cty.StringVal(v)
	}
	if len(vars) == 0 {
		return cty.MapValEmpty(cty.String)
	}
	return cty.MapVal(vars)
}
