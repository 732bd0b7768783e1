package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestDefault_IsValid(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, 1024, cfg.MaxDepth)
}

func TestDecode(t *testing.T) {
	t.Parallel()

	// Arrange
	src := []byte(`
log_level  = env.FG_LEVEL
log_format = "json"
max_depth  = 64

output {
  format = "dot"
  color  = true
  width  = 100
}
`)

	// Act
	cfg, err := Decode(context.Background(), "flowgraph.hcl", src, []string{"FG_LEVEL=debug", "OTHER=x=y"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, &Config{
		LogLevel:  "debug",
		LogFormat: "json",
		MaxDepth:  64,
		Output:    Output{Format: "dot", Color: true, Width: 100},
	}, cfg)
}

func TestDecode_PartialKeepsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Decode(context.Background(), "f.hcl", []byte(`output { color = true }`), nil)
	require.NoError(t, err)

	want := Default()
	want.Output.Color = true
	assert.Equal(t, want, cfg)
}

func TestDecode_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		src  string
		msg  string
	}{
		{name: "bad syntax", src: `log_level = `, msg: "failed to parse config file"},
		{name: "unknown attribute", src: `colour = "red"`, msg: "failed to decode config file"},
		{name: "wrong type", src: `max_depth = "deep"`, msg: "failed to decode config file"},
		{name: "unknown env var", src: `log_level = env.NOPE`, msg: "failed to decode config file"},
		{name: "invalid level", src: `log_level = "loud"`, msg: `log level "loud"`},
		{name: "invalid format", src: `output { format = "pdf" }`, msg: "unknown export format"},
		{name: "negative depth", src: `max_depth = -1`, msg: "max depth -1"},
		{name: "negative width", src: `output { width = -1 }`, msg: "output width"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Decode(context.Background(), "f.hcl", []byte(tc.src), nil)
			require.Error(t, err)
			assert.ErrorContains(t, err, tc.msg)
		})
	}
}

func TestLoad_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`log_format = "json"`), 0o600))

	cfg, err := Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.LogFormat)

	_, err = Load(context.Background(), filepath.Join(t.TempDir(), "missing.hcl"))
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestEnvValue(t *testing.T) {
	t.Parallel()

	assert.True(t, envValue(nil).RawEquals(cty.MapValEmpty(cty.String)))

	v := envValue([]string{"A=1", "B=", "=skip", "noequals"})
	assert.Equal(t, cty.StringVal("1"), v.Index(cty.StringVal("A")))
	assert.Equal(t, cty.StringVal(""), v.Index(cty.StringVal("B")))
	assert.Equal(t, 2, v.LengthInt())
}
