package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/flowgraph/internal/config"
	"github.com/specialistvlad/flowgraph/internal/export"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inline(src string) Input {
	return Input{Filename: InlineFilename, Source: []byte(src)}
}

func TestCheck(t *testing.T) {
	t.Parallel()

	a, out, errOut := SetupAppTest(t, nil)

	require.NoError(t, a.Check(context.Background(), inline("$s0,{s1,s2},s3$")))
	assert.Equal(t, "<input>: ok (4 tasks, 4 edges)\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestCheck_InvalidProgram(t *testing.T) {
	t.Parallel()

	a, out, errOut := SetupAppTest(t, nil)

	err := a.Check(context.Background(), inline("$s0#{s_missing}$"))

	require.ErrorIs(t, err, ErrInvalidProgram)
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "Undeclared dependency")
	assert.Contains(t, errOut.String(), "s_missing")
}

func TestGraph(t *testing.T) {
	t.Parallel()

	a, out, _ := SetupAppTest(t, nil)

	require.NoError(t, a.Graph(context.Background(), inline("$a,b$"), export.Edges, nil))
	assert.Equal(t, "a -> b\n", out.String())

	var file bytes.Buffer
	require.NoError(t, a.Graph(context.Background(), inline("$a,b$"), export.DOT, &file))
	assert.Contains(t, file.String(), `"a" -> "b";`)
}

func TestGraph_Circular(t *testing.T) {
	t.Parallel()

	a, out, errOut := SetupAppTest(t, nil)

	err := a.Graph(context.Background(), inline("$s0#{s1},s1#{s0}$"), export.JSON, nil)

	require.ErrorIs(t, err, ErrInvalidProgram)
	assert.Empty(t, out.String(), "no graph is emitted for a rejected program")
	assert.Contains(t, errOut.String(), "s0 -> s1 -> s0")
}

func TestFmt(t *testing.T) {
	t.Parallel()

	a, out, _ := SetupAppTest(t, nil)

	require.NoError(t, a.Fmt(context.Background(), inline("$ a , { b #{ x } , [ c , d ] ! } $")))
	assert.Equal(t, "$a,{b#{x},[c,d]!}$\n", out.String())

	err := a.Fmt(context.Background(), inline("$a,$"))
	assert.ErrorIs(t, err, ErrInvalidProgram)
}

func TestMaxDepthFromConfig(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.MaxDepth = 2
	a, _, errOut := SetupAppTest(t, cfg)

	err := a.Check(context.Background(), inline("$[[[a]]]$"))
	require.ErrorIs(t, err, ErrInvalidProgram)
	assert.Contains(t, errOut.String(), "Nesting too deep")
}

func TestDebugLogging(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.LogLevel = "debug"
	cfg.LogFormat = "json"
	a, _, errOut := SetupAppTest(t, cfg)

	require.NoError(t, a.Check(context.Background(), inline("$a$")))
	assert.Contains(t, errOut.String(), `"msg":"Compile finished."`)
}

func TestReadInput(t *testing.T) {
	t.Parallel()

	in, err := ReadInput("$a$", "")
	require.NoError(t, err)
	assert.Equal(t, inline("$a$"), in)

	path := filepath.Join(t.TempDir(), "flow.txt")
	require.NoError(t, os.WriteFile(path, []byte("$b$"), 0o600))
	in, err = ReadInput("", path)
	require.NoError(t, err)
	assert.Equal(t, Input{Filename: path, Source: []byte("$b$")}, in)

	_, err = ReadInput("$a$", path)
	assert.Error(t, err)
	_, err = ReadInput("", "")
	assert.Error(t, err)
	_, err = ReadInput("", filepath.Join(t.TempDir(), "nope"))
	assert.ErrorContains(t, err, "failed to read program")
}

func TestCheckDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "good.flow"), []byte("$a,b$"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.flow"), []byte("$a#{x}$"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("$$"), 0o600))

	a, out, errOut := SetupAppTest(t, nil)

	err := a.CheckDir(context.Background(), dir)

	require.ErrorIs(t, err, ErrInvalidProgram)
	assert.Contains(t, out.String(), "good.flow: ok (2 tasks, 1 edges)")
	assert.Contains(t, out.String(), "2 program(s) checked, 1 invalid")
	assert.Contains(t, errOut.String(), "Undeclared dependency")
}

func TestCheckDir_AllValid(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "one.flow"), []byte("$a$"), 0o600))

	a, out, _ := SetupAppTest(t, nil)

	require.NoError(t, a.CheckDir(context.Background(), dir))
	assert.Contains(t, out.String(), "1 program(s) checked, 0 invalid")
}
