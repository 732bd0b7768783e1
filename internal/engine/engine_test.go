package engine

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/flowgraph/internal/dag"
	"github.com/specialistvlad/flowgraph/internal/graph"
	"github.com/specialistvlad/flowgraph/internal/syntax"
	"github.com/specialistvlad/flowgraph/internal/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func compile(src string) (*Result, error) {
	return Compile(context.Background(), "flow.txt", []byte(src), Options{})
}

func edgeList(g *graph.Graph) []string {
	out := []string{}
	for _, e := range g.Edges() {
		out = append(out, e.From+"->"+e.To)
	}
	return out
}

func TestCompile_Scenarios(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		src   string
		nodes []string
		edges []string
	}{
		{
			name:  "sequence",
			src:   "$s0,s1,s2$",
			nodes: []string{"s0", "s1", "s2"},
			edges: []string{"s0->s1", "s1->s2"},
		},
		{
			name:  "parallel fan-out and fan-in",
			src:   "$s0,{s1,s2},s3$",
			nodes: []string{"s0", "s1", "s2", "s3"},
			edges: []string{"s0->s1", "s0->s2", "s1->s3", "s2->s3"},
		},
		{
			name:  "terminal suppression",
			src:   "$[a,b!,c]$",
			nodes: []string{"a", "b", "c"},
			edges: []string{"a->b"},
		},
		{
			name:  "parallel independence",
			src:   "${a,b}$",
			nodes: []string{"a", "b"},
			edges: []string{},
		},
		{
			name:  "explicit dependency precedence",
			src:   "$s0, s1, s2#{s0, s1}, s3$",
			nodes: []string{"s0", "s1", "s2", "s3"},
			edges: []string{"s0->s1", "s0->s2", "s1->s2", "s2->s3"},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			res, err := compile(tc.src)
			require.NoError(t, err)

			assert.Equal(t, tc.nodes, res.Graph.IDs())
			if diff := cmp.Diff(tc.edges, edgeList(res.Graph)); diff != "" {
				t.Errorf("edges mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, "flow.txt", res.Program.Filename)
		})
	}
}

func TestCompile_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		src    string
		target error
	}{
		{name: "syntax", src: "$a,,b$", target: syntax.ErrSyntax},
		{name: "missing", src: "$s0#{s_missing}$", target: validator.ErrMissingDependency},
		{name: "circular", src: "$s0#{s1},s1#{s0}$", target: validator.ErrCircularDependency},
		{name: "duplicate", src: "$a,a$", target: dag.ErrDuplicateIdentifier},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			res, err := compile(tc.src)

			assert.Nil(t, res, "no partial result on failure")
			assert.ErrorIs(t, err, tc.target)
		})
	}
}

func TestCompile_ErrorDetails(t *testing.T) {
	t.Parallel()

	_, err := compile("$s0#{s1},s1#{s0}$")
	var circular *validator.CircularDependencyError
	require.ErrorAs(t, err, &circular)
	assert.Equal(t, []string{"s0", "s1", "s0"}, circular.Cycle)

	_, err = compile("$s0#{s_missing}$")
	var missing *validator.MissingDependencyError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"s_missing"}, missing.Identifiers)

	_, err = compile("$a,b")
	var syntaxErr *syntax.SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	assert.Equal(t, 4, syntaxErr.Offset())
}

func TestCompile_MaxDepth(t *testing.T) {
	t.Parallel()

	src := "$" + strings.Repeat("[", 5) + "a" + strings.Repeat("]", 5) + "$"

	_, err := Compile(context.Background(), "", []byte(src), Options{MaxDepth: 3})
	assert.ErrorIs(t, err, syntax.ErrDepthLimit)

	_, err = Compile(context.Background(), "", []byte(src), Options{})
	assert.NoError(t, err)
}

func TestCompile_Idempotent(t *testing.T) {
	t.Parallel()

	const src = "$a,{b,[c,d!]#{a}},e#{d}$"
	first, err := compile(src)
	require.NoError(t, err)
	second, err := compile(src)
	require.NoError(t, err)

	assert.Equal(t, first.Graph.IDs(), second.Graph.IDs())
	assert.Equal(t, first.Graph.Edges(), second.Graph.Edges())
}

func TestCompile_ConcurrentCallsAreIndependent(t *testing.T) {
	t.Parallel()

	// Arrange: a distinct chain per goroutine
	const workers = 32
	var g errgroup.Group
	results := make([]*Result, workers)

	// Act
	for i := 0; i < workers; i++ {
		i := i
		g.Go(func() error {
			src := fmt.Sprintf("$w%[1]d_a,{w%[1]d_b,w%[1]d_c},w%[1]d_d$", i)
			res, err := Compile(context.Background(), "", []byte(src), Options{})
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	// Assert
	require.NoError(t, g.Wait())
	for i, res := range results {
		prefix := fmt.Sprintf("w%d_", i)
		assert.Equal(t, 4, res.Graph.Len())
		assert.Equal(t, 4, res.Graph.EdgeCount())
		for _, id := range res.Graph.IDs() {
			assert.True(t, strings.HasPrefix(id, prefix), id)
		}
	}
}

func TestParse_OnlySyntax(t *testing.T) {
	t.Parallel()

	// an invalid graph is still a valid program
	prog, err := Parse(context.Background(), "", []byte("$a#{nope}$"), Options{})
	require.NoError(t, err)
	assert.Equal(t, "$a#{nope}$", prog.String())
}
