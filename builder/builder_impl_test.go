// SPDX-License-Identifier: MIT
// Package builder_test contains functional tests for every Constructor:
// node and edge counts, edge placement, option effects and error sentinels.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gdwg/builder"
)

// build runs BuildGraph and fails the test on error.
func build(t *testing.T, opts []builder.BuilderOption, cons ...builder.Constructor) *builder.Graph {
	t.Helper()
	g, err := builder.BuildGraph(opts, cons...)
	require.NoError(t, err)

	return g
}

// connected asserts src -> dst exists.
func connected(t *testing.T, g *builder.Graph, src, dst string) {
	t.Helper()
	ok, err := g.IsConnected(src, dst)
	require.NoError(t, err)
	assert.True(t, ok, "%s -> %s", src, dst)
}

// TestBuilders_Counts VERIFIES node and edge counts of each topology.
func TestBuilders_Counts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		ctor         builder.Constructor
		opts         []builder.BuilderOption
		wantN, wantE int
	}{
		{"Path(4)", builder.Path(4), nil, 4, 3},
		{"Cycle(5)", builder.Cycle(5), nil, 5, 5},
		{"Cycle(5)/symmetric", builder.Cycle(5), []builder.BuilderOption{builder.WithSymmetric()}, 5, 10},
		{"Star(4)", builder.Star(4), nil, 4, 3},
		{"Wheel(5)", builder.Wheel(5), nil, 5, 8},
		{"Complete(4)", builder.Complete(4), nil, 4, 12},
		{"Complete(4)/symmetric", builder.Complete(4), []builder.BuilderOption{builder.WithSymmetric()}, 4, 12},
		{"CompleteBipartite(2,3)", builder.CompleteBipartite(2, 3), nil, 5, 6},
		{"Grid(2,3)", builder.Grid(2, 3), nil, 6, 7},
		{"Grid(2,3)/symmetric", builder.Grid(2, 3), []builder.BuilderOption{builder.WithSymmetric()}, 6, 14},
		{"RandomSparse(5,0)", builder.RandomSparse(5, 0), []builder.BuilderOption{builder.WithSeed(1)}, 5, 0},
		{"RandomSparse(5,1)", builder.RandomSparse(5, 1), []builder.BuilderOption{builder.WithSeed(1)}, 5, 20},
		{"RandomSparse(5,1)/loops", builder.RandomSparse(5, 1), []builder.BuilderOption{builder.WithSeed(1), builder.WithLoops()}, 5, 25},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g := build(t, tc.opts, tc.ctor)
			assert.Equal(t, tc.wantN, g.NodeCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
		})
	}
}

// TestBuilders_Placement VERIFIES where edges land for the fixed-ID topologies.
func TestBuilders_Placement(t *testing.T) {
	t.Parallel()

	g := build(t, nil, builder.Cycle(3))
	connected(t, g, "2", "0")

	g = build(t, nil, builder.Star(3))
	assert.Equal(t, []string{"1", "2", builder.CenterNodeID}, g.Nodes())
	conns, err := g.Connections(builder.CenterNodeID)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, conns)

	g = build(t, nil, builder.Wheel(4))
	connected(t, g, "2", "0")
	connected(t, g, builder.CenterNodeID, "1")

	g = build(t, []builder.BuilderOption{builder.WithPartitionPrefix("a", "b")}, builder.CompleteBipartite(1, 2))
	assert.Equal(t, []string{"a0", "b0", "b1"}, g.Nodes())
	connected(t, g, "a0", "b1")

	g = build(t, nil, builder.Grid(2, 2))
	connected(t, g, "0,0", "0,1")
	connected(t, g, "0,0", "1,0")
	connected(t, g, "1,0", "1,1")
}

// TestBuilders_Rendering VERIFIES unweighted default output end to end.
func TestBuilders_Rendering(t *testing.T) {
	t.Parallel()

	g := build(t, nil, builder.Path(3))
	assert.Equal(t, "0 (\n  0 -> 1 | U\n)\n1 (\n  1 -> 2 | U\n)\n2 (\n)\n", g.String())

	g = build(t, []builder.BuilderOption{builder.WithConstantWeight(7), builder.WithSymbolIDs()}, builder.Path(2))
	assert.Equal(t, "A (\n  A -> B | W | 7\n)\nB (\n)\n", g.String())
}

// TestBuilders_Weights VERIFIES every edge carries the configured weight.
func TestBuilders_Weights(t *testing.T) {
	t.Parallel()

	g := build(t, []builder.BuilderOption{builder.WithConstantWeight(-2)}, builder.Complete(3))
	for _, ev := range g.EdgeValues() {
		require.True(t, ev.Weight.Valid)
		assert.Equal(t, int64(-2), ev.Weight.Value)
	}

	g = build(t, []builder.BuilderOption{builder.WithConstantWeight(5), builder.WithoutWeights()}, builder.Path(3))
	for _, ev := range g.EdgeValues() {
		assert.False(t, ev.Weight.Valid)
	}
}

// TestBuilders_Determinism VERIFIES equal seeds yield equal graphs.
func TestBuilders_Determinism(t *testing.T) {
	t.Parallel()

	opts := func() []builder.BuilderOption {
		return []builder.BuilderOption{builder.WithSeed(42), builder.WithUniformWeight(1, 9)}
	}
	a := build(t, opts(), builder.RandomSparse(12, 0.3))
	b := build(t, opts(), builder.RandomSparse(12, 0.3))
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.String(), b.String())
}

// TestBuilders_Idempotent VERIFIES re-applying an unweighted constructor adds nothing.
func TestBuilders_Idempotent(t *testing.T) {
	t.Parallel()

	g := build(t, nil, builder.Path(4))
	require.NoError(t, builder.Apply(g, nil, builder.Path(4)))
	assert.Equal(t, 4, g.NodeCount())
	assert.Equal(t, 3, g.EdgeCount())

	require.NoError(t, builder.Apply(g, nil, builder.Star(3)))
	assert.Equal(t, 5, g.NodeCount())
}

// TestBuilders_Errors VERIFIES sentinel errors for bad parameters.
func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ctor builder.Constructor
		opts []builder.BuilderOption
		want error
	}{
		{"Path(1)", builder.Path(1), nil, builder.ErrTooFewVertices},
		{"Cycle(2)", builder.Cycle(2), nil, builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), nil, builder.ErrTooFewVertices},
		{"Wheel(3)", builder.Wheel(3), nil, builder.ErrTooFewVertices},
		{"Complete(0)", builder.Complete(0), nil, builder.ErrTooFewVertices},
		{"CompleteBipartite(0,1)", builder.CompleteBipartite(0, 1), nil, builder.ErrTooFewVertices},
		{"Grid(1,0)", builder.Grid(1, 0), nil, builder.ErrTooFewVertices},
		{"RandomSparse/noRNG", builder.RandomSparse(3, 0.5), nil, builder.ErrNeedRandSource},
		{"RandomSparse/p", builder.RandomSparse(3, 1.5), []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrInvalidProbability},
		{"nil", nil, nil, builder.ErrConstructFailed},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := builder.BuildGraph(tc.opts, tc.ctor)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestOptions_Panics VERIFIES option constructors reject nil inputs.
func TestOptions_Panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
}
