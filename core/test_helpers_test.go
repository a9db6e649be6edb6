// SPDX-License-Identifier: MIT
// Package core_test contains shared fixtures for contract tests
// of core.Graph.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gdwg/core"
)

// Graph is the instantiation exercised by most tests.
type Graph = core.Graph[int, int]

// sampleEdge is one edge of the reference fixture; Weighted=false means "no weight".
type sampleEdge struct {
	From, To int
	Weight   int
	Weighted bool
}

// sampleNodes are inserted in this (unsorted) order on purpose.
var sampleNodes = []int{4, 1, 3, 2, 6, 5}

// sampleEdges is the reference edge list.
var sampleEdges = []sampleEdge{
	{4, 1, -4, true},
	{3, 2, 2, true},
	{2, 4, 0, false},
	{2, 1, 1, true},
	{6, 2, 5, true},
	{6, 3, 10, true},
	{1, 5, -1, true},
	{3, 6, -8, true},
	{4, 5, 3, true},
	{5, 2, 0, false},
}

// sampleIsolated is added after the edges and has none.
const sampleIsolated = 64

// sampleRendering is the byte-exact String() of the reference fixture.
const sampleRendering = `1 (
  1 -> 5 | W | -1
)
2 (
  2 -> 4 | U
  2 -> 1 | W | 1
)
3 (
  3 -> 2 | W | 2
  3 -> 6 | W | -8
)
4 (
  4 -> 1 | W | -4
  4 -> 5 | W | 3
)
5 (
  5 -> 2 | U
)
6 (
  6 -> 2 | W | 5
  6 -> 3 | W | 10
)
64 (
)
`

// opts converts a sampleEdge weight into edge options.
func (e sampleEdge) opts() []core.EdgeOption[int] {
	if !e.Weighted {
		return nil
	}

	return []core.EdgeOption[int]{core.WithWeight(e.Weight)}
}

// newSampleGraph BUILDS the reference fixture, failing the test on any error.
func newSampleGraph(t *testing.T) *Graph {
	t.Helper()
	g := core.NewGraph[int, int](sampleNodes...)
	for _, e := range sampleEdges {
		inserted, err := g.InsertEdge(e.From, e.To, e.opts()...)
		require.NoError(t, err, "InsertEdge(%d,%d)", e.From, e.To)
		require.True(t, inserted, "InsertEdge(%d,%d) must insert", e.From, e.To)
	}
	require.True(t, g.InsertNode(sampleIsolated))

	return g
}

// mustInsertEdge inserts src->dst and asserts no precondition error.
func mustInsertEdge(t *testing.T, g *Graph, src, dst int, opts ...core.EdgeOption[int]) bool {
	t.Helper()
	ok, err := g.InsertEdge(src, dst, opts...)
	require.NoError(t, err, "InsertEdge(%d,%d)", src, dst)

	return ok
}

// edgeStrings renders Edges(src,dst) to strings for compact comparison.
func edgeStrings(t *testing.T, g *Graph, src, dst int) []string {
	t.Helper()
	edges, err := g.Edges(src, dst)
	require.NoError(t, err, "Edges(%d,%d)", src, dst)
	out := make([]string, 0, len(edges))
	for _, e := range edges {
		out = append(out, e.String())
	}

	return out
}

// requirePrecondition asserts err is a *core.PreconditionError for op.
func requirePrecondition(t *testing.T, err error, op string) {
	t.Helper()
	require.ErrorIs(t, err, core.ErrNodeNotFound)
	var pe *core.PreconditionError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, op, pe.Op)
	require.NotEmpty(t, pe.Msg)
}
