// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, Weight and EdgeOption declarations, sentinel errors, constructors.
// Policy:
//   - Precondition violations are *PreconditionError values unwrapping to ErrNodeNotFound.
//   - Expected negative outcomes are never errors.

package core

import (
	"cmp"
	"errors"
	"fmt"
	"iter"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a node value that is
	// not a member of the graph.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrForeignIterator indicates an Iterator was used with, or compared
	// against, an Iterator of a different Graph.
	ErrForeignIterator = errors.New("core: iterator belongs to a different graph")
)

// Operation names reported by PreconditionError.Op.
const (
	OpInsertEdge       = "InsertEdge"
	OpEraseEdge        = "EraseEdge"
	OpConnections      = "Connections"
	OpIsConnected      = "IsConnected"
	OpEdges            = "Edges"
	OpReplaceNode      = "ReplaceNode"
	OpMergeReplaceNode = "MergeReplaceNode"
)

// Fixed precondition messages, one per operation.
var preconditionMessages = map[string]string{
	OpInsertEdge:       "cannot call Graph.InsertEdge when either src or dst node does not exist",
	OpEraseEdge:        "cannot call Graph.EraseEdge on src or dst if they don't exist in the graph",
	OpConnections:      "cannot call Graph.Connections if src doesn't exist in the graph",
	OpIsConnected:      "cannot call Graph.IsConnected if src or dst node don't exist in the graph",
	OpEdges:            "cannot call Graph.Edges if src or dst node don't exist in the graph",
	OpReplaceNode:      "cannot call Graph.ReplaceNode on a node that doesn't exist",
	OpMergeReplaceNode: "cannot call Graph.MergeReplaceNode on old or new data if they don't exist in the graph",
}

// PreconditionError reports a call that referenced a node value absent from
// the graph. Msg is fixed per operation; the error unwraps to ErrNodeNotFound.
type PreconditionError struct {
	// Op is the method that rejected the call (OpInsertEdge, ...).
	Op string

	// Msg is the fixed message for Op.
	Msg string
}

// Error implements error.
func (e *PreconditionError) Error() string {
	return "core: " + e.Msg
}

// Unwrap lets errors.Is(err, ErrNodeNotFound) match.
func (e *PreconditionError) Unwrap() error {
	return ErrNodeNotFound
}

func precondition(op string) error {
	return &PreconditionError{Op: op, Msg: preconditionMessages[op]}
}

// Weight is an optional edge value. The zero Weight is "unweighted".
//
// Weights are totally ordered: an unweighted Weight sorts before every
// weighted one, weighted values compare with cmp.Compare.
type Weight[E cmp.Ordered] struct {
	// Value holds the weight; it is the zero E when Valid is false.
	Value E

	// Valid reports whether the edge carries a weight.
	Valid bool
}

// Some returns a weighted Weight holding v.
func Some[E cmp.Ordered](v E) Weight[E] {
	return Weight[E]{Value: v, Valid: true}
}

// None returns the unweighted Weight.
func None[E cmp.Ordered]() Weight[E] {
	return Weight[E]{}
}

// Compare returns -1, 0 or +1 following the Weight ordering.
func (w Weight[E]) Compare(o Weight[E]) int {
	switch {
	case !w.Valid && !o.Valid:
		return 0
	case !w.Valid:
		return -1
	case !o.Valid:
		return 1
	}

	return cmp.Compare(w.Value, o.Value)
}

// String renders the value, or "U" when unweighted.
func (w Weight[E]) String() string {
	if !w.Valid {
		return "U"
	}

	return fmt.Sprint(w.Value)
}

// EdgeOption selects the weight of the edge an edge-level call refers to.
// Without options the call refers to the unweighted edge.
type EdgeOption[E cmp.Ordered] func(*Weight[E])

// WithWeight selects the edge carrying weight w.
func WithWeight[E cmp.Ordered](w E) EdgeOption[E] {
	return func(p *Weight[E]) { *p = Some(w) }
}

// WithOptionalWeight selects the edge carrying w, weighted or not. It is the
// bridge for callers that already hold a Weight (e.g. from an EdgeValue).
func WithOptionalWeight[E cmp.Ordered](w Weight[E]) EdgeOption[E] {
	return func(p *Weight[E]) {
		if !w.Valid {
			*p = None[E]()
			return
		}
		*p = w
	}
}

// resolveWeight applies opts in order; last wins.
func resolveWeight[E cmp.Ordered](opts []EdgeOption[E]) Weight[E] {
	var w Weight[E]
	for _, opt := range opts {
		opt(&w)
	}

	return w
}

// nodeKey addresses a slot in the node arena.
type nodeKey int

// slot is one arena cell. A free slot has live == false.
type slot[N cmp.Ordered] struct {
	value N
	live  bool
}

// edgeEntry is one stored edge under its source node.
type edgeEntry[E cmp.Ordered] struct {
	dst    nodeKey
	weight Weight[E]
}

// Graph is a directed graph over node values N whose edges optionally carry
// a weight E. Parallel edges between the same pair of nodes are allowed as
// long as their weights differ.
//
// The zero Graph is empty and ready to use. Graph is not safe for concurrent
// use.
type Graph[N cmp.Ordered, E cmp.Ordered] struct {
	// Node arena and its free list.
	arena []slot[N]
	free  []nodeKey

	// Node set: keys ascending by value, plus value -> key lookup.
	order []nodeKey
	index map[N]nodeKey

	// adj[src] holds src's edges ascending by (dst value, weight).
	// A key is present only while its slice is non-empty.
	adj map[nodeKey][]edgeEntry[E]
}

// NewGraph returns a graph holding the given node values and no edges.
// Duplicate values collapse to a single node.
// Complexity: O(n log n) for n distinct values (plus slice shifting).
func NewGraph[N cmp.Ordered, E cmp.Ordered](nodes ...N) *Graph[N, E] {
	g := &Graph[N, E]{}
	g.init()
	for _, v := range nodes {
		g.InsertNode(v)
	}

	return g
}

// Collect returns a graph holding every value produced by seq.
// Duplicate values collapse to a single node.
func Collect[N cmp.Ordered, E cmp.Ordered](seq iter.Seq[N]) *Graph[N, E] {
	g := NewGraph[N, E]()
	for v := range seq {
		g.InsertNode(v)
	}

	return g
}

// init allocates the lookup maps of a zero Graph.
func (g *Graph[N, E]) init() {
	if g.index == nil {
		g.index = make(map[N]nodeKey)
	}
	if g.adj == nil {
		g.adj = make(map[nodeKey][]edgeEntry[E])
	}
}
