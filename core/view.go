// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Value objects materialized by queries: Edge (weighted/unweighted view)
// and EdgeValue (iterator dereference). Neither participates in storage.

package core

import (
	"cmp"
	"fmt"
)

// Edge is a read-only view of one directed edge, either weighted or
// unweighted. The two cases form a closed set told apart by IsWeighted;
// build them with NewWeightedEdge and NewUnweightedEdge.
type Edge[N cmp.Ordered, E cmp.Ordered] struct {
	src    N
	dst    N
	weight Weight[E]
}

// NewWeightedEdge returns the weighted edge src -> dst with weight w.
func NewWeightedEdge[N cmp.Ordered, E cmp.Ordered](src, dst N, w E) Edge[N, E] {
	return Edge[N, E]{src: src, dst: dst, weight: Some(w)}
}

// NewUnweightedEdge returns the unweighted edge src -> dst.
func NewUnweightedEdge[N cmp.Ordered, E cmp.Ordered](src, dst N) Edge[N, E] {
	return Edge[N, E]{src: src, dst: dst}
}

// IsWeighted reports whether e carries a weight.
func (e Edge[N, E]) IsWeighted() bool {
	return e.weight.Valid
}

// Weight returns the weight and true, or the zero E and false when e is
// unweighted.
func (e Edge[N, E]) Weight() (E, bool) {
	return e.weight.Value, e.weight.Valid
}

// Nodes returns (src, dst).
func (e Edge[N, E]) Nodes() (N, N) {
	return e.src, e.dst
}

// Equal reports whether e and o are the same case with equal endpoints and,
// for weighted edges, equal weights.
func (e Edge[N, E]) Equal(o Edge[N, E]) bool {
	return e.src == o.src && e.dst == o.dst && e.weight.Compare(o.weight) == 0
}

// String renders "src -> dst | U" or "src -> dst | W | weight".
func (e Edge[N, E]) String() string {
	if !e.weight.Valid {
		return fmt.Sprintf("%v -> %v | U", e.src, e.dst)
	}

	return fmt.Sprintf("%v -> %v | W | %v", e.src, e.dst, e.weight.Value)
}

// EdgeValue is the copy produced by dereferencing an Iterator. It stays
// valid after the iterator moves or the graph changes, but does not track
// later mutations.
type EdgeValue[N cmp.Ordered, E cmp.Ordered] struct {
	From   N
	To     N
	Weight Weight[E]
}

// Edge converts v to its Edge view.
func (v EdgeValue[N, E]) Edge() Edge[N, E] {
	return Edge[N, E]{src: v.From, dst: v.To, weight: v.Weight}
}
