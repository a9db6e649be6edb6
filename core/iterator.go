// SPDX-License-Identifier: MIT
//
// File: iterator.go
// Role: Bidirectional cursor over the flattened edge sequence, plus the
// iterator-based erase operations and iter.Seq adapters.
//
// Position model:
//   - outer indexes the ascending node order, inner indexes that node's edges.
//   - A dereferenceable position always has inner < len(adj[order[outer]]).
//   - End is (len(order), 0).

package core

import (
	"cmp"
	"iter"
)

// Iterator is a cursor over every edge of a Graph ordered by source, then
// destination, then weight. Iterator is a small value: copying it yields an
// independent cursor.
//
// Any mutation other than EraseEdgeAt/EraseEdgeRange invalidates existing
// iterators of that graph.
type Iterator[N cmp.Ordered, E cmp.Ordered] struct {
	g     *Graph[N, E]
	outer int
	inner int
}

// Begin returns an iterator at the first edge, or End() if there are none.
// Complexity: O(V) worst case to skip nodes without edges.
func (g *Graph[N, E]) Begin() Iterator[N, E] {
	return g.seek(0)
}

// End returns the past-the-last iterator.
func (g *Graph[N, E]) End() Iterator[N, E] {
	return Iterator[N, E]{g: g, outer: len(g.order)}
}

// seek returns the first edge position at or after outer index from.
func (g *Graph[N, E]) seek(from int) Iterator[N, E] {
	for i := from; i < len(g.order); i++ {
		if len(g.adj[g.order[i]]) > 0 {
			return Iterator[N, E]{g: g, outer: i}
		}
	}

	return g.End()
}

// Find returns an iterator at the edge src -> dst with the selected weight.
// Unknown nodes and missing edges both yield End(); Find never fails.
// Complexity: O(log V + log d).
func (g *Graph[N, E]) Find(src, dst N, opts ...EdgeOption[E]) Iterator[N, E] {
	sk, ok := g.lookup(src)
	if !ok || !g.IsNode(dst) {
		return g.End()
	}
	i, found := g.search(sk, dst, resolveWeight(opts))
	if !found {
		return g.End()
	}
	outer, _ := g.position(src)

	return Iterator[N, E]{g: g, outer: outer, inner: i}
}

// Done reports whether it is at End.
func (it Iterator[N, E]) Done() bool {
	return it.g == nil || it.outer >= len(it.g.order)
}

// Value returns a copy of the edge under the cursor.
// Calling Value at End panics.
func (it Iterator[N, E]) Value() EdgeValue[N, E] {
	if it.Done() {
		panic("core: Iterator.Value called at End")
	}
	src := it.g.order[it.outer]
	e := it.g.adj[src][it.inner]

	return EdgeValue[N, E]{From: it.g.value(src), To: it.g.value(e.dst), Weight: e.weight}
}

// Next advances to the following edge; past the last edge it becomes End.
// Next at End is a no-op.
func (it *Iterator[N, E]) Next() {
	if it.Done() {
		return
	}
	it.inner++
	if it.inner < len(it.g.adj[it.g.order[it.outer]]) {
		return
	}
	*it = it.g.seek(it.outer + 1)
}

// Prev steps back to the preceding edge. Calling Prev at Begin is a caller
// error and leaves the cursor unchanged.
func (it *Iterator[N, E]) Prev() {
	if it.g == nil {
		return
	}
	if it.inner > 0 {
		it.inner--
		return
	}
	for i := it.outer - 1; i >= 0; i-- {
		if n := len(it.g.adj[it.g.order[i]]); n > 0 {
			it.outer, it.inner = i, n-1
			return
		}
	}
}

// Equal reports whether both iterators sit at the same position.
// Comparing iterators of two different graphs panics with ErrForeignIterator.
func (it Iterator[N, E]) Equal(o Iterator[N, E]) bool {
	if it.g != o.g {
		panic(ErrForeignIterator)
	}

	return it.outer == o.outer && it.inner == o.inner
}

// owns panics unless it was produced by g.
func (g *Graph[N, E]) owns(it Iterator[N, E]) {
	if it.g != g {
		panic(ErrForeignIterator)
	}
}

// EraseEdgeAt removes the edge under it and returns an iterator to the edge
// that followed it, or End(). Erasing at End is a no-op returning End().
// Complexity: O(d) for the slice shift, plus skipping empty nodes.
func (g *Graph[N, E]) EraseEdgeAt(it Iterator[N, E]) Iterator[N, E] {
	g.owns(it)
	if it.Done() {
		return g.End()
	}
	next := it
	next.Next()

	src := g.order[it.outer]
	g.removeEntryAt(src, it.inner)

	// Only entries after it in the same node shift down by one; node order
	// is untouched by edge removal.
	if next.outer == it.outer {
		next.inner--
	}

	return next
}

// EraseEdgeRange removes the edges in [i, s) and returns the iterator that
// now addresses the edge s pointed at (End() if s was End). i == s removes
// nothing. s must be reachable from i by Next.
// Complexity: O(k·d) for k removed edges.
func (g *Graph[N, E]) EraseEdgeRange(i, s Iterator[N, E]) Iterator[N, E] {
	g.owns(i)
	g.owns(s)

	n := 0
	for cur := i; !cur.Equal(s) && !cur.Done(); cur.Next() {
		n++
	}
	cur := i
	for ; n > 0; n-- {
		cur = g.EraseEdgeAt(cur)
	}

	return cur
}

// All yields every edge front to back.
func (g *Graph[N, E]) All() iter.Seq[EdgeValue[N, E]] {
	return func(yield func(EdgeValue[N, E]) bool) {
		for it := g.Begin(); !it.Done(); it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Backward yields every edge back to front.
func (g *Graph[N, E]) Backward() iter.Seq[EdgeValue[N, E]] {
	return func(yield func(EdgeValue[N, E]) bool) {
		begin := g.Begin()
		for it := g.End(); !it.Equal(begin); {
			it.Prev()
			if !yield(it.Value()) {
				return
			}
		}
	}
}
