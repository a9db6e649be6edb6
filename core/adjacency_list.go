// SPDX-License-Identifier: MIT
//
// File: adjacency_list.go
// Role: Node arena and ordered adjacency primitives shared by all methods.
// Invariants maintained here:
//   - order is ascending by node value and mirrors index exactly.
//   - adj[k] is ascending by (dst value, weight) without duplicates.
//   - adj never maps a key to an empty slice.

package core

import (
	"cmp"
	"slices"
)

// probe is a search target inside an edge slice.
type probe[N cmp.Ordered, E cmp.Ordered] struct {
	dst    N
	weight Weight[E]
}

// value returns the node value stored at k.
func (g *Graph[N, E]) value(k nodeKey) N {
	return g.arena[k].value
}

// lookup returns the key of the node equal to v.
// Complexity: O(1).
func (g *Graph[N, E]) lookup(v N) (nodeKey, bool) {
	k, ok := g.index[v]

	return k, ok
}

// alloc places v in a free arena slot, reusing released ones first.
func (g *Graph[N, E]) alloc(v N) nodeKey {
	if n := len(g.free); n > 0 {
		k := g.free[n-1]
		g.free = g.free[:n-1]
		g.arena[k] = slot[N]{value: v, live: true}
		return k
	}
	g.arena = append(g.arena, slot[N]{value: v, live: true})

	return nodeKey(len(g.arena) - 1)
}

// release returns k to the free list. Callers must have dropped every
// reference to k from order, index and adj first.
func (g *Graph[N, E]) release(k nodeKey) {
	g.arena[k] = slot[N]{}
	g.free = append(g.free, k)
}

// position binary-searches order for v.
// Complexity: O(log V).
func (g *Graph[N, E]) position(v N) (int, bool) {
	return slices.BinarySearchFunc(g.order, v, func(k nodeKey, t N) int {
		return cmp.Compare(g.value(k), t)
	})
}

// link creates a node for v (which must be absent) and returns its key.
// Complexity: O(V) for the ordered insert.
func (g *Graph[N, E]) link(v N) nodeKey {
	g.init()
	k := g.alloc(v)
	pos, _ := g.position(v)
	g.order = slices.Insert(g.order, pos, k)
	g.index[v] = k

	return k
}

// unlink removes k from the node set and frees its slot. Edges must already
// be detached.
func (g *Graph[N, E]) unlink(k nodeKey) {
	v := g.value(k)
	if pos, ok := g.position(v); ok {
		g.order = slices.Delete(g.order, pos, pos+1)
	}
	delete(g.index, v)
	g.release(k)
}

// compareEntries orders two entries by (dst value, weight).
func (g *Graph[N, E]) compareEntries(a, b edgeEntry[E]) int {
	if c := cmp.Compare(g.value(a.dst), g.value(b.dst)); c != 0 {
		return c
	}

	return a.weight.Compare(b.weight)
}

// search binary-searches src's edges for (dst, w).
// Complexity: O(log d) where d is the out-degree of src.
func (g *Graph[N, E]) search(src nodeKey, dst N, w Weight[E]) (int, bool) {
	target := probe[N, E]{dst: dst, weight: w}

	return slices.BinarySearchFunc(g.adj[src], target, func(e edgeEntry[E], t probe[N, E]) int {
		if c := cmp.Compare(g.value(e.dst), t.dst); c != 0 {
			return c
		}
		return e.weight.Compare(t.weight)
	})
}

// insertEntry adds e under src unless an equal entry exists.
func (g *Graph[N, E]) insertEntry(src nodeKey, e edgeEntry[E]) bool {
	pos, found := g.search(src, g.value(e.dst), e.weight)
	if found {
		return false
	}
	g.init()
	g.adj[src] = slices.Insert(g.adj[src], pos, e)

	return true
}

// removeEntryAt deletes the i-th edge of src and prunes an emptied key.
func (g *Graph[N, E]) removeEntryAt(src nodeKey, i int) {
	s := slices.Delete(g.adj[src], i, i+1)
	if len(s) == 0 {
		delete(g.adj, src)
		return
	}
	g.adj[src] = s
}

// dropInbound removes every entry whose destination is k.
// Complexity: O(E).
func (g *Graph[N, E]) dropInbound(k nodeKey) {
	for src, s := range g.adj {
		s = slices.DeleteFunc(s, func(e edgeEntry[E]) bool { return e.dst == k })
		if len(s) == 0 {
			delete(g.adj, src)
			continue
		}
		g.adj[src] = s
	}
}

// retarget rewrites every inbound entry of from to point at to, then
// restores ordering. When dedupe is set, entries that collide after the
// rewrite collapse to one.
// Complexity: O(E + Σ d log d) over the touched sources.
func (g *Graph[N, E]) retarget(from, to nodeKey, dedupe bool) {
	for src, s := range g.adj {
		touched := false
		for i := range s {
			if s[i].dst == from {
				s[i].dst = to
				touched = true
			}
		}
		if !touched {
			continue
		}
		slices.SortFunc(s, g.compareEntries)
		if dedupe {
			s = slices.CompactFunc(s, func(a, b edgeEntry[E]) bool {
				return g.compareEntries(a, b) == 0
			})
		}
		g.adj[src] = s
	}
}
