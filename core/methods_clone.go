// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Copying, moving and clearing graph instances.
// Ownership:
//   - Clone allocates a fresh arena; the copy shares nothing with the source.
//   - Move hands the store over and leaves the source empty but valid.

package core

// Clone returns a deep copy of g. Nodes get fresh arena slots and every edge
// is re-linked to them.
// Complexity: O(V + E).
func (g *Graph[N, E]) Clone() *Graph[N, E] {
	clone := NewGraph[N, E]()
	clone.order = make([]nodeKey, 0, len(g.order))
	clone.arena = make([]slot[N], 0, len(g.order))

	remap := make(map[nodeKey]nodeKey, len(g.order))
	for _, k := range g.order {
		v := g.value(k)
		nk := clone.alloc(v)
		clone.order = append(clone.order, nk)
		clone.index[v] = nk
		remap[k] = nk
	}
	// Values are identical, so the source ordering carries over unchanged.
	for src, s := range g.adj {
		cp := make([]edgeEntry[E], len(s))
		for i, e := range s {
			cp[i] = edgeEntry[E]{dst: remap[e.dst], weight: e.weight}
		}
		clone.adj[remap[src]] = cp
	}

	return clone
}

// Move transfers g's contents into a new Graph and returns it. g is left
// empty and may be reused. Iterators obtained from g before the move are
// invalidated.
// Complexity: O(1).
func (g *Graph[N, E]) Move() *Graph[N, E] {
	moved := &Graph[N, E]{
		arena: g.arena,
		free:  g.free,
		order: g.order,
		index: g.index,
		adj:   g.adj,
	}
	g.reset()

	return moved
}

// Clear removes every node and edge.
// Complexity: O(1) amortized.
func (g *Graph[N, E]) Clear() {
	g.reset()
}

// Empty reports whether g holds no nodes and no edges.
func (g *Graph[N, E]) Empty() bool {
	return len(g.order) == 0 && len(g.adj) == 0
}

// reset drops all storage and re-initializes the lookup maps.
func (g *Graph[N, E]) reset() {
	g.arena = nil
	g.free = nil
	g.order = nil
	g.index = nil
	g.adj = nil
	g.init()
}
