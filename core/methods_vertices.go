// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() returns values ascending.
//
// Complexity notes:
//   - Membership is O(1) through the value index; ordered insert/erase shift
//     the node slice in O(V).
package core

// InsertNode adds v as a new node. It reports false, without mutating the
// graph, if a node equal to v already exists.
// Complexity: O(V) worst case for the ordered insert.
func (g *Graph[N, E]) InsertNode(v N) bool {
	if _, exists := g.lookup(v); exists {
		return false
	}
	g.link(v)

	return true
}

// IsNode reports whether a node equal to v exists.
// Complexity: O(1).
func (g *Graph[N, E]) IsNode(v N) bool {
	_, ok := g.lookup(v)

	return ok
}

// EraseNode removes the node equal to v together with its outgoing edges and
// every edge pointing at it. It reports false if no such node exists.
//
// Complexity: O(V + E); every adjacency slice is scanned for inbound entries.
func (g *Graph[N, E]) EraseNode(v N) bool {
	k, ok := g.lookup(v)
	if !ok {
		return false
	}
	delete(g.adj, k)
	g.dropInbound(k)
	g.unlink(k)

	return true
}

// Nodes returns a snapshot of all node values in ascending order.
// Complexity: O(V).
func (g *Graph[N, E]) Nodes() []N {
	out := make([]N, 0, len(g.order))
	for _, k := range g.order {
		out = append(out, g.value(k))
	}

	return out
}

// NodeCount returns the number of nodes.
func (g *Graph[N, E]) NodeCount() int {
	return len(g.order)
}
