// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries by node value.
// Policy:
//   - Unknown src/dst is a precondition violation (*PreconditionError), checked
//     before any mutation.
//   - Duplicate insert / absent erase are reported as false, not as errors.

package core

// endpoints resolves both values or reports the precondition failure of op.
func (g *Graph[N, E]) endpoints(op string, src, dst N) (nodeKey, nodeKey, error) {
	sk, ok := g.lookup(src)
	if !ok {
		return 0, 0, precondition(op)
	}
	dk, ok := g.lookup(dst)
	if !ok {
		return 0, 0, precondition(op)
	}

	return sk, dk, nil
}

// InsertEdge adds the edge src -> dst. Without options the edge is
// unweighted; WithWeight selects its weight. It reports false, without
// mutating the graph, if an edge with the same destination and weight
// already leaves src.
//
// Errors:
//   - *PreconditionError (ErrNodeNotFound) if src or dst is not a node.
//
// Complexity: O(log d + d) where d is the out-degree of src.
func (g *Graph[N, E]) InsertEdge(src, dst N, opts ...EdgeOption[E]) (bool, error) {
	sk, dk, err := g.endpoints(OpInsertEdge, src, dst)
	if err != nil {
		return false, err
	}

	return g.insertEntry(sk, edgeEntry[E]{dst: dk, weight: resolveWeight(opts)}), nil
}

// EraseEdge removes the edge src -> dst whose weight matches exactly; the
// unweighted edge is a distinct key selected by passing no options.
// It reports whether an edge was removed.
//
// Errors:
//   - *PreconditionError (ErrNodeNotFound) if src or dst is not a node.
//
// Complexity: O(log d + d).
func (g *Graph[N, E]) EraseEdge(src, dst N, opts ...EdgeOption[E]) (bool, error) {
	sk, _, err := g.endpoints(OpEraseEdge, src, dst)
	if err != nil {
		return false, err
	}
	i, found := g.search(sk, dst, resolveWeight(opts))
	if !found {
		return false, nil
	}
	g.removeEntryAt(sk, i)

	return true, nil
}

// IsConnected reports whether at least one edge, of any weight, leads from
// src to dst.
//
// Errors:
//   - *PreconditionError (ErrNodeNotFound) if src or dst is not a node.
//
// Complexity: O(log d).
func (g *Graph[N, E]) IsConnected(src, dst N) (bool, error) {
	sk, dk, err := g.endpoints(OpIsConnected, src, dst)
	if err != nil {
		return false, err
	}
	// The unweighted edge sorts first for dst, so the insertion point of
	// (dst, unweighted) is the first entry that could reach dst.
	i, _ := g.search(sk, dst, None[E]())
	s := g.adj[sk]

	return i < len(s) && s[i].dst == dk, nil
}

// Connections returns the distinct destinations directly reachable from
// src, ascending. Parallel edges contribute one value.
//
// Errors:
//   - *PreconditionError (ErrNodeNotFound) if src is not a node.
//
// Complexity: O(d).
func (g *Graph[N, E]) Connections(src N) ([]N, error) {
	sk, ok := g.lookup(src)
	if !ok {
		return nil, precondition(OpConnections)
	}
	s := g.adj[sk]
	out := make([]N, 0, len(s))
	for i, e := range s {
		if i > 0 && s[i-1].dst == e.dst {
			continue
		}
		out = append(out, g.value(e.dst))
	}

	return out, nil
}

// Edges returns every edge from src to dst: the unweighted one first if
// present, then weighted ones by ascending weight.
//
// Errors:
//   - *PreconditionError (ErrNodeNotFound) if src or dst is not a node.
//
// Complexity: O(log d + k) for k returned edges.
func (g *Graph[N, E]) Edges(src, dst N) ([]Edge[N, E], error) {
	sk, dk, err := g.endpoints(OpEdges, src, dst)
	if err != nil {
		return nil, err
	}
	i, _ := g.search(sk, dst, None[E]())
	s := g.adj[sk]
	out := make([]Edge[N, E], 0)
	for ; i < len(s) && s[i].dst == dk; i++ {
		out = append(out, Edge[N, E]{src: src, dst: dst, weight: s[i].weight})
	}

	return out, nil
}

// EdgeCount returns the total number of stored edges.
// Complexity: O(V).
func (g *Graph[N, E]) EdgeCount() int {
	n := 0
	for _, s := range g.adj {
		n += len(s)
	}

	return n
}

// EdgeValues returns a snapshot of every edge in iteration order.
// Complexity: O(E).
func (g *Graph[N, E]) EdgeValues() []EdgeValue[N, E] {
	out := make([]EdgeValue[N, E], 0, g.EdgeCount())
	for v := range g.All() {
		out = append(out, v)
	}

	return out
}
