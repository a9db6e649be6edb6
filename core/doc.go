// SPDX-License-Identifier: MIT

// Package core provides Graph, a generic in-memory directed graph whose edges
// may optionally carry a weight.
//
// A Graph[N, E] stores node values of any ordered type N and edges between
// them. Each edge is a (destination, optional weight) entry under its source,
// so two nodes may be joined by several parallel edges that differ only in
// weight, including at most one unweighted edge:
//
//	g := core.NewGraph[int, int](1, 2)
//	g.InsertEdge(1, 2)                     // 1 -> 2 | U
//	g.InsertEdge(1, 2, core.WithWeight(5)) // 1 -> 2 | W | 5
//	g.InsertEdge(1, 2, core.WithWeight(5)) // false: exact duplicate
//
// Storage model:
//
//   - Node values live once, in an arena of slots addressed by a stable
//     integer key. The node set and every edge entry hold keys, never copies
//     of the value, so renaming a node re-links edges without duplicating it.
//   - The node set is kept ascending by value; each node's edges are kept
//     ascending by (destination value, weight) with "unweighted" first.
//   - A node with no outgoing edges has no adjacency entry at all.
//
// Ordering is deterministic everywhere: Nodes, Connections, Edges, the
// Iterator and String all follow the order above.
//
// Errors:
//
// Two failure classes are kept apart.
//
//   - Referencing a node that is not in the graph is a precondition
//     violation. The method returns a *PreconditionError carrying a fixed,
//     operation-specific message; it unwraps to ErrNodeNotFound.
//   - Expected negative outcomes (duplicate insert, nothing to erase, a
//     ReplaceNode collision, a Find miss) are plain bool or End() results.
//
// No method partially applies its effect: preconditions are checked before
// any state is touched.
//
// Iteration:
//
// Begin/End/Find return an Iterator over the flattened edge sequence ordered
// by source node, then destination, then weight. Dereferencing yields an
// EdgeValue copy. All and Backward expose the same sequence as iter.Seq.
// Iterators are invalidated by any mutation other than EraseEdgeAt and
// EraseEdgeRange, which hand back a fresh one.
//
// Rendering:
//
// String prints, for every node ascending, a block
//
//	<node> (
//	  <node> -> <dst> | U
//	  <node> -> <dst> | W | <weight>
//	)
//
// with unweighted edges listed before weighted ones. An empty graph renders
// as the empty string.
//
// Concurrency:
//
// Graph performs no locking. It must not be used from more than one goroutine
// at a time without external synchronization.
package core
