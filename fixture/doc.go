// SPDX-License-Identifier: MIT

// Package fixture loads graph documents from YAML or HCL and materialises
// them as core graphs.
//
// A document lists nodes, edges with an optional weight, and an optional
// builder topology. Node values are written as text and converted by a
// caller-supplied parser, so the same file can seed a Graph[int, int64] or
// a Graph[string, int64]:
//
//	nodes: ["1", "2"]
//	edges:
//	  - {from: "2", to: "1", weight: 1}
//	  - {from: "1", to: "2"}
//
// Build inserts nodes, then the topology, then edges. An edge naming a node
// that is in none of them fails with core.ErrNodeNotFound, wrapped with the
// edge position.
//
// Watcher keeps the latest document of a file and reloads it on change.
package fixture
