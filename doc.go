// SPDX-License-Identifier: MIT

// Package gdwg is an in-memory generic directed graph whose edges carry an
// optional weight.
//
// The module is organized as:
//
//	core/       - Graph[N, E]: ordered nodes, sorted adjacency, parallel
//	              edges that differ by weight, bidirectional edge iterator,
//	              node replacement and merging, canonical text rendering
//	builder/    - deterministic topologies (path, cycle, star, wheel,
//	              complete, bipartite, grid, random sparse) onto
//	              Graph[string, int64]
//	fixture/    - YAML and HCL graph documents, Build into any node type,
//	              file watching with hot reload
//	cmd/gdwg    - load a fixture and print its rendering
//
// Quick start:
//
//	g := core.NewGraph[string, int]("a", "b")
//	g.InsertEdge("a", "b", core.WithWeight(3))
//	g.InsertEdge("a", "b")
//	fmt.Print(g)
//	// a (
//	//   a -> b | U
//	//   a -> b | W | 3
//	// )
//	// b (
//	// )
//
// A Graph is not safe for concurrent mutation; callers that share one
// across goroutines must serialize access.
package gdwg
