// SPDX-License-Identifier: MIT
// Package: gdwg/builder
//
// impl_path.go - Path(n) and Cycle(n) constructors.
//
// Contract:
//   • Path: n ≥ MinPathNodes; Cycle: n ≥ MinCycleNodes (else ErrTooFewVertices).
//   • Nodes idFn(0..n-1); edges i -> i+1, and for Cycle the closing n-1 -> 0.
//   • Weights come from cfg.weightFn; with none configured edges are unweighted.
//
// Complexity:
//   • Time: O(n) insert calls.
//   • Space: O(n) for the ID slice.

package builder

const (
	methodPath  = "Path"
	methodCycle = "Cycle"
)

// Path returns a Constructor that builds the directed path 0 -> 1 -> ... -> n-1.
func Path(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if err := validateMin(methodPath, "n", n, MinPathNodes); err != nil {
			return err
		}
		ids := addIndexedNodes(g, n, cfg.idFn)

		return chain(methodPath, g, cfg, ids)
	}
}

// Cycle returns a Constructor that builds Path(n) plus the closing edge n-1 -> 0.
func Cycle(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if err := validateMin(methodCycle, "n", n, MinCycleNodes); err != nil {
			return err
		}
		ids := addIndexedNodes(g, n, cfg.idFn)
		if err := chain(methodCycle, g, cfg, ids); err != nil {
			return err
		}

		return link(methodCycle, g, cfg, ids[n-1], ids[0])
	}
}

// chain links consecutive ids in order.
func chain(method string, g *Graph, cfg builderConfig, ids []string) error {
	for i := 0; i+1 < len(ids); i++ {
		if err := link(method, g, cfg, ids[i], ids[i+1]); err != nil {
			return err
		}
	}

	return nil
}
