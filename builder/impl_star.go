// SPDX-License-Identifier: MIT
// Package: gdwg/builder
//
// impl_star.go - Star(n) and Wheel(n) constructors.
//
// Contract:
//   • Star: n ≥ MinStarNodes. Hub CenterNodeID plus leaves idFn(1..n-1),
//     edges Center -> leaf in leaf order.
//   • Wheel: n ≥ MinWheelNodes. Rim idFn(0..n-2) forms Cycle(n-1), then
//     Center -> rim spokes.
//   • The hub ID is fixed; cfg.idFn never produces it.
//
// Complexity:
//   • Time: O(n) insert calls.

package builder

const (
	methodStar  = "Star"
	methodWheel = "Wheel"
)

// Star returns a Constructor that builds a hub with n-1 outgoing spokes.
func Star(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if err := validateMin(methodStar, "n", n, MinStarNodes); err != nil {
			return err
		}
		addNodes(g, CenterNodeID)
		for i := 1; i < n; i++ {
			leaf := cfg.idFn(i)
			addNodes(g, leaf)
			if err := link(methodStar, g, cfg, CenterNodeID, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel returns a Constructor that builds a rim cycle of n-1 nodes with
// spokes from CenterNodeID.
func Wheel(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if err := validateMin(methodWheel, "n", n, MinWheelNodes); err != nil {
			return err
		}
		rim := addIndexedNodes(g, n-1, cfg.idFn)
		if err := chain(methodWheel, g, cfg, rim); err != nil {
			return err
		}
		if err := link(methodWheel, g, cfg, rim[len(rim)-1], rim[0]); err != nil {
			return err
		}

		addNodes(g, CenterNodeID)
		for _, id := range rim {
			if err := link(methodWheel, g, cfg, CenterNodeID, id); err != nil {
				return err
			}
		}

		return nil
	}
}
