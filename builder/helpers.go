// SPDX-License-Identifier: MIT
// Package: gdwg/builder
//
// helpers.go - shared constants and insertion helpers for constructors.

package builder

import (
	"fmt"
	"strconv"
)

// Fixed node IDs and minimum sizes shared by constructors.
const (
	// CenterNodeID is the hub of Star and Wheel.
	CenterNodeID = "Center"

	MinPathNodes     = 2
	MinCycleNodes    = 3
	MinStarNodes     = 2
	MinWheelNodes    = 4
	MinCompleteNodes = 1
	MinPartition     = 1
	MinGridDim       = 1
	MinSparseNodes   = 1

	MinProbability = 0.0
	MaxProbability = 1.0
)

// addNodes inserts ids; nodes that already exist are left alone.
// Complexity: O(n·V) worst case for ordered inserts.
func addNodes(g *Graph, ids ...string) {
	for _, id := range ids {
		g.InsertNode(id)
	}
}

// addIndexedNodes inserts idFn(0..n-1) and returns the IDs in index order.
func addIndexedNodes(g *Graph, n int, idFn IDFn) []string {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = idFn(i)
	}
	addNodes(g, ids...)

	return ids
}

// link inserts u -> v (and v -> u when cfg.symmetric) with a weight drawn
// from cfg. An edge that already exists is not an error.
func link(method string, g *Graph, cfg builderConfig, u, v string) error {
	if _, err := g.InsertEdge(u, v, cfg.edgeOptions()...); err != nil {
		return fmt.Errorf("%s: InsertEdge(%s→%s): %w", method, u, v, err)
	}
	if cfg.symmetric && u != v {
		if _, err := g.InsertEdge(v, u, cfg.edgeOptions()...); err != nil {
			return fmt.Errorf("%s: InsertEdge(%s→%s): %w", method, v, u, err)
		}
	}

	return nil
}

// makeIDs generates n IDs by concatenating prefix and index.
// Example: makeIDs("L",3) → {"L0","L1","L2"}.
func makeIDs(prefix string, n int) []string {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = prefix + strconv.Itoa(i)
	}

	return ids
}

// gridNodeID formats a 2D grid coordinate as "r,c".
func gridNodeID(r, c int) string {
	return strconv.Itoa(r) + "," + strconv.Itoa(c)
}
