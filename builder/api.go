// SPDX-License-Identifier: MIT
// Package: gdwg/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic at runtime; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/gdwg/core"
)

// Graph is the instantiation every constructor populates: string node IDs
// and int64 weights.
type Graph = core.Graph[string, int64]

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Insert every node before the edges that reference it.
//   - Preserve determinism for the same config and call order.
type Constructor func(g *Graph, cfg builderConfig) error

// BuildGraph creates an empty Graph, resolves the builder configuration from
// bopts, and applies all constructors in order. Any constructor error is
// wrapped with the context "BuildGraph: %w" and returned immediately.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*Graph, error) {
	g := core.NewGraph[string, int64]()

	return g, Apply(g, bopts, cons...)
}

// Apply runs constructors against an existing graph. Nodes and edges that
// already exist are left as they are, so topologies compose.
func Apply(g *Graph, bopts []BuilderOption, cons ...Constructor) error {
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return nil
}

// Topology factories - implemented in impl_*.go.
//
// Each factory returns a Constructor closure that:
//   - Adds nodes via cfg.idFn (except the fixed CenterNodeID hub).
//   - Emits directed edges in a stable, documented order; with
//     WithSymmetric every edge is mirrored.
//   - Draws weights from cfg.weightFn, or emits unweighted edges when no
//     weight function is configured.
//
//	Path(n)                    0 -> 1 -> ... -> n-1            (n ≥ 2)
//	Cycle(n)                   Path(n) + (n-1) -> 0            (n ≥ 3)
//	Star(n)                    Center -> 1..n-1                (n ≥ 2)
//	Wheel(n)                   Cycle(n-1) + Center -> rim      (n ≥ 4)
//	Complete(n)                every ordered pair u != v       (n ≥ 1)
//	CompleteBipartite(n1, n2)  L_i -> R_j                      (n1, n2 ≥ 1)
//	Grid(rows, cols)           "r,c" -> right and bottom cells (rows, cols ≥ 1)
//	RandomSparse(n, p)         each ordered pair with prob. p  (n ≥ 1, p ∈ [0,1])
