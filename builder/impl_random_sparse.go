// SPDX-License-Identifier: MIT
// Package: gdwg/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like generator over ordered pairs (i,j): each admissible
//     edge is kept independently with probability p.
//   - Self-loops are admissible only with WithLoops.
//
// Contract:
//   - n ≥ MinSparseNodes (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil (else ErrNeedRandSource), even for p∈{0,1}.
//   - Adds nodes via cfg.idFn in ascending index order (0..n-1).
//
// Complexity:
//   - Time: O(n²) Bernoulli trials.
//
// Determinism:
//   - Trial order is i asc then j asc; for a fixed seed the graph is fixed.
//     Weights are drawn right after a successful trial from the same rng.

package builder

import "fmt"

const methodRandomSparse = "RandomSparse"

// RandomSparse returns a Constructor that samples a random directed graph
// over n nodes with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if err := validateMin(methodRandomSparse, "n", n, MinSparseNodes); err != nil {
			return err
		}
		if err := validateProbability(methodRandomSparse, p); err != nil {
			return err
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		ids := addIndexedNodes(g, n, cfg.idFn)
		for i := range ids {
			for j := range ids {
				if i == j && !cfg.loops {
					continue
				}
				if cfg.rng.Float64() >= p {
					continue
				}
				if err := link(methodRandomSparse, g, cfg, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
