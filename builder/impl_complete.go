// SPDX-License-Identifier: MIT
// Package: gdwg/builder
//
// impl_complete.go - Complete(n) and CompleteBipartite(n1, n2) constructors.
//
// Contract:
//   • Complete: n ≥ MinCompleteNodes. Every ordered pair u != v gets u -> v,
//     emitted for i asc, j asc. WithSymmetric adds nothing here.
//   • CompleteBipartite: n1, n2 ≥ MinPartition. Nodes use cfg.leftPrefix and
//     cfg.rightPrefix; edges L_i -> R_j for i asc, j asc.
//
// Complexity:
//   • Complete: O(n²) edges. CompleteBipartite: O(n1·n2) edges.

package builder

import "fmt"

const (
	methodComplete  = "Complete"
	methodBipartite = "CompleteBipartite"
)

// Complete returns a Constructor that builds the complete directed graph K_n.
func Complete(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if err := validateMin(methodComplete, "n", n, MinCompleteNodes); err != nil {
			return err
		}
		ids := addIndexedNodes(g, n, cfg.idFn)
		for i := range ids {
			for j := range ids {
				if i == j {
					continue
				}
				if _, err := g.InsertEdge(ids[i], ids[j], cfg.edgeOptions()...); err != nil {
					return fmt.Errorf("%s: InsertEdge(%s→%s): %w", methodComplete, ids[i], ids[j], err)
				}
			}
		}

		return nil
	}
}

// CompleteBipartite returns a Constructor that links every left node to
// every right node.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if err := validateMin(methodBipartite, "n1", n1, MinPartition); err != nil {
			return err
		}
		if err := validateMin(methodBipartite, "n2", n2, MinPartition); err != nil {
			return err
		}
		left := makeIDs(cfg.leftPrefix, n1)
		right := makeIDs(cfg.rightPrefix, n2)
		addNodes(g, left...)
		addNodes(g, right...)
		for _, u := range left {
			for _, v := range right {
				if err := link(methodBipartite, g, cfg, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
