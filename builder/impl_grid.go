// SPDX-License-Identifier: MIT
// Package: gdwg/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal grid, each cell linked to its right and bottom neighbors.
//   • Node IDs use the fixed scheme "r,c" (row-major), not cfg.idFn, so
//     coordinates stay readable.
//
// Contract:
//   • rows ≥ MinGridDim and cols ≥ MinGridDim (else ErrTooFewVertices).
//   • WithSymmetric mirrors each link, giving the 4-neighborhood.
//
// Complexity:
//   • Time: O(rows·cols) nodes and edges.
//
// Determinism:
//   • For each (r,c) in row-major order emit Right then Bottom if present.

package builder

const methodGrid = "Grid"

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if err := validateMin(methodGrid, "rows", rows, MinGridDim); err != nil {
			return err
		}
		if err := validateMin(methodGrid, "cols", cols, MinGridDim); err != nil {
			return err
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				addNodes(g, gridNodeID(r, c))
			}
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := gridNodeID(r, c)
				if c+1 < cols {
					if err := link(methodGrid, g, cfg, u, gridNodeID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(methodGrid, g, cfg, u, gridNodeID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
