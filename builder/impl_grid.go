// SPDX-License-Identifier: MIT
// Package: hyperpath/builder
//
// impl_grid.go - Grid(rows, cols): row and column lines over a stop lattice.
//
// Canonical model:
//   • Stop IDs use the fixed scheme "r,c" (row-major), not cfg.idFn.
//   • Every horizontal neighbor pair is served by a line in both directions,
//     every vertical pair likewise; no walkways.
//
// Contract:
//   • rows ≥ 1, cols ≥ 1 and rows*cols ≥ 2 (else ErrTooFewStops).
//   • For each (r,c): emit Right pair then Bottom pair if present.
//
// Complexity: O(rows*cols) stops and links.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hyperpath/network"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d"
)

// Grid returns a Constructor for a rows×cols transit lattice.
func Grid(rows, cols int) Constructor {
	return func(b *network.Builder, cfg builderConfig) error {
		// 1) Validate
		if rows < minGridDim || cols < minGridDim || rows*cols < 2 {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d, at least 2 stops): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewStops)
		}

		// 2) Stops in row-major order
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := fmt.Sprintf(gridIDFmt, r, c)
				if err := b.AddNode(id, network.RoleTransfer); err != nil {
					return fmt.Errorf("%s: AddNode(%s): %w", methodGrid, id, err)
				}
			}
		}

		// 3) Right then Bottom neighbor pairs
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := fmt.Sprintf(gridIDFmt, r, c)
				if c+1 < cols {
					if err := addPair(b, cfg, methodGrid, u, fmt.Sprintf(gridIDFmt, r, c+1), false); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addPair(b, cfg, methodGrid, u, fmt.Sprintf(gridIDFmt, r+1, c), false); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
