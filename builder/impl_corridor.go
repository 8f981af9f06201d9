// SPDX-License-Identifier: MIT
// Package: hyperpath/builder
//
// impl_corridor.go - Corridor(n): a single bidirectional line with a walkway.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewStops).
//   • Stops cfg.idFn(0..n-1) in index order.
//   • For each i: line i→i+1, line i+1→i, walk i→i+1, walk i+1→i (in that order).
//
// Complexity: O(n) stops + O(4(n-1)) links.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hyperpath/network"
)

const (
	methodCorridor   = "Corridor"
	minCorridorStops = 2
)

// Corridor returns a Constructor for an n-stop corridor.
func Corridor(n int) Constructor {
	return func(b *network.Builder, cfg builderConfig) error {
		// 1) Validate
		if n < minCorridorStops {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCorridor, n, minCorridorStops, ErrTooFewStops)
		}

		// 2) Stops
		for i := 0; i < n; i++ {
			if err := b.AddNode(cfg.idFn(i), network.RoleTransfer); err != nil {
				return fmt.Errorf("%s: AddNode(%s): %w", methodCorridor, cfg.idFn(i), err)
			}
		}

		// 3) Links between consecutive stops
		for i := 0; i+1 < n; i++ {
			if err := addPair(b, cfg, methodCorridor, cfg.idFn(i), cfg.idFn(i+1), true); err != nil {
				return err
			}
		}

		return nil
	}
}
