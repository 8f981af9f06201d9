// SPDX-License-Identifier: MIT
// Package: hyperpath/builder
//
// impl_random_transit.go - RandomTransit(n, p): a walkable spine plus random lines.
//
// Canonical model:
//   • Stops cfg.idFn(0..n-1); walkways link i↔i+1 so every stop reaches every other.
//   • Each ordered pair (i,j), i≠j, gets a line i→j independently with probability p.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewStops); 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • cfg.rng required when 0 < p < 1 (else ErrNeedRandSource).
//   • Trial order: i asc, j asc; costs/frequencies drawn only for kept lines.
//
// Complexity: O(n²) Bernoulli trials.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hyperpath/network"
)

const (
	methodRandomTransit = "RandomTransit"
	minRandomStops      = 2
	probMin             = 0.0
	probMax             = 1.0
)

// RandomTransit returns a Constructor sampling random lines over n stops.
func RandomTransit(n int, p float64) Constructor {
	return func(b *network.Builder, cfg builderConfig) error {
		// 1) Validate
		if n < minRandomStops {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomTransit, n, minRandomStops, ErrTooFewStops)
		}
		if p < probMin || p > probMax || p != p {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomTransit, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomTransit, ErrNeedRandSource)
		}

		// 2) Stops
		for i := 0; i < n; i++ {
			if err := b.AddNode(cfg.idFn(i), network.RoleTransfer); err != nil {
				return fmt.Errorf("%s: AddNode(%s): %w", methodRandomTransit, cfg.idFn(i), err)
			}
		}

		// 3) Walkable spine
		for i := 0; i+1 < n; i++ {
			u, v := cfg.idFn(i), cfg.idFn(i+1)
			w := cfg.costFn(cfg.rng) * cfg.walkFactor
			for _, l := range []network.Link{
				network.Walk(linkID(network.KindWalk, u, v), u, v, w),
				network.Walk(linkID(network.KindWalk, v, u), v, u, w),
			} {
				if err := b.AddLink(l); err != nil {
					return fmt.Errorf("%s: AddLink(%s): %w", methodRandomTransit, l.ID, err)
				}
			}
		}

		// 4) Bernoulli lines
		for i := 0; i < n; i++ {
			u := cfg.idFn(i)
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if p < probMax && (cfg.rng == nil || cfg.rng.Float64() >= p) {
					continue
				}
				v := cfg.idFn(j)
				l := network.Line(linkID(network.KindLine, u, v), u, v, cfg.costFn(cfg.rng), cfg.freqFn(cfg.rng))
				if err := b.AddLink(l); err != nil {
					return fmt.Errorf("%s: AddLink(%s): %w", methodRandomTransit, l.ID, err)
				}
			}
		}

		return nil
	}
}
