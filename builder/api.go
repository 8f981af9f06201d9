// SPDX-License-Identifier: MIT
// Package: hyperpath/builder
//
// api.go - public entry point of the builder package.
//
// Design contract:
//   - One orchestrator: Build(bopts, cons...). Resolves cfg, runs cons in order over
//     a single network.Builder, then freezes it with network.BuildNetwork semantics.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical networks.
//   - Safety: constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hyperpath/network"
)

// Constructor applies a deterministic mutation to b using the resolved config.
// Constructors validate their parameters first and add stops before links.
type Constructor func(b *network.Builder, cfg builderConfig) error

// Build resolves bopts, applies every constructor in order and returns the
// frozen network. Stops shared between constructors (same ID) are merged.
//
// Errors:
//   - nil constructor → ErrConstructFailed.
//   - constructor errors are wrapped as "Build: %w"; a non-positive frequency
//     or negative cost draw surfaces as network.ErrInvalidCost.
//   - duplicate link IDs across constructors → network.ErrInvalidNetwork.
func Build(bopts []BuilderOption, cons ...Constructor) (*network.Network, error) {
	cfg := newBuilderConfig(bopts...)
	b := network.NewBuilder(network.WithAutoNodes())

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(b, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return b.Build()
}

// linkID renders the documented "<kind>:<from>><to>" link ID.
func linkID(kind network.Kind, from, to string) string {
	return kind.String() + ":" + from + ">" + to
}

// addPair emits a line in both directions between u and v, plus a walkway
// when walk is true. Cost and frequency are drawn once per direction pair.
func addPair(b *network.Builder, cfg builderConfig, method, u, v string, walk bool) error {
	cost := cfg.costFn(cfg.rng)
	freq := cfg.freqFn(cfg.rng)
	links := []network.Link{
		network.Line(linkID(network.KindLine, u, v), u, v, cost, freq),
		network.Line(linkID(network.KindLine, v, u), v, u, cost, freq),
	}
	if walk {
		w := cost * cfg.walkFactor
		links = append(links,
			network.Walk(linkID(network.KindWalk, u, v), u, v, w),
			network.Walk(linkID(network.KindWalk, v, u), v, u, w),
		)
	}
	for _, l := range links {
		if err := b.AddLink(l); err != nil {
			return fmt.Errorf("%s: AddLink(%s): %w", method, l.ID, err)
		}
	}

	return nil
}
