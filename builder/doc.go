// Package builder generates synthetic transit networks for tests, benchmarks
// and the `generate` command.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – Build(bopts, cons...): resolves options, runs constructors in order
//     over one network.Builder and freezes the result.
//     – Constructor: a deterministic mutation of a network.Builder.
//   - Topologies (impl_*.go):
//     – Corridor(n):        n stops on a bidirectional line with a parallel walkway.
//     – Grid(rows, cols):   row and column lines over a rows×cols stop lattice.
//     – RandomTransit(n,p): a walkable spine plus random lines with probability p.
//   - Configuration (BuilderOption):
//     – WithIDScheme:                  stop ID scheme (IDFn); see also
//       WithStopPrefix and WithPaddedStops for prefixed stop names.
//     – WithSeed, WithRand:            RNG for stochastic constructors.
//     – WithCostFn, WithFrequencyFn:   in-vehicle cost and frequency draws.
//     – WithWalkFactor:                walk cost as a multiple of line cost.
//
// Guarantees:
//
//   - Determinism: same constructors, options and seed ⇒ identical networks,
//     including link insertion order.
//   - Option constructors panic on meaningless values; constructors return
//     sentinel errors and never panic.
//
// Link IDs follow "<kind>:<from>><to>" (e.g. "line:3>4", "walk:4>3").
package builder
