// SPDX-License-Identifier: MIT
// Package: hyperpath/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn        = DefaultIDFn       ("0","1","2",...)
//   • rng         = nil               (pure unless seeded)
//   • costFn      = ConstantFn(DefaultLineCost)
//   • freqFn      = ConstantFn(DefaultFrequency)
//   • walkFactor  = DefaultWalkFactor

package builder

import (
	"math/rand"
)

// Deterministic defaults (named, no magic numbers).
const (
	DefaultLineCost   = 2.0 // in-vehicle cost between adjacent stops
	DefaultFrequency  = 0.1 // one vehicle every 10 cost units
	DefaultWalkFactor = 4.0 // walking is four times slower than riding
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	idFn       IDFn
	rng        *rand.Rand
	costFn     DrawFn
	freqFn     DrawFn
	walkFactor float64
}

// newBuilderConfig applies options in order over the defaults (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:       DefaultIDFn,
		costFn:     ConstantFn(DefaultLineCost),
		freqFn:     ConstantFn(DefaultFrequency),
		walkFactor: DefaultWalkFactor,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// BuilderOption customizes constructors by mutating a builderConfig.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the stop ID generator. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic constructors. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithCostFn overrides the in-vehicle cost generator. Panics on nil.
func WithCostFn(fn DrawFn) BuilderOption {
	if fn == nil {
		panic("builder: WithCostFn(nil)")
	}
	return func(c *builderConfig) {
		c.costFn = fn
	}
}

// WithFrequencyFn overrides the line frequency generator. Panics on nil.
// Draws ≤ 0 make the constructor fail with network.ErrInvalidCost.
func WithFrequencyFn(fn DrawFn) BuilderOption {
	if fn == nil {
		panic("builder: WithFrequencyFn(nil)")
	}
	return func(c *builderConfig) {
		c.freqFn = fn
	}
}

// WithWalkFactor sets walk cost = factor × line cost. Panics unless factor > 0.
func WithWalkFactor(factor float64) BuilderOption {
	if !(factor > 0) {
		panic("builder: WithWalkFactor(factor<=0)")
	}
	return func(c *builderConfig) {
		c.walkFactor = factor
	}
}
