// SPDX-License-Identifier: MIT
// Package: pathlab/builder
//
// config.go: resolved builder configuration and its functional options.

package builder

import (
	"math/rand"
	"strconv"
)

// BuilderOption mutates the builder configuration before constructors run.
type BuilderOption func(*builderConfig)

type builderConfig struct {
	// Vertex ID strategy: index -> ID (deterministic).
	idFn func(int) string
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Weight generator for edges; must return values ≥ 0.
	weightFn func(*rand.Rand) int64
}

const defaultConstWeight = int64(1)

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     defaultID,
		rng:      nil,
		weightFn: func(*rand.Rand) int64 { return defaultConstWeight },
	}
	// last-wins
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func defaultID(i int) string {
	return "v" + strconv.Itoa(i)
}

// WithIDScheme sets the vertex ID generator: idx -> string.
// Panics on nil; the generator must never return "".
func WithIDScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic builders. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new seeded *rand.Rand (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithConstantWeight gives every generated edge weight w. Panics if w < 0.
func WithConstantWeight(w int64) BuilderOption {
	if w < 0 {
		panic("builder: WithConstantWeight(w<0)")
	}
	return func(c *builderConfig) {
		c.weightFn = func(*rand.Rand) int64 { return w }
	}
}

// WithUniformWeight draws weights uniformly from [min, max].
// Panics if min < 0 or max < min. Needs an RNG at build time unless min == max.
func WithUniformWeight(min, max int64) BuilderOption {
	if min < 0 || max < min {
		panic("builder: WithUniformWeight requires 0 ≤ min ≤ max")
	}
	return func(c *builderConfig) {
		c.weightFn = func(rng *rand.Rand) int64 {
			if rng == nil || min == max {
				return min
			}
			return min + rng.Int63n(max-min+1)
		}
	}
}
