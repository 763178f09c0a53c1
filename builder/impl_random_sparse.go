// SPDX-License-Identifier: MIT
// Package: pathlab/builder
//
// impl_random_sparse.go: Erdős–Rényi-like directed sampler.
//
// Determinism:
//   • Trial order: for each i asc, j asc (i ≠ j); one rng draw per trial,
//     plus one weight draw per accepted edge.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathlab/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that keeps every ordered pair (i, j),
// i ≠ j, of n vertices with independent probability p. Vertices that end up
// without any edge are not represented in the graph.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		// RNG is only required for true sampling.
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		for i := 0; i < n; i++ {
			u := cfg.idFn(i)
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				keep := p == probMax
				if cfg.rng != nil && p > probMin && p < probMax {
					keep = cfg.rng.Float64() < p
				}
				if !keep {
					continue
				}
				if err := addEdge(methodRandomSparse, g, cfg, u, cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
