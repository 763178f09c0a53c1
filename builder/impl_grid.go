// SPDX-License-Identifier: MIT
// Package: pathlab/builder
//
// impl_grid.go: Grid(rows, cols) and Planar(n) constructors.
//
// Vertex IDs use the fixed scheme "r_c" (row-major), independent of cfg.idFn,
// so coordinates stay explicit.
//
// Determinism:
//   • Stable edge order: for each (r,c) emit Right then Down.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathlab/core"
)

const (
	methodGrid   = "Grid"
	methodPlanar = "Planar"
	minGridDim   = 1
	gridIDFmt    = "%d_%d"
)

// GridID returns the vertex ID used by Grid and Planar for cell (r, c).
func GridID(r, c int) string {
	return fmt.Sprintf(gridIDFmt, r, c)
}

// Grid returns a Constructor for a rows×cols grid where every pair of
// orthogonal neighbors is joined by arcs in both directions, each weighted
// by cfg.weightFn.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridID(r, c)
				if c+1 < cols {
					v := GridID(r, c+1)
					if err := addEdge(methodGrid, g, cfg, u, v); err != nil {
						return err
					}
					if err := addEdge(methodGrid, g, cfg, v, u); err != nil {
						return err
					}
				}
				if r+1 < rows {
					v := GridID(r+1, c)
					if err := addEdge(methodGrid, g, cfg, u, v); err != nil {
						return err
					}
					if err := addEdge(methodGrid, g, cfg, v, u); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// Planar returns a Constructor for an n×n grid with 1-based coordinates and
// only right/down arcs: (i,j)→(i,j+1) weighs j and (i,j)→(i+1,j) weighs i.
// The weights ignore cfg.weightFn. The cheapest route from "1_1" to "n_n"
// costs n·(n-1).
func Planar(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minGridDim {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPlanar, n, minGridDim, ErrTooFewVertices)
		}
		for i := 1; i <= n; i++ {
			for j := 1; j <= n; j++ {
				u := GridID(i, j)
				if j < n {
					if err := g.AddEdge(u, GridID(i, j+1), int64(j)); err != nil {
						return fmt.Errorf("%s: %w: %w", methodPlanar, ErrConstructFailed, err)
					}
				}
				if i < n {
					if err := g.AddEdge(u, GridID(i+1, j), int64(i)); err != nil {
						return fmt.Errorf("%s: %w: %w", methodPlanar, ErrConstructFailed, err)
					}
				}
			}
		}

		return nil
	}
}
