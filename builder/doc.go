// Package builder generates deterministic weighted digraph fixtures for
// tests, benchmarks and the `pathlab gen` command.
//
// One orchestrator, BuildGraph(bopts, cons...), creates a core.Graph,
// resolves the builder configuration and applies constructors in order.
//
// Constructors:
//
//	Chain(n)            v0→v1→…→v(n-1)
//	Grid(rows, cols)    4-neighborhood grid, arcs in both directions
//	Planar(n)           n×n grid with right/down arcs only, weights taken from
//	                    the coordinates (row for down, column for right)
//	RandomSparse(n, p)  every ordered pair (i≠j) kept with probability p
//
// Vertex IDs: cfg.idFn(i) for index-based constructors ("v0", "v1", …);
// grid constructors use the fixed "r_c" scheme (no commas, so the IDs
// survive the comma-separated edge-list format).
//
// Determinism: same options, seed and constructor order ⇒ identical graphs.
// Weights: cfg.weightFn(rng), constant 1 by default, never negative
// (core.AddEdge would reject it).
package builder
