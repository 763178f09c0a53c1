// Package pathlab is a small engine for single-source shortest paths and
// reachability over directed graphs with non-negative integer weights.
//
// Everything is organized under subpackages:
//
//	core/     GraphStore: adjacency mapping, thread-safe reads, Freeze
//	reach/    reachability fixpoint (weight-insensitive)
//	dijkstra/ frontier-expansion shortest path, three strategies
//	route/    predecessor records and path reconstruction
//	builder/  deterministic fixture graphs (chain, grid, planar, random)
//	loader/   "SRC, DST, WEIGHT" edge-list reader and writer
//	export/   Graphviz DOT output
//
// Quick example:
//
//	A ──1──▶ B ──2──▶ C
//	 └─────────4──────▶
//
//	g := core.NewGraph()
//	_ = g.AddEdge("A", "B", 1)
//	_ = g.AddEdge("B", "C", 2)
//	_ = g.AddEdge("A", "C", 4)
//	res, _ := dijkstra.ShortestPath(g, "A", "C")
//	// res.Distance == 3, res.Path == [A B C]
//
// The pathlab command (cmd/pathlab) exposes the same operations on
// edge-list files.
package pathlab
