// Package core provides the in-memory weighted digraph store used by every
// solver in pathlab.
//
// The Graph G = (V,E) is kept as an adjacency mapping:
//
//	adjacency[from][to] = weight
//
// Only vertices that own at least one outgoing edge have an adjacency entry.
// A vertex that appears solely as an edge destination is still part of the
// graph (HasVertex, VertexCount), but it is never given an empty bucket.
// Lookups for such vertices are not errors:
//
//	Neighbors(id)   → empty, non-nil map
//	NeighborIDs(id) → empty slice
//
// This "incomplete adjacency" tolerance is the documented policy of the
// store, so callers never have to pre-register destinations.
//
// Weights:
//
//   - Weights are int64 and must be ≥ 0; AddEdge rejects negatives with
//     ErrInvalidWeight and leaves the store unchanged.
//   - Adding the same (from,to) pair twice overwrites the previous weight.
//     Parallel edges are not modeled.
//
// Core Methods:
//
//	AddEdge(from, to string, weight int64) error  // O(1)
//	Neighbors(id string) map[string]int64         // O(d), defensive copy
//	NeighborIDs(id string) []string               // O(d·log d), sorted
//	Weight(from, to string) (int64, bool)         // O(1)
//	HasVertex(id string) bool                     // O(V+E) worst case
//	VertexCount() int                             // O(V+E), union of sources and destinations
//	EdgeCount() int                               // O(V)
//	Edges() []Edge                                // O(E·log E), sorted by (From, To)
//	Sources() []string                            // O(V·log V)
//	Freeze() / Frozen() bool                      // O(1)
//	Clone() *Graph                                // O(V+E)
//
// Concurrency:
//
//	A single sync.RWMutex guards the adjacency mapping. Any number of solvers
//	may read the same Graph concurrently. Mutating a Graph while a solve is
//	in flight is undefined; call Freeze once loading is complete and every
//	later AddEdge fails with ErrFrozen.
//
// Errors:
//
//	ErrEmptyVertexID  – zero-length vertex ID (reserved as "no predecessor")
//	ErrInvalidWeight  – negative edge weight
//	ErrFrozen         – mutation attempted after Freeze
package core
