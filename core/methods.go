// File: methods.go
// Role: Edge insertion and read-only adjacency queries.
// Determinism:
//   - NeighborIDs, Edges and Sources return sorted results.
// Concurrency:
//   - AddEdge/Freeze under the write lock; every query under the read lock.

package core

import (
	"fmt"
	"sort"
)

// AddEdge inserts the directed edge from→to with the given weight.
//
// Steps:
//  1. Validate IDs and weight (nothing is touched on failure).
//  2. Lock, reject if frozen.
//  3. Create the adjacency bucket for from if needed; never for to.
//  4. Store (or overwrite) the weight.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if weight < 0 {
		return fmt.Errorf("%w: %s→%s weight=%d", ErrInvalidWeight, from, to, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.frozen {
		return ErrFrozen
	}
	adj, ok := g.adjacency[from]
	if !ok {
		adj = make(map[string]int64)
		g.adjacency[from] = adj
	}
	adj[to] = weight

	return nil
}

// Neighbors returns a copy of the outgoing edges of id as destination→weight.
// An unknown or destination-only vertex yields an empty, non-nil map.
// Complexity: O(d)
func (g *Graph) Neighbors(id string) map[string]int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	adj := g.adjacency[id]
	out := make(map[string]int64, len(adj))
	for to, w := range adj {
		out[to] = w
	}

	return out
}

// NeighborIDs returns the sorted destinations of id's outgoing edges.
// An unknown or destination-only vertex yields an empty slice.
// Complexity: O(d·log d)
func (g *Graph) NeighborIDs(id string) []string {
	g.mu.RLock()
	adj := g.adjacency[id]
	ids := make([]string, 0, len(adj))
	for to := range adj {
		ids = append(ids, to)
	}
	g.mu.RUnlock()

	sort.Strings(ids)

	return ids
}

// Weight reports the weight of from→to and whether that edge exists.
// Complexity: O(1)
func (g *Graph) Weight(from, to string) (int64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	w, ok := g.adjacency[from][to]

	return w, ok
}

// HasVertex reports whether id appears as a source or a destination of any edge.
// Complexity: O(1) for sources, O(V) scan for destination-only vertices.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.adjacency[id]; ok {
		return true
	}
	for _, adj := range g.adjacency {
		if _, ok := adj[id]; ok {
			return true
		}
	}

	return false
}

// VertexCount returns the number of distinct vertices appearing as either an
// edge source or an edge destination. It is recomputed on every call: a
// diagnostic, not a hot-path query.
// Complexity: O(V+E)
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	seen := make(map[string]struct{}, len(g.adjacency))
	for from, adj := range g.adjacency {
		seen[from] = struct{}{}
		for to := range adj {
			seen[to] = struct{}{}
		}
	}

	return len(seen)
}

// EdgeCount returns the number of stored edges.
// Complexity: O(V)
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := 0
	for _, adj := range g.adjacency {
		n += len(adj)
	}

	return n
}

// Edges returns every (From, To, Weight) triple sorted by From, then To.
// This is the iteration surface for exporters.
// Complexity: O(E·log E)
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	edges := make([]Edge, 0, len(g.adjacency))
	for from, adj := range g.adjacency {
		for to, w := range adj {
			edges = append(edges, Edge{From: from, To: to, Weight: w})
		}
	}
	g.mu.RUnlock()

	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].To < edges[j].To
	})

	return edges
}

// Sources returns the sorted IDs of vertices that own an adjacency entry.
// Complexity: O(V·log V)
func (g *Graph) Sources() []string {
	g.mu.RLock()
	ids := make([]string, 0, len(g.adjacency))
	for id := range g.adjacency {
		ids = append(ids, id)
	}
	g.mu.RUnlock()

	sort.Strings(ids)

	return ids
}

// Freeze marks the graph read-only. Every later AddEdge returns ErrFrozen.
// Freezing twice is a no-op.
func (g *Graph) Freeze() {
	g.mu.Lock()
	g.frozen = true
	g.mu.Unlock()
}

// Frozen reports whether Freeze has been called.
func (g *Graph) Frozen() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.frozen
}
