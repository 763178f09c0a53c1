// Package route turns the predecessor links gathered by a shortest-path
// solve into an ordered source→target vertex sequence.
//
// A Visited record maps each settled vertex to its final distance from the
// source and the vertex it was reached from. The source is the only record
// whose Pred is "" (empty IDs are rejected by core, so "" never names a
// real vertex).
//
// Complexity:
//
//   - Reconstruct: O(L) time and space, L = path length.
//   - Cost:        O(L) weight lookups.
package route

import (
	"errors"
	"fmt"
)

// Sentinel errors for path reconstruction.
var (
	// ErrTargetNotVisited is returned when the target has no Visited record.
	ErrTargetNotVisited = errors.New("route: target not visited")

	// ErrBrokenChain is returned when a predecessor link points at a vertex
	// with no record, or the links form a cycle.
	ErrBrokenChain = errors.New("route: broken predecessor chain")

	// ErrNoSuchEdge is returned by Cost when two consecutive path vertices
	// are not joined by an edge.
	ErrNoSuchEdge = errors.New("route: no edge between consecutive vertices")
)

// Record is the settled (distance, predecessor) pair of one vertex.
type Record struct {
	Distance int64  // cumulative distance from the source
	Pred     string // predecessor on the shortest path; "" for the source
}

// Visited maps vertex ID → Record. It is owned by a single solve call.
type Visited map[string]Record

// Root returns the record for a source vertex: distance 0, no predecessor.
func Root() Record { return Record{} }

// Distance returns the settled distance of id and whether id was visited.
func (v Visited) Distance(id string) (int64, bool) {
	rec, ok := v[id]

	return rec.Distance, ok
}

// Reconstruct walks predecessor links back from target and returns the
// path in source→target order. The walk stops at the first record whose
// Pred is "", which is the source.
func Reconstruct(visited Visited, target string) ([]string, error) {
	if _, ok := visited[target]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrTargetNotVisited, target)
	}

	// build reversed path
	path := make([]string, 0, 8)
	for cur := target; ; {
		rec, ok := visited[cur]
		if !ok {
			return nil, fmt.Errorf("%w: no record for %q", ErrBrokenChain, cur)
		}
		path = append(path, cur)
		if rec.Pred == "" {
			break
		}
		if len(path) > len(visited) {
			return nil, fmt.Errorf("%w: cycle through %q", ErrBrokenChain, cur)
		}
		cur = rec.Pred
	}

	// reverse to get source → target
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Weigher is the capability Cost needs from a graph. *core.Graph satisfies it.
type Weigher interface {
	Weight(from, to string) (int64, bool)
}

// Cost sums the edge weights along path in g. A path of zero or one
// vertex costs 0.
func Cost(g Weigher, path []string) (int64, error) {
	var total int64
	for i := 1; i < len(path); i++ {
		w, ok := g.Weight(path[i-1], path[i])
		if !ok {
			return 0, fmt.Errorf("%w: %s→%s", ErrNoSuchEdge, path[i-1], path[i])
		}
		total += w
	}

	return total, nil
}
