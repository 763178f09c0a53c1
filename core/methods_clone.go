// File: methods_clone.go
// Role: Deep copy of a graph.
// Concurrency:
//   - Read lock on the source for the duration of the copy.

package core

// Clone returns a deep copy of g. The clone is never frozen, so it can be
// extended without affecting the original.
// Complexity: O(V+E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph(WithCapacity(len(g.adjacency)))
	for from, adj := range g.adjacency {
		cp := make(map[string]int64, len(adj))
		for to, w := range adj {
			cp[to] = w
		}
		clone.adjacency[from] = cp
	}

	return clone
}
