// Package core defines the Graph and Edge types, graph options,
// sentinel errors, and the NewGraph constructor.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that a vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrInvalidWeight indicates an attempt to insert an edge with a negative weight.
	ErrInvalidWeight = errors.New("core: edge weight must be non-negative")

	// ErrFrozen indicates a mutation on a Graph that has been frozen for querying.
	ErrFrozen = errors.New("core: graph is frozen")
)

// Edge is a directed, weighted connection From→To.
type Edge struct {
	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the non-negative traversal cost.
	Weight int64
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the adjacency mapping for about n source vertices.
// Non-positive values are ignored.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.sizeHint = n
		}
	}
}

// Graph is a directed graph with non-negative int64 weights.
//
// adjacency[from][to] = weight. Destination-only vertices have no entry.
type Graph struct {
	mu sync.RWMutex // guards adjacency and frozen

	sizeHint int  // initial capacity for adjacency
	frozen   bool // set by Freeze; rejects further AddEdge

	adjacency map[string]map[string]int64
}

// NewGraph creates an empty, mutable Graph.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	g.adjacency = make(map[string]map[string]int64, g.sizeHint)

	return g
}
