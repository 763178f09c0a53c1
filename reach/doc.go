// Package reach computes the set of vertices reachable from a source in a
// core.Graph, ignoring edge weights.
//
// What
//
//   - ReachableFrom returns a Set that always contains the source.
//   - The computation is a breadth-first fixpoint: starting from {source},
//     every round collects the neighbors of all reached vertices that are not
//     reached yet; an empty round ends the search.
//   - Destination-only vertices have no adjacency entry in core.Graph and are
//     simply treated as having no outgoing edges.
//
// Why
//
//   - Answers "is there any route?" without paying for distances.
//   - t ∈ ReachableFrom(g, s) exactly when dijkstra.ShortestPath(g, s, t)
//     succeeds, which makes it a cheap oracle for tests and callers.
//
// Termination
//
//	Each non-final round strictly grows the reached set, and the set is
//	bounded by g.VertexCount()+1, so the loop ends on any finite graph.
//
// Complexity (V = |Vertices|, E = |Edges|, R = number of rounds ≤ V)
//
//   - Time:   O(R·(V + E)); each round rescans every reached vertex.
//   - Memory: O(V)
//
// Options
//
//   - WithContext(ctx):   checked once per round; cancellation aborts with ctx.Err().
//   - WithOnRound(fn):    called after every growing round with the round
//     number (1-based) and the count of newly reached vertices.
//
// Errors
//
//   - ErrGraphNil       if the graph pointer is nil.
//   - ErrEmptySource    if the source ID is empty.
//   - ctx.Err()         if the context is cancelled.
package reach
