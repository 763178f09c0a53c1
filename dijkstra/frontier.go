package dijkstra

import (
	"iter"
	"math"

	"github.com/katalvlaran/pathlab/core"
	"github.com/katalvlaran/pathlab/route"
)

// edgeKey identifies a directed edge from→to.
type edgeKey struct {
	from, to string
}

// less orders edges by (from, to); used only to break cost ties.
func (e edgeKey) less(o edgeKey) bool {
	if e.from != o.from {
		return e.from < o.from
	}
	return e.to < o.to
}

// frontier is the set of edges leaving the visited set, edge → weight.
type frontier map[edgeKey]int64

// frontierer produces the frontier for the next round. settled is the
// vertex added to visited by the previous round (the source on round one).
type frontierer interface {
	next(settled string) frontier
}

// newFrontierer binds the strategy to the solve-local visited record.
func newFrontierer(s Strategy, g *core.Graph, visited route.Visited) frontierer {
	switch s {
	case StrategyRescan:
		return &rescanner{g: g, visited: visited}
	case StrategyDeclarative:
		return &declarative{g: g, visited: visited}
	default:
		return &incremental{g: g, visited: visited, fr: make(frontier)}
	}
}

// cheapest returns the frontier edge minimizing visited[from].Distance + weight,
// together with that cost. A sum that does not fit in int64 ranks after every
// finite cost; overflow reports that the chosen edge is such a sum, in which
// case cost is meaningless. fr must be non-empty.
func cheapest(fr frontier, visited route.Visited) (best edgeKey, bestCost int64, overflow bool) {
	found := false
	for e, w := range fr {
		base := visited[e.from].Distance
		over := w > math.MaxInt64-base
		cost := base + w
		if found {
			switch {
			case over != overflow:
				if over {
					continue
				}
			case over:
				// both overflow: only the key decides
				if !e.less(best) {
					continue
				}
			case cost > bestCost || (cost == bestCost && !e.less(best)):
				continue
			}
		}
		best, bestCost, overflow, found = e, cost, over, true
	}

	return best, bestCost, overflow
}

// rescanner rebuilds the frontier every round with an explicit scan over
// the outgoing edges of every visited vertex.
type rescanner struct {
	g       *core.Graph
	visited route.Visited
}

func (r *rescanner) next(string) frontier {
	fr := make(frontier)
	for s := range r.visited {
		for d, w := range r.g.Neighbors(s) {
			if _, seen := r.visited[d]; !seen {
				fr[edgeKey{from: s, to: d}] = w
			}
		}
	}

	return fr
}

// declarative rebuilds the frontier every round as
// { e ∈ leaving(visited) | e.to ∉ visited }.
type declarative struct {
	g       *core.Graph
	visited route.Visited
}

func (d *declarative) next(string) frontier {
	return collect(d.leaving(), d.unvisited)
}

// leaving yields every edge whose source is visited.
func (d *declarative) leaving() iter.Seq2[edgeKey, int64] {
	return func(yield func(edgeKey, int64) bool) {
		for s := range d.visited {
			for to, w := range d.g.Neighbors(s) {
				if !yield(edgeKey{from: s, to: to}, w) {
					return
				}
			}
		}
	}
}

func (d *declarative) unvisited(e edgeKey) bool {
	_, seen := d.visited[e.to]
	return !seen
}

// collect materializes the edges of seq accepted by keep.
func collect(seq iter.Seq2[edgeKey, int64], keep func(edgeKey) bool) frontier {
	fr := make(frontier)
	for e, w := range seq {
		if keep(e) {
			fr[e] = w
		}
	}

	return fr
}

// incremental keeps one frontier for the whole solve and patches it with
// the vertex settled in the previous round.
type incremental struct {
	g       *core.Graph
	visited route.Visited
	fr      frontier
}

func (in *incremental) next(settled string) frontier {
	for to, w := range in.g.Neighbors(settled) {
		if _, seen := in.visited[to]; !seen {
			in.fr[edgeKey{from: settled, to: to}] = w
		}
	}
	// settled is no longer a valid destination
	for e := range in.fr {
		if e.to == settled {
			delete(in.fr, e)
		}
	}

	return in.fr
}
