package dijkstra

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/pathlab/core"
	"github.com/katalvlaran/pathlab/route"
)

// ShortestPath returns the minimum-cost path from source to target in g.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. g must be non-nil (ErrGraphNil).
//  3. source and target must be non-empty (ErrEmptySource, ErrEmptyTarget).
//
// Outcomes:
//   - source == target: Distance 0, Path [source].
//   - target settled:   the full Result.
//   - frontier empty:   ErrNotFound (wrapped with the endpoints).
//   - every frontier cost exceeds math.MaxInt64: ErrDistanceOverflow.
//
// Unknown vertices are not errors: an unknown source simply has no
// outgoing edges, so any other target yields ErrNotFound.
func ShortestPath(g *core.Graph, source, target string, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if g == nil {
		return nil, ErrGraphNil
	}
	if source == "" {
		return nil, ErrEmptySource
	}
	if target == "" {
		return nil, ErrEmptyTarget
	}

	r := newRunner(g, o, source)

	return r.run(target)
}

// ShortestDistance is ShortestPath without the path.
func ShortestDistance(g *core.Graph, source, target string, opts ...Option) (int64, error) {
	res, err := ShortestPath(g, source, target, opts...)
	if err != nil {
		return 0, err
	}

	return res.Distance, nil
}

// runner holds the mutable state of a single ShortestPath call.
type runner struct {
	opts    Options
	source  string
	visited route.Visited // vertex → settled (distance, predecessor)
	front   frontierer
	rounds  int
}

func newRunner(g *core.Graph, o Options, source string) *runner {
	visited := route.Visited{source: route.Root()}

	return &runner{
		opts:    o,
		source:  source,
		visited: visited,
		front:   newFrontierer(o.Strategy, g, visited),
	}
}

// run settles one vertex per round until target is settled or the frontier is empty.
func (r *runner) run(target string) (*Result, error) {
	if target == r.source {
		return r.result(target)
	}

	settled := r.source
	for {
		select {
		case <-r.opts.Ctx.Done():
			return nil, r.opts.Ctx.Err()
		default:
		}
		if r.opts.MaxRounds > 0 && r.rounds >= r.opts.MaxRounds {
			return nil, fmt.Errorf("%w: %d rounds without settling %q", ErrRoundBudget, r.rounds, target)
		}

		fr := r.front.next(settled)
		if len(fr) == 0 {
			return nil, fmt.Errorf("%w: %q → %q", ErrNotFound, r.source, target)
		}

		e, dist, overflow := cheapest(fr, r.visited)
		if overflow {
			return nil, fmt.Errorf("%w: %q → %q via %s→%s", ErrDistanceOverflow, r.source, target, e.from, e.to)
		}
		r.visited[e.to] = route.Record{Distance: dist, Pred: e.from}
		r.rounds++
		r.trace(e, dist)

		if e.to == target {
			return r.result(target)
		}
		settled = e.to
	}
}

// result assembles the final Result from the visited record.
func (r *runner) result(target string) (*Result, error) {
	path, err := route.Reconstruct(r.visited, target)
	if err != nil {
		return nil, fmt.Errorf("dijkstra: reconstruct %q: %w", target, err)
	}

	return &Result{
		Distance: r.visited[target].Distance,
		Path:     path,
		Visited:  r.visited,
		Rounds:   r.rounds,
		Strategy: r.opts.Strategy,
	}, nil
}

func (r *runner) trace(e edgeKey, dist int64) {
	if r.opts.Logger == nil {
		return
	}
	r.opts.Logger.WithFields(logrus.Fields{
		"strategy": r.opts.Strategy.String(),
		"round":    r.rounds,
		"vertex":   e.to,
		"pred":     e.from,
		"distance": dist,
	}).Debug("settled vertex")
}
