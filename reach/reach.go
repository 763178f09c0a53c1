package reach

import (
	"github.com/katalvlaran/pathlab/core"
)

// ReachableFrom returns every vertex reachable from source in g, source
// included. Edge weights are ignored. An unknown source yields {source}.
func ReachableFrom(g *core.Graph, source string, opts ...Option) (Set, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if source == "" {
		return nil, ErrEmptySource
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	reached := Set{source: {}}
	for round := 1; ; round++ {
		// cancellation check (once per round)
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		news := expand(g, reached)
		if len(news) == 0 {
			return reached, nil
		}
		for id := range news {
			reached[id] = struct{}{}
		}
		o.OnRound(round, len(news))
	}
}

// expand collects the neighbors of every reached vertex that are not yet reached.
func expand(g *core.Graph, reached Set) Set {
	news := make(Set)
	for id := range reached {
		for _, nbr := range g.NeighborIDs(id) {
			if !reached.Has(nbr) {
				news[nbr] = struct{}{}
			}
		}
	}

	return news
}
