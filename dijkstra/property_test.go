package dijkstra_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathlab/builder"
	"github.com/katalvlaran/pathlab/core"
	"github.com/katalvlaran/pathlab/dijkstra"
	"github.com/katalvlaran/pathlab/reach"
	"github.com/katalvlaran/pathlab/route"
)

// bellmanFord returns exact single-source distances by repeated relaxation.
// Unreachable vertices are absent from the result.
func bellmanFord(g *core.Graph, source string) map[string]int64 {
	dist := map[string]int64{source: 0}
	edges := g.Edges()
	for i := 0; i <= g.VertexCount(); i++ {
		changed := false
		for _, e := range edges {
			du, ok := dist[e.From]
			if !ok {
				continue
			}
			if dv, ok := dist[e.To]; !ok || du+e.Weight < dv {
				dist[e.To] = du + e.Weight
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	return dist
}

// TestShortestPath_Properties checks, on seeded random graphs, that every
// strategy agrees with an independent reference, returns a path whose cost
// equals the distance, and succeeds exactly for reachable targets.
func TestShortestPath_Properties(t *testing.T) {
	const n = 14
	for seed := int64(1); seed <= 12; seed++ {
		g, err := builder.BuildGraph(
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithUniformWeight(0, 20)},
			builder.RandomSparse(n, 0.15),
		)
		require.NoError(t, err)
		g.Freeze()

		for i := 0; i < n; i++ {
			src := fmt.Sprintf("v%d", i)
			want := bellmanFord(g, src)
			reached, err := reach.ReachableFrom(g, src)
			require.NoError(t, err)
			assert.True(t, reached.Has(src))

			for j := 0; j < n; j++ {
				dst := fmt.Sprintf("v%d", j)
				var distances []int64
				for _, s := range dijkstra.Strategies() {
					res, err := dijkstra.ShortestPath(g, src, dst, dijkstra.WithStrategy(s))
					wantDist, reachable := want[dst]
					require.Equal(t, reachable, reached.Has(dst), "seed=%d %s→%s", seed, src, dst)

					if !reachable {
						require.True(t, errors.Is(err, dijkstra.ErrNotFound), "seed=%d %s→%s: %v", seed, src, dst, err)
						continue
					}
					require.NoError(t, err, "seed=%d %s→%s", seed, src, dst)
					assert.Equal(t, wantDist, res.Distance, "seed=%d %s→%s %s", seed, src, dst, s)
					assert.Equal(t, src, res.Path[0])
					assert.Equal(t, dst, res.Path[len(res.Path)-1])

					cost, err := route.Cost(g, res.Path)
					require.NoError(t, err)
					assert.Equal(t, res.Distance, cost)
					distances = append(distances, res.Distance)
				}
				for _, d := range distances {
					assert.Equal(t, distances[0], d)
				}
			}
		}
	}
}

// TestShortestPath_Idempotent repeats the same query on the same graph.
func TestShortestPath_Idempotent(t *testing.T) {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(99), builder.WithUniformWeight(1, 9)},
		builder.Grid(5, 5),
	)
	require.NoError(t, err)
	g.Freeze()

	first, err := dijkstra.ShortestPath(g, builder.GridID(0, 0), builder.GridID(4, 4))
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := dijkstra.ShortestPath(g, builder.GridID(0, 0), builder.GridID(4, 4))
		require.NoError(t, err)
		assert.Equal(t, first.Distance, again.Distance)
		assert.Equal(t, first.Path, again.Path)
	}
}

// TestShortestPath_PlanarAllPathsTie uses the planar grid, where every
// monotone route from the top-left to the bottom-right corner costs n·(n-1).
func TestShortestPath_PlanarAllPathsTie(t *testing.T) {
	const n = 6
	g, err := builder.BuildGraph(nil, builder.Planar(n))
	require.NoError(t, err)

	forEachStrategy(t, func(t *testing.T, s dijkstra.Strategy) {
		res, err := dijkstra.ShortestPath(g, "1_1", builder.GridID(n, n), dijkstra.WithStrategy(s))
		require.NoError(t, err)
		assert.Equal(t, int64(n*(n-1)), res.Distance)
		assert.Len(t, res.Path, 2*n-1)
		cost, err := route.Cost(g, res.Path)
		require.NoError(t, err)
		assert.Equal(t, res.Distance, cost)
	})
}
