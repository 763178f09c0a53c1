package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathlab/builder"
)

func TestBuildGraph_NilConstructor(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestChain(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Chain(4))
	require.NoError(t, err)
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, []string{"v1"}, g.NeighborIDs("v0"))
	w, ok := g.Weight("v2", "v3")
	assert.True(t, ok)
	assert.Equal(t, int64(1), w)

	_, err = builder.BuildGraph(nil, builder.Chain(1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestGrid(t *testing.T) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithConstantWeight(3)}, builder.Grid(2, 3))
	require.NoError(t, err)
	assert.Equal(t, 6, g.VertexCount())
	// 2 rows × 2 horizontal pairs + 3 vertical pairs = 7 pairs, both directions
	assert.Equal(t, 14, g.EdgeCount())
	w, ok := g.Weight(builder.GridID(1, 2), builder.GridID(0, 2))
	assert.True(t, ok)
	assert.Equal(t, int64(3), w)

	_, err = builder.BuildGraph(nil, builder.Grid(0, 3))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestPlanar(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Planar(3))
	require.NoError(t, err)
	assert.Equal(t, 9, g.VertexCount())
	assert.Equal(t, 12, g.EdgeCount())

	right, _ := g.Weight("2_2", "2_3")
	down, _ := g.Weight("2_2", "3_2")
	assert.Equal(t, int64(2), right)
	assert.Equal(t, int64(2), down)
	// corner has no outgoing edges
	assert.Empty(t, g.Neighbors("3_3"))
}

func TestRandomSparse(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(7), builder.WithUniformWeight(0, 9)}
	g1, err := builder.BuildGraph(opts, builder.RandomSparse(12, 0.3))
	require.NoError(t, err)
	opts = []builder.BuilderOption{builder.WithSeed(7), builder.WithUniformWeight(0, 9)}
	g2, err := builder.BuildGraph(opts, builder.RandomSparse(12, 0.3))
	require.NoError(t, err)
	assert.Equal(t, g1.Edges(), g2.Edges(), "same seed must give the same graph")

	for _, e := range g1.Edges() {
		assert.NotEqual(t, e.From, e.To)
		assert.GreaterOrEqual(t, e.Weight, int64(0))
		assert.LessOrEqual(t, e.Weight, int64(9))
	}
}

func TestRandomSparse_Validation(t *testing.T) {
	_, err := builder.BuildGraph(nil, builder.RandomSparse(0, 0.5))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildGraph(nil, builder.RandomSparse(3, 1.5))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.BuildGraph(nil, builder.RandomSparse(3, 0.5))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	g, err := builder.BuildGraph(nil, builder.RandomSparse(3, 1))
	require.NoError(t, err)
	assert.Equal(t, 6, g.EdgeCount())

	g, err = builder.BuildGraph(nil, builder.RandomSparse(3, 0))
	require.NoError(t, err)
	assert.Zero(t, g.EdgeCount())
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithConstantWeight(-1) })
	assert.Panics(t, func() { builder.WithUniformWeight(5, 1) })
}

func TestWithIDScheme(t *testing.T) {
	ids := []string{"A", "B", "C"}
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithIDScheme(func(i int) string { return ids[i] })},
		builder.Chain(3),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, g.Sources())
}
