// Package core_test verifies thread-safety of core.Graph under concurrent use.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathlab/core"
)

// TestConcurrentAddEdge ensures concurrent AddEdge calls from one source are all recorded.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)

	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			require.NoError(t, g.AddEdge("X", fmt.Sprintf("V%d", id), int64(id)))
		}(i)
	}
	wg.Wait()

	require.Len(t, g.NeighborIDs("X"), num)
	require.Equal(t, num+1, g.VertexCount())
}

// TestConcurrentReadsOnFrozenGraph runs many readers against a frozen graph.
func TestConcurrentReadsOnFrozenGraph(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 50; i++ {
		require.NoError(t, g.AddEdge(fmt.Sprintf("V%d", i), fmt.Sprintf("V%d", i+1), 1))
	}
	g.Freeze()

	var wg sync.WaitGroup
	const readers = 32
	wg.Add(readers)
	for r := 0; r < readers; r++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				_ = g.Neighbors(fmt.Sprintf("V%d", i))
				_ = g.NeighborIDs(fmt.Sprintf("V%d", i))
			}
			require.Equal(t, 51, g.VertexCount())
			require.Len(t, g.Edges(), 50)
		}()
	}
	wg.Wait()
}
