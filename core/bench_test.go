package core_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/pathlab/core"
)

// BenchmarkAddEdge measures insertion into a growing chain.
func BenchmarkAddEdge(b *testing.B) {
	b.ReportAllocs()
	g := core.NewGraph(core.WithCapacity(b.N))
	for i := 0; i < b.N; i++ {
		_ = g.AddEdge("v"+strconv.Itoa(i), "v"+strconv.Itoa(i+1), int64(i%7))
	}
}

// BenchmarkVertexCount measures the on-demand union over a 10k-edge chain.
func BenchmarkVertexCount(b *testing.B) {
	const n = 10000
	g := core.NewGraph(core.WithCapacity(n))
	for i := 0; i < n; i++ {
		_ = g.AddEdge("v"+strconv.Itoa(i), "v"+strconv.Itoa(i+1), 1)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.VertexCount()
	}
}
