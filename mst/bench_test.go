package mst_test

import (
	"testing"

	"github.com/amseln/gravl/builder"
	"github.com/amseln/gravl/core"
	"github.com/amseln/gravl/mst"
)

func benchGraph(b *testing.B) *core.Graph {
	b.Helper()
	weight := func(u, v core.VertexID) int64 { return (u*31+v*17)%100 + 1 }
	g, err := builder.Complete(200, weight)
	if err != nil {
		b.Fatalf("Complete: %v", err)
	}

	return g
}

// BenchmarkKruskal measures a full forest computation on K_200.
func BenchmarkKruskal(b *testing.B) {
	g := benchGraph(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = mst.Kruskal(g)
	}
}

// BenchmarkPrim measures the same forest grown from vertex 1.
func BenchmarkPrim(b *testing.B) {
	g := benchGraph(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = mst.Prim(g, mst.WithRoot(1))
	}
}
