package bfs_test

import (
	"testing"

	"github.com/amseln/gravl/bfs"
	"github.com/amseln/gravl/builder"
)

// BenchmarkBFS measures a full traversal of K_300 from vertex 1.
func BenchmarkBFS(b *testing.B) {
	g, err := builder.Complete(300, nil)
	if err != nil {
		b.Fatalf("Complete: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 1)
	}
}

// BenchmarkComponents measures component counting on a 1000-vertex cycle.
func BenchmarkComponents(b *testing.B) {
	g, err := builder.Cycle(1000, nil)
	if err != nil {
		b.Fatalf("Cycle: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Components(g)
	}
}
