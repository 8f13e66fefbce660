package mst_test

import (
	"fmt"

	"github.com/amseln/gravl/core"
	"github.com/amseln/gravl/mst"
)

// ExampleKruskal builds a weighted square with one expensive diagonal and
// prints the spanning tree Kruskal selects.
func ExampleKruskal() {
	g := core.NewGraph(core.WithWeighted())
	for id := core.VertexID(1); id <= 4; id++ {
		_ = g.AddVertex(id)
	}
	_, _ = g.AddEdge(1, 2, 1)
	_, _ = g.AddEdge(2, 3, 2)
	_, _ = g.AddEdge(3, 4, 3)
	_, _ = g.AddEdge(1, 4, 4)
	_, _ = g.AddEdge(1, 3, 9)

	res, err := mst.Kruskal(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, e := range res.Edges {
		fmt.Printf("%d-%d (%d)\n", e.From, e.To, e.Weight)
	}
	fmt.Println("total:", res.TotalWeight)

	// Output:
	// 1-2 (1)
	// 2-3 (2)
	// 3-4 (3)
	// total: 6
}
