package dijkstra_test

import (
	"fmt"

	"github.com/amseln/gravl/core"
	"github.com/amseln/gravl/dijkstra"
)

// ExampleDijkstra runs the algorithm on a small weighted square with one
// diagonal shortcut and prints the resulting distances.
func ExampleDijkstra() {
	g := core.NewGraph(core.WithWeighted())
	for id := core.VertexID(1); id <= 4; id++ {
		_ = g.AddVertex(id)
	}
	_, _ = g.AddEdge(1, 2, 1)
	_, _ = g.AddEdge(2, 3, 1)
	_, _ = g.AddEdge(3, 4, 1)
	_, _ = g.AddEdge(1, 4, 10)

	res, err := dijkstra.Dijkstra(g, 1, dijkstra.WithParents())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, id := range g.Vertices() {
		fmt.Printf("dist(%d) = %d\n", id, res.Dist[id])
	}
	fmt.Println("path to 4:", res.PathTo(4))

	// Output:
	// dist(1) = 0
	// dist(2) = 1
	// dist(3) = 2
	// dist(4) = 3
	// path to 4: [1 2 3 4]
}
