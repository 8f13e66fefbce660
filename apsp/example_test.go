package apsp_test

import (
	"fmt"
	"strings"

	"github.com/amseln/gravl/apsp"
	"github.com/amseln/gravl/core"
)

// ExampleFloydWarshall prints the full distance matrix of a weighted
// triangle.
func ExampleFloydWarshall() {
	g := core.NewGraph(core.WithWeighted())
	for id := core.VertexID(1); id <= 3; id++ {
		_ = g.AddVertex(id)
	}
	_, _ = g.AddEdge(1, 2, 1)
	_, _ = g.AddEdge(2, 3, 2)
	_, _ = g.AddEdge(1, 3, 7)

	res, err := apsp.FloydWarshall(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for i, u := range res.IDs {
		cells := make([]string, len(res.IDs))
		for j, v := range res.IDs {
			cells[j] = fmt.Sprintf("d(%d,%d)=%v", u, v, res.Dist(i, j))
		}
		fmt.Println(strings.Join(cells, " "))
	}

	// Output:
	// d(1,1)=0 d(1,2)=1 d(1,3)=3
	// d(2,1)=1 d(2,2)=0 d(2,3)=2
	// d(3,1)=3 d(3,2)=2 d(3,3)=0
}
