package bfs_test

import (
	"fmt"

	"github.com/amseln/gravl/bfs"
	"github.com/amseln/gravl/builder"
)

// ExampleShortestPathHopCount measures the bridge fixture end to end.
func ExampleShortestPathHopCount() {
	g := builder.TwoTriangles()

	hops, _ := bfs.ShortestPathHopCount(g, 1, 6)
	fmt.Println("hops 1→6:", hops)

	res, _ := bfs.BFS(g, 1)
	fmt.Println("reached:", len(res.Order))
	// Output:
	// hops 1→6: 3
	// reached: 6
}
