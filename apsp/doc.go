// Package apsp computes all-pairs shortest paths with the Floyd-Warshall
// algorithm.
//
// FloydWarshall densifies the graph into a flat row-major distance matrix
// (diagonal 0, +Inf for "no path"), then runs the classic triple loop with
// a fixed k → i → j order for deterministic accumulation, relaxing every
// pair through every intermediate vertex in place. Vertices map to matrix
// rows in ascending ID order; Result resolves both directions of the
// mapping.
//
// Negative edge weights are allowed: unlike Dijkstra, the relaxation
// order does not depend on non-negativity. Negative CYCLES are not: they
// make shortest paths undefined, and the run detects them afterwards by a
// negative diagonal entry and returns ErrNegativeCycle.
//
// Dense by nature: O(V³) time and O(V²) memory regardless of edge count,
// which is the right trade only for small or dense graphs. For a single
// source on sparse non-negative inputs, dijkstra is the better tool.
package apsp
