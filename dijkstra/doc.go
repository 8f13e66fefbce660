// Package dijkstra implements Dijkstra's single-source shortest-path
// algorithm on weighted graphs.
//
// Dijkstra computes the minimum-cost path from a source vertex to all other
// reachable vertices, processing vertices in order of increasing tentative
// distance with a binary min-heap and the lazy-decrease-key strategy
// (duplicate heap entries, stale ones skipped on pop). Unreachable vertices
// keep the core.InfDist sentinel.
//
// Precondition: all edge weights are non-negative. The algorithm does NOT
// detect or reject negative weights; with them present, the result is
// simply unspecified. Detecting negative edges is Bellman-Ford territory
// and out of scope here; this is a documented limitation, not an error
// path.
//
// Complexity:
//
//   - Time:  O((V + E) log V) — each vertex extracted at most once, each
//     relaxation pushes at most one heap entry.
//   - Space: O(V + E) — distance map plus worst-case lazy heap entries.
package dijkstra
