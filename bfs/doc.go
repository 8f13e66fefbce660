// Package bfs provides breadth-first search over a core.Graph: visit order,
// per-vertex layers (unweighted shortest-path distances), parent links,
// hop-count queries, and connected-component counting.
//
// BFS explores vertices in increasing hop distance from a source using a
// FIFO frontier. Each run resets the graph's transient exploration state on
// entry and records layers both in the returned Result and on the vertices
// themselves (Vertex.Explored, Vertex.Layer).
//
// Edge weights are irrelevant to BFS: weighted graphs are accepted and their
// weights ignored.
//
// Entry points:
//
//   - BFS(g, src, opts...)            — full traversal from src.
//   - ShortestPathHopCount(g, s, d)   — minimum edge count s→d, or the
//     Unreachable sentinel (a result value, not an error).
//   - Components(g)                   — connected components via repeated
//     BFS over unexplored vertices; the empty graph has 0 components.
//
// Complexity: O(V + E) per traversal.
package bfs
