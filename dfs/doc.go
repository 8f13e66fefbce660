// Package dfs implements depth-first search over a core.Graph: recursive
// LIFO exploration with pre-/post-order hooks, cancellation, full-forest
// traversal, and connected-component counting.
//
// DFS shares BFS's reachability semantics but produces no hop-count
// distances; its natural products are visitation order and the structure of
// the exploration tree. Like every traversal in this module, each run resets
// the graph's transient exploration state on entry and marks
// Vertex.Explored as it descends.
//
// Entry points:
//
//   - DFS(g, src, opts...) — traverse from src, or the whole forest with
//     WithFullTraversal (src is ignored in that mode).
//   - Components(g)        — connected components via repeated DFS; agrees
//     with bfs.Components on every graph, and the empty graph has 0.
//
// Complexity: O(V + E) per traversal, O(V) recursion depth worst case.
package dfs
