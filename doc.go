// Package gravl is an in-memory playground for building, mutating and
// analyzing graphs with the classical algorithm toolkit.
//
// 🚀 What is gravl?
//
//	A small, pure-Go library built around one mutable multigraph core:
//		• Core primitives: vertices & edges with strict structural invariants
//		• Traversals: BFS (layers, hop counts, components), DFS
//		• Shortest paths: Dijkstra (single source), Floyd–Warshall (all pairs)
//		• Minimum spanning trees: Prim, Kruskal (leader-based union-find)
//		• Randomized minimum cut: Karger's contraction with trial amplification
//		• Input: plain-text edge-list parsing, synthetic graph builders
//
// ✨ Why choose gravl?
//
//   - Strict invariants – duplicate vertices, dangling endpoints and
//     self-loops are rejected at the offending call, never later
//   - Deterministic – sorted enumeration everywhere; randomized algorithms
//     take an injectable, seedable random source
//   - Pure Go – no cgo, no hidden deps
//
// The library is organized as one package per concern:
//
//	core/     — fundamental Graph, Vertex, Edge types and mutation primitives
//	bfs/      — breadth-first traversal, hop-count distances, components
//	dfs/      — depth-first traversal and forest walks
//	dijkstra/ — single-source shortest paths over non-negative weights
//	mst/      — Prim & Kruskal spanning trees (forests on disconnected input)
//	mincut/   — Karger randomized contraction and the amplification loop
//	apsp/     — Floyd–Warshall all-pairs closure with negative-cycle detection
//	graphio/  — text edge-list parser producing a core.Graph
//	builder/  — deterministic synthetic graphs for tests and benchmarks
//
// Quick ASCII example:
//
//	    1───2      5───6
//	     \  │      │  /
//	      \ │      │ /
//	        3──────4
//
//	g := builder.TwoTriangles()
//	res, _ := bfs.BFS(g, 1)        // res.Layer[6] == 3
//	cut, _ := mincut.MinCut(g)     // cut.Cut == 1 (the 3–4 bridge)
//
// Start with core.NewGraph, add vertices and edges, then hand the graph to
// any algorithm package.
package gravl
