// Package mst computes minimum spanning trees of undirected weighted
// graphs with Prim's and Kruskal's algorithms.
//
// What mst offers:
//
//   - Prim: grows a tree outward from a root with a binary min-heap of
//     frontier edges, restarting at the smallest unreached vertex so a
//     disconnected graph yields a minimum spanning forest.
//   - Kruskal: sorts every edge by weight and accepts the ones joining two
//     different union-find groups. Disconnection needs no special case
//     here: the surviving groups simply are the forest's trees.
//   - UnionFind: the disjoint-set structure backing Kruskal, exported
//     because contraction-style algorithms reuse it.
//
// Both algorithms demand an undirected weighted graph (ErrInvalidGraph
// otherwise) and produce a Result with the chosen edges, their total
// weight, and the number of trees in the forest. On a connected graph the
// two agree on total weight; with distinct edge weights they agree on the
// exact edge set.
//
// Parallel edges are harmless: only the cheapest between any pair can ever
// be picked, the rest close cycles and are skipped.
//
// Complexity: O(E log V) for Prim, O(E log E) for Kruskal.
package mst
