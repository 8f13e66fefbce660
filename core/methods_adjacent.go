// Neighborhood APIs: Neighbors and NeighborIDs.
//
// Neighborhood policy:
//   - Directed edges: only outgoing edges (e.From == id) are incident.
//   - Undirected edges: incident from either endpoint, reported once.
//
// Determinism:
//   - Neighbors() returns edges in insertion order.
//   - NeighborIDs() returns unique IDs in ascending numeric order.
package core

import "sort"

// Neighbors returns all edges incident to the given vertex under the policy
// above, in insertion order. The returned pointers refer to live catalog
// edges; treat them as read-only.
//
// Errors: ErrVertexNotFound if the vertex does not exist.
//
// Complexity: O(d log d) where d is the vertex degree.
func (g *Graph) Neighbors(id VertexID) ([]*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge
	for _, bucket := range g.adjacency[id] {
		for eid := range bucket {
			e := g.edges[eid]
			// Directed policy: only outgoing edges.
			if e.Directed && e.From != id {
				continue
			}
			out = append(out, e)
		}
	}
	sortEdges(out)

	return out, nil
}

// NeighborIDs returns the unique set of vertex IDs adjacent to id, in
// ascending numeric order.
//
// Errors: ErrVertexNotFound if the vertex does not exist.
//
// Complexity: O(d log d) where d is the vertex degree.
func (g *Graph) NeighborIDs(id VertexID) ([]VertexID, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	seen := make(map[VertexID]struct{}, len(edges))
	out := make([]VertexID, 0, len(edges))
	for _, e := range edges {
		nid := e.Other(id)
		if _, dup := seen[nid]; dup {
			continue
		}
		seen[nid] = struct{}{}
		out = append(out, nid)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out, nil
}
