// Vertex lifecycle and queries: AddVertex, RemoveVertex, HasVertex, Vertex,
// Vertices, VerticesMap, VertexCount, and ClearExplorationState.
//
// Determinism: Vertices() returns IDs in ascending numeric order.
package core

import "sort"

// AddVertex inserts a new vertex with the given ID.
//
// Unlike edge insertion, duplicate IDs are a caller error: inserting an ID
// that is already present returns ErrDuplicateVertex and leaves the graph
// untouched.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id VertexID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.vertices[id]; exists {
		return ErrDuplicateVertex
	}

	g.vertices[id] = newVertex(id)
	g.adjacency[id] = make(map[VertexID]map[string]struct{})

	return nil
}

// newVertex allocates a vertex with its transient fields at their defaults.
func newVertex(id VertexID) *Vertex {
	return &Vertex{ID: id, Explored: false, Layer: UnsetLayer, Dist: InfDist}
}

// HasVertex reports whether the graph contains a vertex with the given ID.
// Complexity: O(1)
func (g *Graph) HasVertex(id VertexID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// Vertex returns the live *Vertex record for id, or ErrVertexNotFound.
//
// The returned pointer refers to the graph's own record; callers may read
// the transient fields (Explored, Layer, Dist) after an algorithm run but
// should leave mutation to the algorithm packages.
//
// Complexity: O(1)
func (g *Graph) Vertex(id VertexID) (*Vertex, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return v, nil
}

// RemoveVertex deletes the vertex with the given ID and cascades removal of
// every incident edge, directed or undirected. A missing vertex is an error:
// ErrVertexNotFound, with no mutation.
//
// Complexity: O(E) for the incident-edge scan in the worst case.
func (g *Graph) RemoveVertex(id VertexID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.vertices[id]; !exists {
		return ErrVertexNotFound
	}

	// Cascade: drop all edges touching id before the vertex itself.
	for eid, e := range g.edges {
		if e.From == id || e.To == id {
			removeAdjacency(g, e)
			delete(g.edges, eid)
		}
	}

	delete(g.vertices, id)
	delete(g.adjacency, id)

	return nil
}

// Vertices returns all vertex IDs in ascending numeric order.
// Complexity: O(V log V)
func (g *Graph) Vertices() []VertexID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]VertexID, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// VerticesMap returns a shallow copy of the vertex catalog (ID → *Vertex).
// Callers can retain the map without holding graph locks; the pointers refer
// to live records.
// Complexity: O(V)
func (g *Graph) VerticesMap() map[VertexID]*Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[VertexID]*Vertex, len(g.vertices))
	for id, v := range g.vertices {
		out[id] = v
	}

	return out
}

// VertexCount returns the current number of vertices in the graph.
// Complexity: O(1)
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// ClearExplorationState resets the transient algorithm fields of every
// vertex (Explored, Layer, Dist) to their defaults.
//
// The traversal and shortest-path engines call this themselves on entry, so
// independent runs on the same graph can never observe each other's stale
// state. The method is idempotent: calling it twice in a row is equivalent
// to calling it once.
//
// Complexity: O(V)
func (g *Graph) ClearExplorationState() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, v := range g.vertices {
		v.Explored = false
		v.Layer = UnsetLayer
		v.Dist = InfDist
	}
}
