// Cloning graph instances.
//
// Clone carries over the edge-ID sequence so that future AddEdge calls on
// the clone continue the textual sequence and never collide with existing
// edges.
package core

import "sync/atomic"

// CloneEmpty returns a new Graph with identical configuration and vertices,
// but no edges. Transient vertex state is NOT carried over: the clone's
// vertices start with fresh exploration defaults.
//
// Complexity: O(V)
func (g *Graph) CloneEmpty() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	opts := []GraphOption{WithDirected(g.directed)}
	if g.weighted {
		opts = append(opts, WithWeighted())
	}
	clone := NewGraph(opts...)

	// Preserve the edge-ID sequence to avoid collisions on future AddEdge.
	atomic.StoreUint64(&clone.nextEdgeSeq, atomic.LoadUint64(&g.nextEdgeSeq))

	for id := range g.vertices {
		clone.vertices[id] = newVertex(id)
		clone.adjacency[id] = make(map[VertexID]map[string]struct{})
	}

	return clone
}

// Clone returns a deep copy of the Graph: configuration, vertices, edges,
// and adjacency. The copy is fully independent; the contraction algorithm
// runs each destructive trial on one of these.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()

	g.mu.RLock()
	defer g.mu.RUnlock()

	for eid, e := range g.edges {
		ne := &Edge{ID: eid, From: e.From, To: e.To, Weight: e.Weight, Directed: e.Directed}
		clone.edges[eid] = ne
		ensureAdjacency(clone, e.From, e.To)
		clone.adjacency[e.From][e.To][eid] = struct{}{}
		if !e.Directed {
			ensureAdjacency(clone, e.To, e.From)
			clone.adjacency[e.To][e.From][eid] = struct{}{}
		}
	}

	return clone
}
