package mst

import "github.com/amseln/gravl/core"

// UnionFind is a disjoint-set structure over vertex IDs with explicit
// leader tracking: every element always knows its group's leader directly,
// and Union relabels the smaller group wholesale. Any element is relabeled
// at most O(log N) times, so N unions cost O(N log N) total.
type UnionFind struct {
	leader  map[core.VertexID]core.VertexID
	members map[core.VertexID][]core.VertexID
	groups  int
}

// NewUnionFind builds a structure where every given ID is its own
// singleton group.
func NewUnionFind(ids []core.VertexID) *UnionFind {
	uf := &UnionFind{
		leader:  make(map[core.VertexID]core.VertexID, len(ids)),
		members: make(map[core.VertexID][]core.VertexID, len(ids)),
		groups:  len(ids),
	}
	for _, id := range ids {
		uf.leader[id] = id
		uf.members[id] = []core.VertexID{id}
	}

	return uf
}

// Find returns the leader of x's group. Constant time: leaders are kept
// current on every Union.
func (uf *UnionFind) Find(x core.VertexID) core.VertexID { return uf.leader[x] }

// Connected reports whether x and y share a group.
func (uf *UnionFind) Connected(x, y core.VertexID) bool {
	return uf.leader[x] == uf.leader[y]
}

// Union merges the groups of x and y, relabeling every member of the
// smaller group to the larger group's leader. Returns false if the two
// were already in the same group.
func (uf *UnionFind) Union(x, y core.VertexID) bool {
	lx, ly := uf.leader[x], uf.leader[y]
	if lx == ly {
		return false
	}
	if len(uf.members[lx]) < len(uf.members[ly]) {
		lx, ly = ly, lx
	}

	// lx leads the larger group; absorb ly's members into it.
	for _, id := range uf.members[ly] {
		uf.leader[id] = lx
	}
	uf.members[lx] = append(uf.members[lx], uf.members[ly]...)
	delete(uf.members, ly)
	uf.groups--

	return true
}

// Groups returns the current number of disjoint groups.
func (uf *UnionFind) Groups() int { return uf.groups }
