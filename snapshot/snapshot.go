// Package snapshot holds the shared, index-addressed structural copy that
// every container in this module can emit. A Snapshot is self-contained and
// immutable: once built it owns no references back into the live tree, so
// it is safe to hand to a caller after the container's mutex is released.
package snapshot

import "sort"

// NodeRecord is one visited node's observable fields, flattened for
// export. Not every field is meaningful for every container: BT populates
// Keys/Values; the splay variants populate Key/Value/Access/Size; NST
// additionally populates MaxChildren. All three set Leaf.
type NodeRecord struct {
	Index int `json:"index"`

	// BT fields (Leaf is set by every container).
	Keys   []any `json:"keys,omitempty"`
	Values []any `json:"values,omitempty"`
	Leaf   bool  `json:"leaf,omitempty"`

	// Splay-variant fields (CBST, NST).
	Key    any `json:"key,omitempty"`
	Value  any `json:"value,omitempty"`
	Access uint64 `json:"access,omitempty"`
	Size   int    `json:"size,omitempty"`

	// NST-only.
	MaxChildren int `json:"max_children,omitempty"`

	ChildIndices []int `json:"child_indices"`
}

// Edge is one parent->child relation in DFS preorder over live nodes.
type Edge struct {
	ParentIndex int `json:"parent_index"`
	ChildIndex  int `json:"child_index"`
}

// Snapshot is the point-in-time structural copy a container's Snapshot()
// method returns.
type Snapshot struct {
	Nodes []NodeRecord `json:"nodes"`
	Edges []Edge       `json:"edges"`
}

// NodeCount reports the number of nodes captured.
func (s Snapshot) NodeCount() int { return len(s.Nodes) }

// EdgeCount reports the number of parent->child edges captured.
func (s Snapshot) EdgeCount() int { return len(s.Edges) }

// Builder assigns indices to nodes in first-visit order and accumulates
// the edge list as a caller walks a tree DFS/preorder. Containers use one
// Builder per Snapshot() call; it is not safe for concurrent use (callers
// already hold the container's mutex while building).
type Builder struct {
	snap Snapshot
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// AddNode appends rec to the node list, assigning it the next index, and
// returns that index, which it also stores in rec.Index. Callers record
// rec.ChildIndices afterwards with SetChildIndices once child indices are
// known (a node's children are visited, and thus indexed, after the node
// itself).
func (b *Builder) AddNode(rec NodeRecord) int {
	idx := len(b.snap.Nodes)
	rec.Index = idx
	if rec.ChildIndices == nil {
		rec.ChildIndices = []int{}
	}
	b.snap.Nodes = append(b.snap.Nodes, rec)
	return idx
}

// SetChildIndices records the child index list for the node at idx and
// appends the corresponding parent->child edges.
func (b *Builder) SetChildIndices(idx int, children []int) {
	b.snap.Nodes[idx].ChildIndices = children
	for _, c := range children {
		b.snap.Edges = append(b.snap.Edges, Edge{ParentIndex: idx, ChildIndex: c})
	}
}

// Build finalizes and returns the accumulated Snapshot. Edges are ordered
// by child index, which is DFS preorder since node indices are assigned
// in first-visit order.
func (b *Builder) Build() Snapshot {
	sort.SliceStable(b.snap.Edges, func(i, j int) bool {
		return b.snap.Edges[i].ChildIndex < b.snap.Edges[j].ChildIndex
	})
	return b.snap
}
