package nst

import "github.com/Sapana-Micro-Software/merry-go-round-splay-trees/snapshot"

// Snapshot returns a point-in-time structural copy: node records carry
// key/value/access/size/max_children, and parent->child edges are
// emitted in DFS preorder, left-first.
func (t *Tree[K, V]) Snapshot() snapshot.Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	b := snapshot.NewBuilder()
	var walk func(n *node[K, V]) int
	walk = func(n *node[K, V]) int {
		idx := b.AddNode(snapshot.NodeRecord{
			Key:         n.key,
			Value:       n.value,
			Leaf:        len(n.children) == 0,
			Access:      n.access,
			Size:        n.size,
			MaxChildren: n.maxChildren,
		})
		if len(n.children) > 0 {
			children := make([]int, len(n.children))
			for i, c := range n.children {
				children[i] = walk(c)
			}
			b.SetChildIndices(idx, children)
		}
		return idx
	}
	if t.root != nil {
		walk(t.root)
	}
	return b.Build()
}
