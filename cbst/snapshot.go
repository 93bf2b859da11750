package cbst

import "github.com/Sapana-Micro-Software/merry-go-round-splay-trees/snapshot"

// Snapshot returns a point-in-time structural copy: node records carry
// key/value/access/size, and parent->child edges are emitted in DFS
// preorder, left-first.
func (t *Tree[K, V]) Snapshot() snapshot.Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	b := snapshot.NewBuilder()
	var walk func(n *node[K, V]) int
	walk = func(n *node[K, V]) int {
		idx := b.AddNode(snapshot.NodeRecord{
			Key:    n.key,
			Value:  n.value,
			Leaf:   n.left == nil && n.right == nil,
			Access: n.access,
			Size:   n.size,
		})
		var children []int
		if n.left != nil {
			children = append(children, walk(n.left))
		}
		if n.right != nil {
			children = append(children, walk(n.right))
		}
		if len(children) > 0 {
			b.SetChildIndices(idx, children)
		}
		return idx
	}
	if t.root != nil {
		walk(t.root)
	}
	return b.Build()
}
