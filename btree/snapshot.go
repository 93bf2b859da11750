package btree

import "github.com/Sapana-Micro-Software/merry-go-round-splay-trees/snapshot"

// Snapshot returns a point-in-time structural copy: node records carry
// keys/values/leaf flag, and parent->child edges are emitted in DFS
// preorder, left-first.
func (t *BTree[K, V]) Snapshot() snapshot.Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	b := snapshot.NewBuilder()
	var walk func(n *node[K, V]) int
	walk = func(n *node[K, V]) int {
		keys := make([]any, len(n.keys))
		values := make([]any, len(n.values))
		for i, k := range n.keys {
			keys[i] = k
		}
		for i, v := range n.values {
			values[i] = v
		}
		idx := b.AddNode(snapshot.NodeRecord{Keys: keys, Values: values, Leaf: n.leaf})
		if !n.leaf {
			children := make([]int, len(n.children))
			for i, c := range n.children {
				children[i] = walk(c)
			}
			b.SetChildIndices(idx, children)
		}
		return idx
	}
	walk(t.root)
	return b.Build()
}
