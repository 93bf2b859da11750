package btree

// Remove deletes k, returning true if it was present. Case analysis:
// leaf deletion in place; internal deletion
// replaces k with a predecessor/successor borrowed from whichever child
// has >= t keys (left preferred), or merges the two children around k
// when neither does. Descent into a child with exactly t-1 keys first
// rebalances that child (borrow, else merge) before continuing down.
func (t *BTree[K, V]) Remove(k K) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	removed := t.removeFrom(t.root, k)
	if removed {
		t.size--
	}

	if len(t.root.keys) == 0 && !t.root.leaf {
		t.root = t.root.children[0]
		t.root.parent = nil
	}
	return removed
}

func (t *BTree[K, V]) removeFrom(n *node[K, V], k K) bool {
	i := 0
	for i < len(n.keys) && t.less(n.keys[i], k) {
		i++
	}

	if i < len(n.keys) && t.equal(k, n.keys[i]) {
		if n.leaf {
			n.keys = append(n.keys[:i], n.keys[i+1:]...)
			n.values = append(n.values[:i], n.values[i+1:]...)
			return true
		}
		return t.removeInternal(n, i)
	}

	if n.leaf {
		return false
	}

	// k, if present, lives strictly within children[i]'s subtree — the
	// rebalance below only ever moves keys that are not k, so the target
	// subtree's identity (not necessarily its index) survives.
	i = t.ensureChildHasMinKeys(n, i)
	return t.removeFrom(n.children[i], k)
}

// removeInternal deletes the key at n.keys[i] of internal node n by
// borrowing a predecessor or successor.
func (t *BTree[K, V]) removeInternal(n *node[K, V], i int) bool {
	left, right := n.children[i], n.children[i+1]

	switch {
	case len(left.keys) >= t.cfg.MinDegree:
		predKey, predVal := t.rightmost(left)
		n.keys[i], n.values[i] = predKey, predVal
		return t.removeFrom(left, predKey)

	case len(right.keys) >= t.cfg.MinDegree:
		succKey, succVal := t.leftmost(right)
		n.keys[i], n.values[i] = succKey, succVal
		return t.removeFrom(right, succKey)

	default:
		drawnDown := n.keys[i]
		t.mergeChildren(n, i)
		return t.removeFrom(n.children[i], drawnDown)
	}
}

func (t *BTree[K, V]) rightmost(n *node[K, V]) (K, V) {
	for !n.leaf {
		n = n.children[len(n.children)-1]
	}
	return n.keys[len(n.keys)-1], n.values[len(n.values)-1]
}

func (t *BTree[K, V]) leftmost(n *node[K, V]) (K, V) {
	for !n.leaf {
		n = n.children[0]
	}
	return n.keys[0], n.values[0]
}

// ensureChildHasMinKeys rebalances n.children[i] if it holds exactly t-1
// keys — borrowing from a sibling with >= t keys (left preferred),
// otherwise merging with a sibling — and returns the index at which the
// (possibly now-merged) subtree originally rooted at children[i] can be
// found. Merging always absorbs the right sibling into children[i] unless
// i is the last child, in which case children[i] is absorbed into its
// left sibling at i-1; either way the caller gets back the correct index
// for the subtree it meant to descend into.
func (t *BTree[K, V]) ensureChildHasMinKeys(n *node[K, V], i int) int {
	child := n.children[i]
	if len(child.keys) >= t.cfg.MinDegree {
		return i
	}

	if i > 0 && len(n.children[i-1].keys) >= t.cfg.MinDegree {
		t.borrowFromLeft(n, i)
		return i
	}
	if i < len(n.children)-1 && len(n.children[i+1].keys) >= t.cfg.MinDegree {
		t.borrowFromRight(n, i)
		return i
	}
	if i < len(n.children)-1 {
		t.mergeChildren(n, i)
		return i
	}
	t.mergeChildren(n, i-1)
	return i - 1
}

func (t *BTree[K, V]) borrowFromLeft(n *node[K, V], i int) {
	child, left := n.children[i], n.children[i-1]

	child.keys = append([]K{n.keys[i-1]}, child.keys...)
	child.values = append([]V{n.values[i-1]}, child.values...)

	n.keys[i-1] = left.keys[len(left.keys)-1]
	n.values[i-1] = left.values[len(left.values)-1]
	left.keys = left.keys[:len(left.keys)-1]
	left.values = left.values[:len(left.values)-1]

	if !child.leaf {
		borrowed := left.children[len(left.children)-1]
		left.children = left.children[:len(left.children)-1]
		borrowed.parent = child
		child.children = append([]*node[K, V]{borrowed}, child.children...)
	}
}

func (t *BTree[K, V]) borrowFromRight(n *node[K, V], i int) {
	child, right := n.children[i], n.children[i+1]

	child.keys = append(child.keys, n.keys[i])
	child.values = append(child.values, n.values[i])

	n.keys[i] = right.keys[0]
	n.values[i] = right.values[0]
	right.keys = right.keys[1:]
	right.values = right.values[1:]

	if !child.leaf {
		borrowed := right.children[0]
		right.children = right.children[1:]
		borrowed.parent = child
		child.children = append(child.children, borrowed)
	}
}

// mergeChildren merges n.children[i] and n.children[i+1] around the key
// n.keys[i], drawing that key down into the merged child. The merged
// child replaces both in n.children, at index i, and n.keys[i] is
// removed.
func (t *BTree[K, V]) mergeChildren(n *node[K, V], i int) {
	left, right := n.children[i], n.children[i+1]

	left.keys = append(left.keys, n.keys[i])
	left.values = append(left.values, n.values[i])
	left.keys = append(left.keys, right.keys...)
	left.values = append(left.values, right.values...)

	if !left.leaf {
		for _, c := range right.children {
			c.parent = left
		}
		left.children = append(left.children, right.children...)
	}

	n.keys = append(n.keys[:i], n.keys[i+1:]...)
	n.values = append(n.values[:i], n.values[i+1:]...)
	n.children = append(n.children[:i+1], n.children[i+2:]...)
}
