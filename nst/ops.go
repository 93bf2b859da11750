package nst

// Insert admits (k, v). If k is already present, its value is
// overwritten, the node is splayed to root, and Insert returns false.
// Otherwise a new leaf is attached as a sorted child of the
// descent-terminal node, the parent is split if it now overflows, and
// the new node is splayed to root.
func (t *Tree[K, V]) Insert(k K, v V) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.root == nil {
		t.root = newLeaf[K, V](k, v, t.cfg.InitialBranching)
		t.size = 1
		return true
	}

	target, found := t.descend(t.root, k)
	if found {
		target.value = v
		target.access++
		t.splay(target)
		return false
	}

	leaf := newLeaf[K, V](k, v, t.cfg.InitialBranching)
	t.insertSorted(target, leaf)
	t.bumpAncestorSizes(target)
	t.size++
	if len(target.children) > target.maxChildren {
		t.split(target)
	}
	t.splay(leaf)
	return true
}

// Search looks up k, splaying the hit node to root and bumping its
// access counter. A miss leaves the tree unchanged.
func (t *Tree[K, V]) Search(k K) *V {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.root == nil {
		return nil
	}
	target, found := t.descend(t.root, k)
	if !found {
		return nil
	}
	target.access++
	t.splay(target)
	return &target.value
}

// Remove deletes k. Locates the node, splays it to root, and then
// either unlinks it (if a leaf) or copies up the (key, value) of the
// leftmost descendant of its first child and unlinks that leaf.
func (t *Tree[K, V]) Remove(k K) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.root == nil {
		return false
	}
	target, found := t.descend(t.root, k)
	if !found {
		return false
	}
	t.splay(target)
	t.removeNode(target)
	t.size--
	return true
}

// removeNode removes n, which has already been splayed to root.
func (t *Tree[K, V]) removeNode(n *node[K, V]) {
	if len(n.children) == 0 {
		if n.parent == nil {
			t.root = nil
			return
		}
		removeChild(n.parent, n)
		t.bumpAncestorSizes(n.parent)
		return
	}

	succ := n.children[0]
	for len(succ.children) > 0 {
		succ = succ.children[0]
	}
	n.key, n.value = succ.key, succ.value
	if succ.parent == n {
		removeChild(n, succ)
		t.recomputeSize(n)
	} else {
		removeChild(succ.parent, succ)
		t.bumpAncestorSizes(succ.parent)
	}
}
