package cbst

// Insert admits (k, v) under the container's default sort mode. See
// InsertMode for the full contract.
func (t *Tree[K, V]) Insert(k K, v V) bool {
	return t.InsertMode(t.cfg.DefaultSortMode, k, v)
}

// InsertMode inserts under an explicit comparator slot. If k is already
// present, its value is overwritten, the node is splayed to root, and
// InsertMode returns false — CBST overwrites duplicates rather than
// rejecting them, unlike BT.
func (t *Tree[K, V]) InsertMode(mode SortMode, k K, v V) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.root == nil {
		n := &node[K, V]{key: k, value: v, size: 1}
		t.admit(n)
		t.root = n
		return true
	}

	cur := t.root
	for {
		switch {
		case t.equal(mode, k, cur.key):
			cur.value = v
			cur.access++
			t.splay(cur)
			return false
		case t.less(mode, k, cur.key):
			if cur.left == nil {
				n := &node[K, V]{key: k, value: v, parent: cur, size: 1}
				cur.left = n
				t.admit(n)
				t.bumpAncestorSizes(cur)
				t.splay(n)
				return true
			}
			cur = cur.left
		default:
			if cur.right == nil {
				n := &node[K, V]{key: k, value: v, parent: cur, size: 1}
				cur.right = n
				t.admit(n)
				t.bumpAncestorSizes(cur)
				t.splay(n)
				return true
			}
			cur = cur.right
		}
	}
}

func (t *Tree[K, V]) bumpAncestorSizes(from *node[K, V]) {
	for a := from; a != nil; a = a.parent {
		t.recomputeSize(a)
	}
}

// Search looks up k under the container's default sort mode.
func (t *Tree[K, V]) Search(k K) *V {
	return t.SearchMode(t.cfg.DefaultSortMode, k)
}

// SearchMode descends under an explicit comparator, splaying the hit
// node to root and bumping its access counter. A miss leaves the tree
// unchanged.
func (t *Tree[K, V]) SearchMode(mode SortMode, k K) *V {
	t.mu.Lock()
	defer t.mu.Unlock()

	cur := t.root
	for cur != nil {
		switch {
		case t.equal(mode, k, cur.key):
			cur.access++
			t.splay(cur)
			return &cur.value
		case t.less(mode, k, cur.key):
			cur = cur.left
		default:
			cur = cur.right
		}
	}
	return nil
}

// Remove deletes k under the container's default sort mode.
func (t *Tree[K, V]) Remove(k K) bool {
	return t.RemoveMode(t.cfg.DefaultSortMode, k)
}

// RemoveMode locates k, splays it to root, then splices it out with a
// direct BST deletion (not a splay-merge).
func (t *Tree[K, V]) RemoveMode(mode SortMode, k K) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	cur := t.root
	for cur != nil {
		switch {
		case t.equal(mode, k, cur.key):
			t.splay(cur)
			t.deleteSpliced(cur)
			return true
		case t.less(mode, k, cur.key):
			cur = cur.left
		default:
			cur = cur.right
		}
	}
	return false
}

// deleteSpliced removes n (already splayed to root) from the tree,
// freeing exactly one buffer slot: n's own slot in the no/one-child
// cases, or the in-order successor's slot when n has two children (n
// itself survives in place, holding the successor's key/value).
func (t *Tree[K, V]) deleteSpliced(n *node[K, V]) {
	switch {
	case n.left == nil && n.right == nil:
		t.root = nil
		t.releaseSlot(n)
	case n.left == nil:
		n.right.parent = nil
		t.root = n.right
		t.releaseSlot(n)
	case n.right == nil:
		n.left.parent = nil
		t.root = n.left
		t.releaseSlot(n)
	default:
		succ := n.right
		for succ.left != nil {
			succ = succ.left
		}
		n.key, n.value = succ.key, succ.value
		t.spliceOutOfSubtree(succ)
		t.releaseSlot(succ)
		t.recomputeSize(n)
	}
}

// spliceOutOfSubtree removes a node with at most one child from within
// the tree (used only for the two-children remove case's successor).
func (t *Tree[K, V]) spliceOutOfSubtree(n *node[K, V]) {
	var repl *node[K, V]
	if n.right != nil {
		repl = n.right
	}
	p := n.parent
	if p.left == n {
		p.left = repl
	} else {
		p.right = repl
	}
	if repl != nil {
		repl.parent = p
	}
	t.bumpAncestorSizes(p)
}

// releaseSlot clears the buffer slot n occupied and decrements the live
// count. Does not otherwise touch the tree structure.
func (t *Tree[K, V]) releaseSlot(n *node[K, V]) {
	if t.buf[n.slot] == n {
		t.buf[n.slot] = nil
		t.live--
	}
}
