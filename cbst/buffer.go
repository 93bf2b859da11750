package cbst

// admit allocates the next slot in the circular buffer for a freshly
// inserted node. If the buffer is full, the resident of the slot about
// to be recycled is evicted first, unlinked from the tree it belongs to
// regardless of where that node currently sits — FIFO slot-recycling,
// not an access-recency policy. If the buffer is not full, the cursor
// first skips past occupied slots to the next free one.
func (t *Tree[K, V]) admit(n *node[K, V]) {
	if t.live >= t.cfg.BufferSize {
		t.evictSlot(t.next)
	} else {
		for t.buf[t.next] != nil {
			t.next = (t.next + 1) % t.cfg.BufferSize
		}
	}
	n.slot = t.next
	t.buf[t.next] = n
	t.next = (t.next + 1) % t.cfg.BufferSize
	t.live++
}

// evictSlot removes whatever node currently occupies slot idx, unlinking
// it from the tree. A no-op if the slot is empty.
func (t *Tree[K, V]) evictSlot(idx int) {
	victim := t.buf[idx]
	if victim == nil {
		return
	}
	t.unlink(victim)
	t.buf[idx] = nil
	t.live--
}

// unlink removes n from the tree structure by splicing its subtree: if n
// has two children, its in-order predecessor takes its place; otherwise
// its sole child (or nil) is promoted. Does not touch the circular
// buffer bookkeeping — callers manage that separately.
func (t *Tree[K, V]) unlink(n *node[K, V]) {
	switch {
	case n.left != nil && n.right != nil:
		pred := n.left
		for pred.right != nil {
			pred = pred.right
		}
		t.unlink(pred)
		pred.left, pred.right, pred.parent = n.left, n.right, n.parent
		if pred.left != nil {
			pred.left.parent = pred
		}
		if pred.right != nil {
			pred.right.parent = pred
		}
		t.recomputeSize(pred)
		t.replaceInParent(n, pred)
	case n.left != nil:
		t.replaceInParent(n, n.left)
		n.left.parent = n.parent
	case n.right != nil:
		t.replaceInParent(n, n.right)
		n.right.parent = n.parent
	default:
		t.replaceInParent(n, nil)
	}
	n.left, n.right, n.parent = nil, nil, nil
}

// replaceInParent rewires n's parent (or the tree root pointer) to point
// at repl instead of n.
func (t *Tree[K, V]) replaceInParent(n, repl *node[K, V]) {
	p := n.parent
	if p == nil {
		t.root = repl
		return
	}
	if p.left == n {
		p.left = repl
	} else {
		p.right = repl
	}
	for a := p; a != nil; a = a.parent {
		t.recomputeSize(a)
	}
}

func (t *Tree[K, V]) recomputeSize(n *node[K, V]) {
	size := 1
	if n.left != nil {
		size += n.left.size
	}
	if n.right != nil {
		size += n.right.size
	}
	n.size = size
}
