package nst

import "math"

// splay promotes x to the root of its tree via repeated rotation, using
// the same three-case structure as the binary splay in package cbst:
// zig/zag when x's parent has no parent of its own, zig-zig/zag-zag for
// a same-side grandparent, zig-zag/zag-zig for an opposite-side one.
// "Side" for an n-ary node is whether x sits at its parent's leftmost
// index (zig) or any other index (zag), generalizing the binary
// rotation vocabulary to n-ary fan-out.
func (t *Tree[K, V]) splay(x *node[K, V]) {
	for x.parent != nil {
		p := x.parent
		g := p.parent
		if g == nil {
			t.promote(p, x)
			continue
		}
		xLeft := childIndex(x) == 0
		pLeft := childIndex(p) == 0
		switch {
		case pLeft == xLeft:
			t.promote(g, p)
			// The first rotation may have moved x from p to g.
			t.promote(x.parent, x)
		default:
			t.promote(p, x)
			t.promote(g, x)
		}
	}
	t.root = x
	t.adaptFanOut(x)
}

// promote performs a single rotation that lifts x above its parent p.
// If x is p's leftmost child (the "zig" case), x's last child transfers
// to p. If x is any other child of p (the "zag" case — a true mirror,
// fixing the reference's zag-delegates-to-zig bug), x's first child
// transfers to p. Either way p then joins x's children; both the
// transferred child and p land at their key-sorted positions.
func (t *Tree[K, V]) promote(p, x *node[K, V]) {
	gp := p.parent
	removeChild(p, x)

	var moved *node[K, V]
	// x was leftmost iff it is smaller than everything still in
	// p.children (since removing x leaves the rest in sorted order).
	wasLeftmost := isLeftmost(t, p, x)

	if wasLeftmost {
		if n := len(x.children); n > 0 {
			moved = x.children[n-1]
			x.children = x.children[:n-1]
		}
		if moved != nil {
			t.insertSorted(p, moved)
		}
		t.insertSorted(x, p)
	} else {
		if len(x.children) > 0 {
			moved = x.children[0]
			x.children = x.children[1:]
		}
		if moved != nil {
			t.insertSorted(p, moved)
		}
		t.insertSorted(x, p)
	}

	x.parent = gp
	if x.parent == nil {
		t.root = x
	} else {
		replaceChildPointer(x.parent, p, x)
	}

	t.recomputeSize(p)
	t.recomputeSize(x)
}

// isLeftmost reports whether x, now removed from p.children, used to
// sit at index 0 — i.e. x's key is smaller than every key still in
// p.children.
func isLeftmost[K any, V any](t *Tree[K, V], p, x *node[K, V]) bool {
	for _, c := range p.children {
		if t.less(c.key, x.key) {
			return false
		}
	}
	return true
}

// replaceChildPointer rewires gp's child pointer from old to repl.
func replaceChildPointer[K any, V any](gp, old, repl *node[K, V]) {
	for i, c := range gp.children {
		if c == old {
			gp.children[i] = repl
			return
		}
	}
}

// adaptFanOut recomputes n's max_children ceiling after a splay,
// clamped to [InitialBranching, MaxBranching]. If n now exceeds the new
// ceiling, it is split.
func (t *Tree[K, V]) adaptFanOut(n *node[K, V]) {
	target := int(math.Round(math.Sqrt(float64(n.size))))
	if target < t.cfg.InitialBranching {
		target = t.cfg.InitialBranching
	}
	if target > t.cfg.MaxBranching {
		target = t.cfg.MaxBranching
	}
	if n.maxChildren != target && len(n.children) <= target {
		n.maxChildren = target
	}
	t.maybeSplit(n)
}
