package cbst

// splay rotates n to the root of its tree using the standard three-case
// splay procedure: zig/zag for a parent that is already the root,
// zig-zig/zag-zag for two same-side rotations, zig-zag/zag-zig for two
// opposite-side rotations.
func (t *Tree[K, V]) splay(n *node[K, V]) {
	for n.parent != nil {
		p := n.parent
		g := p.parent
		switch {
		case g == nil:
			if p.left == n {
				t.rotateRight(p)
			} else {
				t.rotateLeft(p)
			}
		case g.left == p && p.left == n:
			t.rotateRight(g)
			t.rotateRight(p)
		case g.right == p && p.right == n:
			t.rotateLeft(g)
			t.rotateLeft(p)
		case g.left == p && p.right == n:
			t.rotateLeft(p)
			t.rotateRight(g)
		default:
			t.rotateRight(p)
			t.rotateLeft(g)
		}
	}
	t.root = n
}

// rotateLeft performs a left rotation about x, promoting x.right.
func (t *Tree[K, V]) rotateLeft(x *node[K, V]) {
	y := x.right
	if y == nil {
		return
	}
	x.right = y.left
	if y.left != nil {
		y.left.parent = x
	}
	y.parent = x.parent
	t.replaceChild(x, y)
	y.left = x
	x.parent = y
	t.recomputeSize(x)
	t.recomputeSize(y)
}

// rotateRight performs a right rotation about x, promoting x.left.
func (t *Tree[K, V]) rotateRight(x *node[K, V]) {
	y := x.left
	if y == nil {
		return
	}
	x.left = y.right
	if y.right != nil {
		y.right.parent = x
	}
	y.parent = x.parent
	t.replaceChild(x, y)
	y.right = x
	x.parent = y
	t.recomputeSize(x)
	t.recomputeSize(y)
}

// replaceChild rewires x's former parent (or the tree root) to point at
// repl instead of x. Unlike replaceInParent in buffer.go, this does not
// walk up recomputing sizes, since rotateLeft/rotateRight fix up the two
// sizes that actually change.
func (t *Tree[K, V]) replaceChild(x, repl *node[K, V]) {
	p := x.parent
	if p == nil {
		t.root = repl
		return
	}
	if p.left == x {
		p.left = repl
	} else {
		p.right = repl
	}
}
