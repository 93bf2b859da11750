package nst

// split relieves an overflowing node by promoting its median child into
// a sibling position. The median child itself becomes
// the new sibling (rather than a fresh copy), inheriting node's
// higher-keyed excess children in addition to whatever children it
// already had; node keeps the lower-keyed remainder. If node had no
// parent, the promoted sibling becomes the new root and node becomes
// one of its children, since every NST node must carry its own payload
// and a parentless "routing-only" node would have none.
func (t *Tree[K, V]) split(n *node[K, V]) {
	m := len(n.children) / 2
	sibling := n.children[m]

	excess := n.children[m+1:]
	n.children = n.children[:m]

	for _, c := range excess {
		t.insertSorted(sibling, c)
	}
	t.recomputeSize(sibling)

	parent := n.parent
	if parent == nil {
		t.root = sibling
		sibling.parent = nil
		t.insertSorted(sibling, n)
		t.recomputeSize(n)
		t.recomputeSize(sibling)
		t.maybeSplit(sibling)
		return
	}

	t.insertSorted(parent, sibling)
	t.recomputeSize(n)
	t.bumpAncestorSizes(parent)
	t.maybeSplit(parent)
}

// maybeSplit splits n again if it still exceeds its own max_children,
// recursing upward until every ancestor fits.
func (t *Tree[K, V]) maybeSplit(n *node[K, V]) {
	if len(n.children) > n.maxChildren {
		t.split(n)
	}
}
