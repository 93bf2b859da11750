// Package nst implements NST, the n-ary adaptive splay tree: a
// generalized splay tree whose nodes hold a variable
// number of sorted children instead of a fixed left/right pair, with
// per-node fan-out that adapts at runtime to subtree size, plus a
// rolling-checksum block-index specialization used by delta-sync style
// lookups.
package nst

import (
	"sync"

	"github.com/Sapana-Micro-Software/merry-go-round-splay-trees/pool"
)

// Less reports whether a orders strictly before b.
type Less[K any] func(a, b K) bool

// Config holds NST's construction-time parameters.
type Config struct {
	// InitialBranching is the minimum fan-out a node is clamped to; must
	// be >= 2, clamped otherwise.
	InitialBranching int
	// MaxBranching is the maximum fan-out a node may adapt up to; must be
	// >= InitialBranching, clamped otherwise.
	MaxBranching int
	// Workers sizes the async worker pool. Defaults to 4 when <= 0.
	Workers int
}

func (c Config) clamped() Config {
	if c.InitialBranching < 2 {
		c.InitialBranching = 2
	}
	if c.MaxBranching < c.InitialBranching {
		c.MaxBranching = c.InitialBranching
	}
	if c.Workers <= 0 {
		c.Workers = 4
	}
	return c
}

// Tree is the NST container.
type Tree[K any, V any] struct {
	mu   sync.Mutex
	less Less[K]
	cfg  Config
	root *node[K, V]
	size int

	pool *pool.Pool
}

// New constructs an empty Tree.
func New[K any, V any](less Less[K], cfg Config) *Tree[K, V] {
	cfg = cfg.clamped()
	return &Tree[K, V]{
		less: less,
		cfg:  cfg,
		pool: pool.New(cfg.Workers, "nst"),
	}
}

func (t *Tree[K, V]) equal(a, b K) bool {
	return !t.less(a, b) && !t.less(b, a)
}

// Size returns the number of live entries.
func (t *Tree[K, V]) Size() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.size
}

// Height returns the longest root-to-leaf node count; 0 for an empty tree.
func (t *Tree[K, V]) Height() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	var h func(n *node[K, V]) int
	h = func(n *node[K, V]) int {
		if n == nil {
			return 0
		}
		best := 0
		for _, c := range n.children {
			if d := h(c); d > best {
				best = d
			}
		}
		return best + 1
	}
	return h(t.root)
}

// Clear discards every key, resetting the tree to an empty root in O(1).
func (t *Tree[K, V]) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.root = nil
	t.size = 0
}

// Close stops the async worker pool backing this container.
func (t *Tree[K, V]) Close() {
	t.pool.Stop()
}

func newLeaf[K any, V any](k K, v V, initial int) *node[K, V] {
	return &node[K, V]{key: k, value: v, size: 1, maxChildren: initial}
}

func (t *Tree[K, V]) recomputeSize(n *node[K, V]) {
	size := 1
	for _, c := range n.children {
		size += c.size
	}
	n.size = size
}

func (t *Tree[K, V]) bumpAncestorSizes(from *node[K, V]) {
	for a := from; a != nil; a = a.parent {
		t.recomputeSize(a)
	}
}

// childIndex returns n's index within its parent's children slice, or
// -1 if n has no parent.
func childIndex[K any, V any](n *node[K, V]) int {
	if n.parent == nil {
		return -1
	}
	for i, c := range n.parent.children {
		if c == n {
			return i
		}
	}
	return -1
}

// insertSorted inserts child into the sorted children slice of n,
// maintaining the children-sorted invariant.
func (t *Tree[K, V]) insertSorted(n *node[K, V], child *node[K, V]) {
	i := 0
	for i < len(n.children) && t.less(n.children[i].key, child.key) {
		i++
	}
	n.children = append(n.children, nil)
	copy(n.children[i+1:], n.children[i:])
	n.children[i] = child
	child.parent = n
}

// removeChild splices child out of n.children.
func removeChild[K any, V any](n *node[K, V], child *node[K, V]) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return
		}
	}
}
