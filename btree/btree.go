// Package btree implements BT, the classical B-tree container:
// height-balanced, parameterized by a minimum degree t, offering
// worst-case O(log n) insert/search/remove.
package btree

import (
	"sync"

	"github.com/Sapana-Micro-Software/merry-go-round-splay-trees/pool"
)

// accessPromoteThreshold is the splay-hook reset point. It increments an
// access counter and resets it past this threshold; it never rotates
// BT's nodes — see bumpAccess.
const accessPromoteThreshold = 10

// node is a BT node. keys/values are parallel and sorted ascending;
// children is empty iff the node is a leaf, otherwise len(children) ==
// len(keys)+1. parent is a non-owning back-reference.
type node[K any, V any] struct {
	keys     []K
	values   []V
	children []*node[K, V]
	parent   *node[K, V]
	leaf     bool
	access   uint64
}

// Less is the total order over K that a BTree is parameterized by.
type Less[K any] func(a, b K) bool

// Config holds BT's construction-time parameters.
type Config struct {
	// MinDegree is t; values below 2 are clamped to 2.
	MinDegree int
	// Workers sizes the async worker pool backing the *Async methods.
	// Defaults to 4 when <= 0.
	Workers int
}

func (c Config) clamped() Config {
	if c.MinDegree < 2 {
		c.MinDegree = 2
	}
	if c.Workers <= 0 {
		c.Workers = 4
	}
	return c
}

// BTree is the BT container: a height-balanced ordered map keyed by K,
// valued by V, with min degree t = cfg.MinDegree (max_keys = 2t-1).
type BTree[K any, V any] struct {
	mu   sync.Mutex
	less Less[K]
	cfg  Config
	root *node[K, V]
	size int
	pool *pool.Pool
}

// New constructs an empty BTree comparing keys with less.
func New[K any, V any](less Less[K], cfg Config) *BTree[K, V] {
	cfg = cfg.clamped()
	return &BTree[K, V]{
		less: less,
		cfg:  cfg,
		root: &node[K, V]{leaf: true},
		pool: pool.New(cfg.Workers, "btree"),
	}
}

// SetMinDegree changes min degree for future operations only; it is a
// soft setting and does not rebalance existing nodes.
func (t *BTree[K, V]) SetMinDegree(d int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if d < 2 {
		d = 2
	}
	t.cfg.MinDegree = d
}

func (t *BTree[K, V]) equal(a, b K) bool {
	return !t.less(a, b) && !t.less(b, a)
}

func (t *BTree[K, V]) maxKeys() int { return 2*t.cfg.MinDegree - 1 }

// Size returns the number of live (k,v) pairs.
func (t *BTree[K, V]) Size() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.size
}

// Height returns the longest root-to-leaf node count. An empty tree has
// height 1 (the empty root leaf counts as a node).
func (t *BTree[K, V]) Height() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	h := 0
	for n := t.root; n != nil; {
		h++
		if n.leaf {
			break
		}
		n = n.children[0]
	}
	return h
}

// bumpAccess is the splay-hook stub: it increments an access counter
// and resets it past accessPromoteThreshold, but performs no rotation.
// It exists purely as an observability
// extension point and must stay that way — introducing rotations here
// would violate BT's all-leaves-same-depth invariant.
func bumpAccess[K any, V any](n *node[K, V]) {
	n.access++
	if n.access > accessPromoteThreshold {
		n.access = 0
	}
}

// Clear discards every key, resetting the tree to a fresh empty root in
// O(1).
func (t *BTree[K, V]) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.root = &node[K, V]{leaf: true}
	t.size = 0
}

// Close stops the async worker pool backing this container.
func (t *BTree[K, V]) Close() {
	t.pool.Stop()
}
