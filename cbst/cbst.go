// Package cbst implements CBST, the circular-buffer-backed splay tree:
// a binary splay tree whose nodes live in a fixed-capacity circular
// buffer. When the buffer fills, admitting a new
// key evicts the resident of the slot being recycled, regardless of its
// position in the tree — a strict bound on resident size traded for the
// "search returns everything ever inserted" guarantee a plain splay tree
// would offer.
package cbst

import (
	"sync"

	"github.com/Sapana-Micro-Software/merry-go-round-splay-trees/pool"
)

// SortMode selects which of the three comparator slots a call routes
// through.
type SortMode int

const (
	Lex SortMode = iota
	Num
	Sem
)

// Comparator is a single comparison slot: reports whether a < b.
type Comparator[K any] func(a, b K) bool

// node is a CBST node living in one slot of the circular buffer.
type node[K any, V any] struct {
	key    K
	value  V
	left   *node[K, V]
	right  *node[K, V]
	parent *node[K, V]
	access uint64
	size   int
	slot   int
}

// Config holds CBST's construction-time parameters.
type Config struct {
	// BufferSize is the fixed capacity of the node pool. Must be positive;
	// values <= 0 are clamped to 1.
	BufferSize int
	// DefaultSortMode selects the comparator used when a call omits one.
	DefaultSortMode SortMode
	// Workers sizes the async worker pool. Defaults to 4 when <= 0.
	Workers int
}

func (c Config) clamped() Config {
	if c.BufferSize <= 0 {
		c.BufferSize = 1
	}
	if c.Workers <= 0 {
		c.Workers = 4
	}
	return c
}

// Tree is the CBST container.
type Tree[K any, V any] struct {
	mu   sync.Mutex
	cfg  Config
	root *node[K, V]

	comparators [3]Comparator[K] // indexed by SortMode

	buf  []*node[K, V]
	next int
	live int

	pool *pool.Pool
}

// New constructs an empty Tree. numLess/lexLess/semLess seed the three
// comparator slots (numeric, lexicographic, semantic); semLess defaults
// to numLess when nil is passed.
func New[K any, V any](numLess, lexLess, semLess Comparator[K], cfg Config) *Tree[K, V] {
	cfg = cfg.clamped()
	if semLess == nil {
		semLess = numLess
	}
	t := &Tree[K, V]{
		cfg:  cfg,
		buf:  make([]*node[K, V], cfg.BufferSize),
		pool: pool.New(cfg.Workers, "cbst"),
	}
	t.comparators[Num] = numLess
	t.comparators[Lex] = lexLess
	t.comparators[Sem] = semLess
	return t
}

// SetComparator replaces one of the three comparator slots at runtime.
func (t *Tree[K, V]) SetComparator(mode SortMode, less Comparator[K]) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.comparators[mode] = less
}

func (t *Tree[K, V]) less(mode SortMode, a, b K) bool {
	return t.comparators[mode](a, b)
}

func (t *Tree[K, V]) equal(mode SortMode, a, b K) bool {
	return !t.less(mode, a, b) && !t.less(mode, b, a)
}

// Size returns the number of live (k,v) pairs currently resident in the
// buffer.
func (t *Tree[K, V]) Size() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.live
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
		l, r := h(n.left), h(n.right)
		if l > r {
			return l + 1
		}
		return r + 1
	}
	return h(t.root)
}

// SetBufferSize grows or shrinks the pool's capacity. Growing is lossless.
// Shrinking below the live count evicts the oldest `live - new` nodes
// (by slot-recycling order, not access recency) rather than rejecting the
// call outright.
func (t *Tree[K, V]) SetBufferSize(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if n <= 0 {
		n = 1
	}
	if n >= t.cfg.BufferSize {
		grown := make([]*node[K, V], n)
		copy(grown, t.buf)
		t.buf = grown
		t.cfg.BufferSize = n
		return
	}

	for t.live > n {
		t.evictSlot(t.next)
		t.next = (t.next + 1) % t.cfg.BufferSize
	}
	// Compact the survivors, oldest first, into the front of the smaller
	// buffer so slot-recycling order is preserved.
	shrunk := make([]*node[K, V], n)
	j := 0
	for k := range t.buf {
		if slotNode := t.buf[(t.next+k)%len(t.buf)]; slotNode != nil {
			slotNode.slot = j
			shrunk[j] = slotNode
			j++
		}
	}
	t.buf = shrunk
	t.cfg.BufferSize = n
	t.next = j % n
}

// Clear discards every key in O(1): the root and every buffer slot are
// dropped directly rather than evicted one at a time.
func (t *Tree[K, V]) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.root = nil
	t.buf = make([]*node[K, V], t.cfg.BufferSize)
	t.next = 0
	t.live = 0
}

// Close stops the async worker pool backing this container.
func (t *Tree[K, V]) Close() {
	t.pool.Stop()
}
