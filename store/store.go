// Package store is the top-level façade over named container instances:
// a named, UUID-addressed registry fanning out to any of the three
// ordered-container kinds instead of a single disk-backed collection
// type.
package store

import (
	"fmt"
	"sort"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/google/uuid"

	"github.com/Sapana-Micro-Software/merry-go-round-splay-trees/btree"
	"github.com/Sapana-Micro-Software/merry-go-round-splay-trees/cbst"
	"github.com/Sapana-Micro-Software/merry-go-round-splay-trees/nst"
	"github.com/Sapana-Micro-Software/merry-go-round-splay-trees/snapshot"
)

// Kind selects which of the three container algorithms a Store instance
// backs onto. The façade fixes K=string, V=string: a CLI/HTTP surface
// deals in strings, and each container is itself fully generic for
// programmatic embedding.
type Kind string

const (
	KindBT   Kind = "bt"
	KindCBST Kind = "cbst"
	KindNST  Kind = "nst"
)

// Container is one named, uniquely-IDed instance of a BT, CBST, or NST.
// Exactly one of the three backing fields is non-nil, matching Kind.
type Container struct {
	ID   uuid.UUID
	Name string
	Kind Kind

	bt   *btree.BTree[string, string]
	cbst *cbst.Tree[string, string]
	nst  *nst.Tree[string, string]
}

// Insert, Search, Remove, and Snapshot dispatch to whichever concrete
// container this instance wraps.
func (c *Container) Insert(k, v string) bool {
	switch c.Kind {
	case KindBT:
		return c.bt.Insert(k, v)
	case KindCBST:
		return c.cbst.Insert(k, v)
	default:
		return c.nst.Insert(k, v)
	}
}

func (c *Container) Search(k string) *string {
	switch c.Kind {
	case KindBT:
		return c.bt.Search(k)
	case KindCBST:
		return c.cbst.Search(k)
	default:
		return c.nst.Search(k)
	}
}

func (c *Container) Remove(k string) bool {
	switch c.Kind {
	case KindBT:
		return c.bt.Remove(k)
	case KindCBST:
		return c.cbst.Remove(k)
	default:
		return c.nst.Remove(k)
	}
}

func (c *Container) Size() int {
	switch c.Kind {
	case KindBT:
		return c.bt.Size()
	case KindCBST:
		return c.cbst.Size()
	default:
		return c.nst.Size()
	}
}

func (c *Container) Snapshot() snapshot.Snapshot {
	switch c.Kind {
	case KindBT:
		return c.bt.Snapshot()
	case KindCBST:
		return c.cbst.Snapshot()
	default:
		return c.nst.Snapshot()
	}
}

// Clear empties the container in place, discarding its root/buffer
// state in O(1) without touching its name, ID, or kind.
func (c *Container) Clear() {
	switch c.Kind {
	case KindBT:
		c.bt.Clear()
	case KindCBST:
		c.cbst.Clear()
	default:
		c.nst.Clear()
	}
}

// KV is one (key, value) pair, as returned by Container.Enumerate.
type KV struct {
	Key   string
	Value string
}

// Enumerate returns every live pair in ascending key order, regardless
// of which container kind backs this instance.
func (c *Container) Enumerate() []KV {
	switch c.Kind {
	case KindBT:
		pairs := c.bt.Enumerate()
		out := make([]KV, len(pairs))
		for i, p := range pairs {
			out[i] = KV{Key: p.Key, Value: p.Value}
		}
		return out
	case KindCBST:
		pairs := c.cbst.OrderedEnumerate(cbst.Ascending, cbst.Num)
		out := make([]KV, len(pairs))
		for i, p := range pairs {
			out[i] = KV{Key: p.Key, Value: p.Value}
		}
		return out
	default:
		pairs := c.nst.OrderedEnumerate(nst.Ascending)
		out := make([]KV, len(pairs))
		for i, p := range pairs {
			out[i] = KV{Key: p.Key, Value: p.Value}
		}
		return out
	}
}

func (c *Container) Close() {
	switch c.Kind {
	case KindBT:
		c.bt.Close()
	case KindCBST:
		c.cbst.Close()
	default:
		c.nst.Close()
	}
}

// BTConfig, CBSTConfig, NSTConfig re-export the per-kind construction
// parameters so callers configuring a Store don't need to import the
// three container packages directly.
type BTConfig = btree.Config
type CBSTConfig = cbst.Config
type NSTConfig = nst.Config

// Store owns a named registry of containers, keyed by both name and ID.
type Store struct {
	mu       sync.RWMutex
	byName   map[string]*Container
	byID     map[uuid.UUID]*Container
	handles  *lru.Cache[uuid.UUID, *Container]
}

// New constructs an empty Store. handleCacheSize bounds the recency
// cache used by ContainerByID for repeated CLI/HTTP lookups; values
// <= 0 default to 64.
func New(handleCacheSize int) *Store {
	if handleCacheSize <= 0 {
		handleCacheSize = 64
	}
	handles, _ := lru.New[uuid.UUID, *Container](handleCacheSize)
	return &Store{
		byName:  make(map[string]*Container),
		byID:    make(map[uuid.UUID]*Container),
		handles: handles,
	}
}

// CreateContainer allocates a new named container of the given kind. cfg
// must be the matching BTConfig/CBSTConfig/NSTConfig value for kind; nil,
// or a value of any other type, selects the container's own clamped
// defaults. Returns an error if the name is already taken.
func (s *Store) CreateContainer(name string, kind Kind, cfg any) (*Container, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byName[name]; exists {
		return nil, fmt.Errorf("store: container %q already exists", name)
	}

	c := &Container{ID: uuid.New(), Name: name, Kind: kind}
	switch kind {
	case KindBT:
		btCfg, _ := cfg.(BTConfig)
		c.bt = btree.New[string, string](func(a, b string) bool { return a < b }, btCfg)
	case KindCBST:
		cbstCfg, _ := cfg.(CBSTConfig)
		c.cbst = cbst.New[string, string](
			func(a, b string) bool { return a < b },
			func(a, b string) bool { return a < b },
			nil,
			cbstCfg,
		)
	case KindNST:
		nstCfg, _ := cfg.(NSTConfig)
		c.nst = nst.New[string, string](func(a, b string) bool { return a < b }, nstCfg)
	default:
		return nil, fmt.Errorf("store: unknown container kind %q", kind)
	}

	s.byName[name] = c
	s.byID[c.ID] = c
	s.handles.Add(c.ID, c)
	return c, nil
}

// Container looks up a container by name.
func (s *Store) Container(name string) (*Container, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.byName[name]
	return c, ok
}

// ContainerByID looks up a container by its UUID handle, consulting the
// recency cache before falling back to the full ID index.
func (s *Store) ContainerByID(id uuid.UUID) (*Container, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if c, ok := s.handles.Get(id); ok {
		return c, true
	}
	c, ok := s.byID[id]
	if ok {
		s.handles.Add(id, c)
	}
	return c, ok
}

// Names returns every container name currently registered, sorted for
// deterministic listing.
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.byName))
	for name := range s.byName {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// DropContainer stops and removes a named container, freeing its worker
// pool. Returns false if the name is unknown.
func (s *Store) DropContainer(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.byName[name]
	if !ok {
		return false
	}
	c.Close()
	delete(s.byName, name)
	delete(s.byID, c.ID)
	s.handles.Remove(c.ID)
	return true
}

// Clear stops and removes every container, resetting the Store to
// empty.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.byName {
		c.Close()
	}
	s.byName = make(map[string]*Container)
	s.byID = make(map[uuid.UUID]*Container)
	s.handles.Purge()
}
