package nst

import (
	"sort"
	"testing"

	"github.com/Sapana-Micro-Software/merry-go-round-splay-trees/checksum"
)

func lessInt(a, b int) bool { return a < b }

func TestEmptyInsertBecomesRoot(t *testing.T) {
	tr := New[int, string](lessInt, Config{InitialBranching: 2, MaxBranching: 16})
	defer tr.Close()
	if !tr.Insert(5, "v") {
		t.Fatalf("expected first insert to return true")
	}
	if tr.root == nil || tr.root.key != 5 {
		t.Fatalf("expected root key 5, got %+v", tr.root)
	}
}

func TestDuplicateInsertOverwritesAndReturnsFalse(t *testing.T) {
	tr := New[int, string](lessInt, Config{InitialBranching: 2, MaxBranching: 16})
	defer tr.Close()
	tr.Insert(5, "a")
	if tr.Insert(5, "b") {
		t.Fatalf("expected duplicate insert to return false")
	}
	if v := tr.Search(5); v == nil || *v != "b" {
		t.Fatalf("expected overwritten value, got %v", v)
	}
	if tr.Size() != 1 {
		t.Fatalf("expected size 1 after duplicate insert, got %d", tr.Size())
	}
}

func TestSearchMissingReturnsNil(t *testing.T) {
	tr := New[int, string](lessInt, Config{InitialBranching: 2, MaxBranching: 16})
	defer tr.Close()
	tr.Insert(1, "v")
	if tr.Search(99) != nil {
		t.Fatalf("expected search of missing key to return nil")
	}
}

func TestRemoveMissingReturnsFalse(t *testing.T) {
	tr := New[int, string](lessInt, Config{InitialBranching: 2, MaxBranching: 16})
	defer tr.Close()
	tr.Insert(1, "v")
	if tr.Remove(99) {
		t.Fatalf("expected remove of missing key to return false")
	}
}

func TestInsertRemoveSearchRoundTrip(t *testing.T) {
	tr := New[int, string](lessInt, Config{InitialBranching: 2, MaxBranching: 16})
	defer tr.Close()
	tr.Insert(5, "v")
	if !tr.Remove(5) {
		t.Fatalf("expected remove to succeed")
	}
	if tr.Search(5) != nil {
		t.Fatalf("expected search after remove to return nil")
	}
	if tr.Size() != 0 {
		t.Fatalf("expected size 0 after remove, got %d", tr.Size())
	}
}

func TestOrderedEnumerateAscendingDescending(t *testing.T) {
	tr := New[int, string](lessInt, Config{InitialBranching: 2, MaxBranching: 16})
	defer tr.Close()
	for _, k := range []int{5, 3, 8, 1, 4, 7, 9, 2, 6} {
		tr.Insert(k, "v")
	}
	asc := keysOf(tr.OrderedEnumerate(Ascending))
	if !sort.IntsAreSorted(asc) {
		t.Fatalf("expected ascending order, got %v", asc)
	}
	if len(asc) != 9 {
		t.Fatalf("expected 9 entries, got %d", len(asc))
	}
	desc := keysOf(tr.OrderedEnumerate(Descending))
	for i := range asc {
		if asc[i] != desc[len(desc)-1-i] {
			t.Fatalf("descending %v is not the reverse of ascending %v", desc, asc)
		}
	}
}

// invariantCheck verifies the children-sorted and fan-out invariants.
func invariantCheck(t *testing.T, tr *Tree[int, string]) {
	t.Helper()
	var walk func(n *node[int, string])
	walk = func(n *node[int, string]) {
		if n == nil {
			return
		}
		if len(n.children) > n.maxChildren {
			t.Fatalf("node %d has %d children, exceeding max_children %d", n.key, len(n.children), n.maxChildren)
		}
		if n.maxChildren > tr.cfg.MaxBranching {
			t.Fatalf("node %d max_children %d exceeds max_branching %d", n.key, n.maxChildren, tr.cfg.MaxBranching)
		}
		if n.maxChildren < tr.cfg.InitialBranching {
			t.Fatalf("node %d max_children %d below initial_branching %d", n.key, n.maxChildren, tr.cfg.InitialBranching)
		}
		for i := 1; i < len(n.children); i++ {
			if !(n.children[i-1].key < n.children[i].key) {
				t.Fatalf("children not sorted at node %d: %v", n.key, childKeys(n))
			}
		}
		for _, c := range n.children {
			walk(c)
		}
	}
	walk(tr.root)
}

func childKeys(n *node[int, string]) []int {
	out := make([]int, len(n.children))
	for i, c := range n.children {
		out[i] = c.key
	}
	return out
}

// TestAdaptiveFanOut: initial=2, max=16, insert keys 1..25 in order.
// Every node must stay within its
// max_children ceiling, and every ceiling must stay within
// [initial_branching, max_branching].
func TestAdaptiveFanOut(t *testing.T) {
	tr := New[int, string](lessInt, Config{InitialBranching: 2, MaxBranching: 16})
	defer tr.Close()
	for i := 1; i <= 25; i++ {
		tr.Insert(i, "v")
		invariantCheck(t, tr)
	}
	if tr.Size() != 25 {
		t.Fatalf("expected size 25, got %d", tr.Size())
	}
	got := keysOf(tr.OrderedEnumerate(Ascending))
	want := make([]int, 25)
	for i := range want {
		want[i] = i + 1
	}
	if !intSliceEqual(got, want) {
		t.Fatalf("ascending enumerate = %v, want %v", got, want)
	}
}

func TestInvariantsHoldUnderMixedOps(t *testing.T) {
	tr := New[int, string](lessInt, Config{InitialBranching: 2, MaxBranching: 8})
	defer tr.Close()
	for i := 0; i < 100; i++ {
		tr.Insert(i, "v")
		invariantCheck(t, tr)
	}
	for i := 0; i < 50; i += 3 {
		tr.Remove(i)
		invariantCheck(t, tr)
	}
	got := keysOf(tr.OrderedEnumerate(Ascending))
	if !sort.IntsAreSorted(got) {
		t.Fatalf("expected ascending enumeration, got %v", got)
	}
}

// TestChecksumSpecializationFindMatchingBlocks covers weak-then-strong
// matching for the rolling-checksum block index.
func TestChecksumSpecializationFindMatchingBlocks(t *testing.T) {
	bi := NewBlockIndex(Config{InitialBranching: 2, MaxBranching: 16})
	defer bi.Close()

	cs1 := checksum.New(1, 0)
	cs2 := checksum.New(2, 0)
	bi.InsertBlock(checksum.BlockMetadata{Checksum: cs1, StrongHash: 0xAA, BlockIndex: 0})
	bi.InsertBlock(checksum.BlockMetadata{Checksum: cs2, StrongHash: 0xBB, BlockIndex: 1})

	matches := bi.FindMatchingBlocks(cs1, 0xAA)
	if len(matches) != 1 || matches[0].BlockIndex != 0 {
		t.Fatalf("expected one match with block_index 0, got %v", matches)
	}

	noMatches := bi.FindMatchingBlocks(cs1, 0xFF)
	if len(noMatches) != 0 {
		t.Fatalf("expected no matches for wrong strong hash, got %v", noMatches)
	}
}

func TestClearEmptiesTreeInPlace(t *testing.T) {
	tr := New[int, string](lessInt, Config{InitialBranching: 2, MaxBranching: 16})
	defer tr.Close()
	for _, k := range []int{5, 2, 8, 1, 9} {
		tr.Insert(k, "v")
	}
	tr.Clear()
	if tr.Size() != 0 {
		t.Fatalf("expected size 0 after Clear, got %d", tr.Size())
	}
	if v := tr.Search(5); v != nil {
		t.Fatalf("expected no keys to survive Clear, found %v", v)
	}
	if !tr.Insert(5, "v2") {
		t.Fatalf("expected insert after Clear to succeed as if into a fresh tree")
	}
}

func keysOf(pairs []Pair[int, string]) []int {
	out := make([]int, len(pairs))
	for i, p := range pairs {
		out[i] = p.Key
	}
	return out
}

func intSliceEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
