package cbst

import (
	"fmt"
	"testing"
)

func numLessInt(a, b int) bool { return a < b }
func lexLessInt(a, b int) bool { return fmt.Sprint(a) < fmt.Sprint(b) }

func newIntTree(bufferSize int) *Tree[int, string] {
	return New[int, string](numLessInt, lexLessInt, nil, Config{
		BufferSize:      bufferSize,
		DefaultSortMode: Num,
	})
}

func TestEmptyInsertBecomesRoot(t *testing.T) {
	tr := newIntTree(8)
	defer tr.Close()
	if !tr.Insert(5, "v") {
		t.Fatalf("expected first insert to return true")
	}
	if tr.root == nil || tr.root.key != 5 {
		t.Fatalf("expected root key 5, got %+v", tr.root)
	}
}

func TestDuplicateInsertOverwritesAndReturnsFalse(t *testing.T) {
	tr := newIntTree(8)
	defer tr.Close()
	tr.Insert(5, "a")
	if tr.Insert(5, "b") {
		t.Fatalf("expected duplicate insert to return false")
	}
	if v := tr.Search(5); v == nil || *v != "b" {
		t.Fatalf("expected overwritten value, got %v", v)
	}
}

// TestSplayPromotesAccessedKey: buffer 8, numeric mode, insert
// 5,2,8,1,9; search(1) must leave 1 at the root with subtree size 5.
func TestSplayPromotesAccessedKey(t *testing.T) {
	tr := newIntTree(8)
	defer tr.Close()
	for _, k := range []int{5, 2, 8, 1, 9} {
		tr.Insert(k, "v")
	}
	if v := tr.Search(1); v == nil {
		t.Fatalf("expected search(1) to find a value")
	}
	snap := tr.Snapshot()
	if snap.Nodes[0].Key != 1 {
		t.Fatalf("expected root key 1 after search, got %v", snap.Nodes[0].Key)
	}
	if snap.Nodes[0].Size != 5 {
		t.Fatalf("expected root subtree size 5, got %d", snap.Nodes[0].Size)
	}
}

// TestEvictionIsSlotRecyclingNotLRU: buffer 3, numeric mode, insert
// 1,2,3, search(1), insert 4; the slot-0 tenant (key 1) is
// evicted on the 4th insert regardless of the fact that 1 was the most
// recently splayed-to-root key before the eviction.
func TestEvictionIsSlotRecyclingNotLRU(t *testing.T) {
	tr := newIntTree(3)
	defer tr.Close()
	tr.Insert(1, "v1")
	tr.Insert(2, "v2")
	tr.Insert(3, "v3")
	tr.Search(1)
	tr.Insert(4, "v4")

	if tr.Size() != 3 {
		t.Fatalf("expected size 3 after overflow insert, got %d", tr.Size())
	}
	if tr.Search(1) != nil {
		t.Fatalf("expected key 1 to have been evicted")
	}
	if v := tr.Search(4); v == nil || *v != "v4" {
		t.Fatalf("expected key 4 to be resident, got %v", v)
	}
}

func TestRemoveMissingReturnsFalse(t *testing.T) {
	tr := newIntTree(8)
	defer tr.Close()
	tr.Insert(1, "v")
	if tr.Remove(99) {
		t.Fatalf("expected remove of missing key to return false")
	}
}

func TestInsertRemoveSearchRoundTrip(t *testing.T) {
	tr := newIntTree(8)
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

func TestRemoveTwoChildrenSpliceSuccessor(t *testing.T) {
	tr := newIntTree(16)
	defer tr.Close()
	for _, k := range []int{10, 5, 15, 3, 7, 12, 20} {
		tr.Insert(k, "v")
	}
	if !tr.Remove(10) {
		t.Fatalf("expected remove(10) to succeed")
	}
	if tr.Search(10) != nil {
		t.Fatalf("expected 10 gone after remove")
	}
	got := keysOf(tr.OrderedEnumerate(Ascending, Num))
	want := []int{3, 5, 7, 12, 15, 20}
	if !intSliceEqual(got, want) {
		t.Fatalf("ascending enumerate after remove = %v, want %v", got, want)
	}
}

func TestOrderedEnumerateDescending(t *testing.T) {
	tr := newIntTree(16)
	defer tr.Close()
	for _, k := range []int{3, 1, 4, 1, 5, 9, 2, 6} {
		tr.Insert(k, "v")
	}
	got := keysOf(tr.OrderedEnumerate(Descending, Num))
	want := []int{9, 6, 5, 4, 3, 2, 1}
	if !intSliceEqual(got, want) {
		t.Fatalf("descending enumerate = %v, want %v", got, want)
	}
}

// invariantCheck verifies the BST ordering property and the capacity bound.
func invariantCheck(t *testing.T, tr *Tree[int, string]) {
	t.Helper()
	if tr.live > tr.cfg.BufferSize {
		t.Fatalf("live count %d exceeds buffer size %d", tr.live, tr.cfg.BufferSize)
	}
	var walk func(n *node[int, string])
	walk = func(n *node[int, string]) {
		if n == nil {
			return
		}
		if n.left != nil && !(n.left.key < n.key) {
			t.Fatalf("BST violation: left child %d not < %d", n.left.key, n.key)
		}
		if n.right != nil && !(n.key < n.right.key) {
			t.Fatalf("BST violation: right child %d not > %d", n.right.key, n.key)
		}
		walk(n.left)
		walk(n.right)
	}
	walk(tr.root)
}

func TestInvariantsHoldUnderMixedOpsWithEviction(t *testing.T) {
	tr := newIntTree(32)
	defer tr.Close()
	for i := 0; i < 200; i++ {
		tr.Insert(i, "v")
		invariantCheck(t, tr)
	}
	for i := 0; i < 50; i++ {
		tr.Remove(i)
		invariantCheck(t, tr)
	}
}

func TestClearEmptiesTreeInPlace(t *testing.T) {
	tr := newIntTree(8)
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
