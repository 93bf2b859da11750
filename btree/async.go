package btree

import "github.com/Sapana-Micro-Software/merry-go-round-splay-trees/pool"

// InsertAsync enqueues an Insert and, if done is non-nil, invokes it with
// the result from whichever worker dequeues the task.
func (t *BTree[K, V]) InsertAsync(k K, v V, done func(inserted bool)) {
	var result bool
	t.pool.Enqueue(pool.Task{
		Run: func() { result = t.Insert(k, v) },
		Completion: func() {
			if done != nil {
				done(result)
			}
		},
	})
}

// RemoveAsync enqueues a Remove.
func (t *BTree[K, V]) RemoveAsync(k K, done func(removed bool)) {
	var result bool
	t.pool.Enqueue(pool.Task{
		Run: func() { result = t.Remove(k) },
		Completion: func() {
			if done != nil {
				done(result)
			}
		},
	})
}

// SearchAsync enqueues a Search.
func (t *BTree[K, V]) SearchAsync(k K, done func(v *V)) {
	var result *V
	t.pool.Enqueue(pool.Task{
		Run: func() { result = t.Search(k) },
		Completion: func() {
			if done != nil {
				done(result)
			}
		},
	})
}

// EnumerateAsync enqueues an Enumerate.
func (t *BTree[K, V]) EnumerateAsync(done func(pairs []Pair[K, V])) {
	var result []Pair[K, V]
	t.pool.Enqueue(pool.Task{
		Run: func() { result = t.Enumerate() },
		Completion: func() {
			if done != nil {
				done(result)
			}
		},
	})
}
