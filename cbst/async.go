package cbst

import "github.com/Sapana-Micro-Software/merry-go-round-splay-trees/pool"

// InsertAsync enqueues an Insert under the default sort mode.
func (t *Tree[K, V]) InsertAsync(k K, v V, done func(inserted bool)) {
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

// SearchAsync enqueues a Search under the default sort mode.
func (t *Tree[K, V]) SearchAsync(k K, done func(v *V)) {
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

// RemoveAsync enqueues a Remove under the default sort mode.
func (t *Tree[K, V]) RemoveAsync(k K, done func(removed bool)) {
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

// OrderedEnumerateAsync enqueues an OrderedEnumerate.
func (t *Tree[K, V]) OrderedEnumerateAsync(order Order, mode SortMode, done func([]Pair[K, V])) {
	var result []Pair[K, V]
	t.pool.Enqueue(pool.Task{
		Run: func() { result = t.OrderedEnumerate(order, mode) },
		Completion: func() {
			if done != nil {
				done(result)
			}
		},
	})
}
