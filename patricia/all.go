//go:build go1.23

package patricia

import "iter"

// All returns a lazy sequence of every stored (key, value) pair, in
// sorted-edge order. The sequence borrows the tree read-only for its
// lifetime; it must not be ranged over concurrently with a mutation.
func (t *Tree[V]) All() iter.Seq2[[]byte, *V] {
	return func(yield func([]byte, *V) bool) {
		if t.root == nil {
			return
		}

		Visit(t.root, nil, func(key []byte, value *V) bool {
			return !yield(key, value)
		})
	}
}

// Continuations returns a lazy sequence of every (key, value) pair whose key
// begins with prefix, in sorted-edge order.
func (t *Tree[V]) Continuations(prefix []byte) iter.Seq2[[]byte, *V] {
	return func(yield func([]byte, *V) bool) {
		if t.root == nil {
			return
		}

		VisitPrefix(t.root, prefix, func(key []byte, value *V) bool {
			return !yield(key, value)
		})
	}
}
