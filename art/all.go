//go:build go1.23

package art

import (
	"iter"

	"github.com/bastiscode/byte-trie/art/tree"
)

// All returns a lazy sequence of every stored (key, value) pair. The
// sequence borrows the tree read-only for its lifetime; it must not be
// ranged over concurrently with a mutation.
func (t *Tree[V]) All() iter.Seq2[[]byte, *V] {
	return func(yield func([]byte, *V) bool) {
		tree.RecursiveIter(t.root, func(key []byte, value *V) bool {
			return !yield(key, value)
		})
	}
}

// Continuations returns a lazy sequence of every (key, value) pair whose key
// begins with prefix. Enumeration order is unspecified beyond completeness.
func (t *Tree[V]) Continuations(prefix []byte) iter.Seq2[[]byte, *V] {
	return func(yield func([]byte, *V) bool) {
		tree.IterPrefix(t.root, prefix, func(key []byte, value *V) bool {
			return !yield(key, value)
		})
	}
}
