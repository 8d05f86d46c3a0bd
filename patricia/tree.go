package patricia

import (
	"github.com/bastiscode/byte-trie/internal/debug"
	"github.com/bastiscode/byte-trie/pkg/arena"
	"github.com/bastiscode/byte-trie/pkg/opt"
	"github.com/bastiscode/byte-trie/pkg/trie"
)

// Tree is a PATRICIA trie mapping byte-string keys to values of type V. The
// zero Tree is empty and ready to use once its root is initialized by the
// first Insert.
type Tree[V any] struct {
	root *Node[V]
	size int
}

var _ trie.Container[int] = (*Tree[int])(nil)

func (t *Tree[V]) ensureRoot(a arena.Allocator) *Node[V] {
	if t.root == nil {
		t.root = NewNode[V](a, nil)
	}

	return t.root
}

// Len reports the number of keys currently stored.
func (t *Tree[V]) Len() int { return t.size }

// IsEmpty reports whether the tree holds no keys.
func (t *Tree[V]) IsEmpty() bool { return t.size == 0 }

// Get returns a shared reference to the value bound to key, or opt.None if
// key is not stored. The reference remains valid until the tree is next
// mutated.
func (t *Tree[V]) Get(key []byte) opt.Option[*V] {
	if t.root == nil {
		return opt.None[*V]()
	}

	return opt.Wrap(Search(t.root, key))
}

// Contains reports whether key is stored.
func (t *Tree[V]) Contains(key []byte) bool {
	return t.root != nil && Search(t.root, key) != nil
}

// ContainsPrefix reports whether any stored key begins with prefix
// (including the empty prefix).
func (t *Tree[V]) ContainsPrefix(prefix []byte) bool {
	if t.root == nil {
		return false
	}

	if len(prefix) == 0 {
		return t.size > 0
	}

	return HasPrefix(t.root, prefix)
}

// Insert binds key to value, replacing and returning any previous value
// bound to the same key.
func (t *Tree[V]) Insert(a arena.Allocator, key []byte, value V) opt.Option[V] {
	debug.Log([]any{"patricia"}, "Insert", "key=%q", key)

	old := Insert(a, t.ensureRoot(a), key, value, true)
	if old.IsNone() {
		t.size++
	}

	return old
}

// InsertNoReplace binds key to value only if key is not already stored. It
// returns opt.None on a fresh insert, or the pre-existing value if key was
// already present (in which case value is discarded).
func (t *Tree[V]) InsertNoReplace(a arena.Allocator, key []byte, value V) opt.Option[V] {
	old := Insert(a, t.ensureRoot(a), key, value, false)
	if old.IsNone() {
		t.size++
	}

	return old
}

// Delete removes key, returning its bound value, or opt.None if key was not
// stored.
func (t *Tree[V]) Delete(a arena.Allocator, key []byte) opt.Option[V] {
	debug.Log([]any{"patricia"}, "Delete", "key=%q", key)

	if t.root == nil {
		return opt.None[V]()
	}

	old := Delete(a, t.root, key)
	if old.IsSome() {
		t.size--
	}

	return old
}

// PathMatches returns one (length, value) pair for every stored key that is
// a prefix of query, including query itself, in strictly increasing length
// order.
func (t *Tree[V]) PathMatches(query []byte) []Match[V] {
	if t.root == nil {
		return nil
	}

	return PathMatches(t.root, query)
}

// Visit calls cb with every stored (key, value) pair, in sorted-edge order,
// stopping early if cb returns true.
func (t *Tree[V]) Visit(cb func(key []byte, value *V) bool) bool {
	if t.root == nil {
		return false
	}

	return Visit(t.root, nil, cb)
}

// VisitPrefix calls cb with every stored (key, value) pair whose key begins
// with prefix, stopping early if cb returns true.
func (t *Tree[V]) VisitPrefix(prefix []byte, cb func(key []byte, value *V) bool) bool {
	if t.root == nil {
		return false
	}

	return VisitPrefix(t.root, prefix, cb)
}

// Minimum returns the node holding the lexicographically smallest stored
// key, or nil if the tree is empty.
func (t *Tree[V]) Minimum() *Node[V] {
	if t.root == nil {
		return nil
	}

	return t.root.Minimum()
}

// Maximum returns the node holding the lexicographically largest stored
// key, or nil if the tree is empty.
func (t *Tree[V]) Maximum() *Node[V] {
	if t.root == nil {
		return nil
	}

	return t.root.Maximum()
}
