// Package art implements the Adaptive Radix Trie engine: an edge- and
// prefix-compressed trie whose inner nodes switch between four layouts
// (Node4, Node16, Node48, Node256) as their child count grows or shrinks,
// keeping per-node memory proportional to the branching actually present at
// that node instead of a fixed 256-entry table everywhere.
package art

import (
	"github.com/bastiscode/byte-trie/art/node"
	"github.com/bastiscode/byte-trie/art/tree"
	"github.com/bastiscode/byte-trie/internal/debug"
	"github.com/bastiscode/byte-trie/pkg/arena"
	"github.com/bastiscode/byte-trie/pkg/opt"
	"github.com/bastiscode/byte-trie/pkg/trie"
)

// Tree is an Adaptive Radix Trie mapping byte-string keys to values of type
// V. The zero Tree is empty and ready to use.
type Tree[V any] struct {
	root node.Ref[V]
	size int
}

var _ trie.Container[int] = (*Tree[int])(nil)

// Len reports the number of keys currently stored.
func (t *Tree[V]) Len() int { return t.size }

// IsEmpty reports whether the tree holds no keys.
func (t *Tree[V]) IsEmpty() bool { return t.size == 0 }

// Get returns a shared reference to the value bound to key, or opt.None if
// key is not stored. The reference remains valid until the tree is next
// mutated.
func (t *Tree[V]) Get(key []byte) opt.Option[*V] {
	return opt.Wrap(tree.Search(t.root, key))
}

// Contains reports whether key is stored.
func (t *Tree[V]) Contains(key []byte) bool {
	return tree.Search(t.root, key) != nil
}

// ContainsPrefix reports whether any stored key begins with prefix
// (prefix itself counts, including the empty prefix).
func (t *Tree[V]) ContainsPrefix(prefix []byte) bool {
	if len(prefix) == 0 {
		return !t.root.Empty()
	}

	return tree.HasPrefix(t.root, prefix)
}

// Insert binds key to value, replacing and returning any previous value
// bound to the same key.
func (t *Tree[V]) Insert(a arena.Allocator, key []byte, value V) opt.Option[V] {
	debug.Log([]any{"art"}, "Insert", "key=%q", key)

	old := tree.RecursiveInsert(a, &t.root, node.NewLeaf(a, key, value), 0, true)
	if old.IsNone() {
		t.size++
	}

	return old
}

// InsertNoReplace binds key to value only if key is not already stored. It
// returns opt.None on a fresh insert, or the pre-existing value if key was
// already present (in which case value is discarded).
func (t *Tree[V]) InsertNoReplace(a arena.Allocator, key []byte, value V) opt.Option[V] {
	old := tree.RecursiveInsert(a, &t.root, node.NewLeaf(a, key, value), 0, false)
	if old.IsNone() {
		t.size++
	}

	return old
}

// Delete removes key, returning its bound value, or opt.None if key was not
// stored.
func (t *Tree[V]) Delete(a arena.Allocator, key []byte) opt.Option[V] {
	debug.Log([]any{"art"}, "Delete", "key=%q", key)

	l := tree.RecursiveDelete(a, &t.root, key, 0)
	if l == nil {
		return opt.None[V]()
	}

	t.size--
	value := l.Value

	l.Release(a)

	return opt.Some(value)
}

// PathMatches returns one (length, value) pair for every stored key that is
// a prefix of query, including query itself, in strictly increasing length
// order.
func (t *Tree[V]) PathMatches(query []byte) []tree.Match[V] {
	return tree.PathMatches(t.root, query)
}

// Visit calls cb with every stored (key, value) pair, in implementation-
// defined order, stopping early if cb returns true.
func (t *Tree[V]) Visit(cb func(key []byte, value *V) bool) bool {
	return tree.RecursiveIter(t.root, cb)
}

// VisitPrefix calls cb with every stored (key, value) pair whose key begins
// with prefix, stopping early if cb returns true.
func (t *Tree[V]) VisitPrefix(prefix []byte, cb func(key []byte, value *V) bool) bool {
	return tree.IterPrefix(t.root, prefix, cb)
}

// Minimum returns the lexicographically smallest stored key's leaf, or nil
// if the tree is empty.
func (t *Tree[V]) Minimum() *node.Leaf[V] {
	if t.root.Empty() {
		return nil
	}

	if l := t.root.AsLeaf(); l != nil {
		return l
	}

	return t.root.AsNode().Minimum()
}

// Maximum returns the lexicographically largest stored key's leaf, or nil
// if the tree is empty.
func (t *Tree[V]) Maximum() *node.Leaf[V] {
	if t.root.Empty() {
		return nil
	}

	if l := t.root.AsLeaf(); l != nil {
		return l
	}

	return t.root.AsNode().Maximum()
}
