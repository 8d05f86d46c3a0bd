package node

import (
	"github.com/bastiscode/byte-trie/internal/debug"
	"github.com/bastiscode/byte-trie/pkg/arena"
	"github.com/bastiscode/byte-trie/pkg/arena/slice"
)

// Leaf is the terminal node storing one key-value pair.
//
// A Leaf stored in an inner node's ZeroSizedChild slot represents the value
// bound to that node itself (the "terminal value"), reached without one more
// branching byte. Such a leaf still carries the full stored key.
type Leaf[V any] struct {
	Key   slice.Slice[byte]
	Value V
}

var _ Node[any] = (*Leaf[any])(nil)

// NewLeaf allocates a leaf for key and value in a.
func NewLeaf[V any](a arena.Allocator, key []byte, value V) *Leaf[V] {
	debug.Assert(a != nil, "arena must not be nil")

	return arena.New(a, Leaf[V]{slice.FromBytes(a, key), value})
}

func (l *Leaf[V]) Type() Type { return TypeLeaf }
func (l *Leaf[V]) Full() bool { return true }
func (l *Leaf[V]) Ref() Ref[V] { return Ref[V]{l} }

// Prefix returns the leaf's full key, since a leaf's "edge" from its parent
// is the entire remaining key.
func (l *Leaf[V]) Prefix() slice.Slice[byte] { return l.Key }

func (l *Leaf[V]) SetPrefix(prefix slice.Slice[byte]) { l.Key = prefix }

func (l *Leaf[V]) Minimum() *Leaf[V] { return l }
func (l *Leaf[V]) Maximum() *Leaf[V] { return l }

func (l *Leaf[V]) FindChild(b int) *Ref[V]            { panic("leaf cannot have children") }
func (l *Leaf[V]) AddChild(b int, child AsRef[V])     { panic("leaf cannot have children") }
func (l *Leaf[V]) RemoveChild(b int, child *Ref[V])   { panic("leaf cannot have children") }
func (l *Leaf[V]) Grow(a arena.Allocator) Node[V]     { panic("leaf cannot have children") }
func (l *Leaf[V]) Shrink(a arena.Allocator) Node[V] { panic("leaf cannot have children") }

// Release returns the leaf's key storage and its own storage to a.
func (l *Leaf[V]) Release(a arena.Allocator) {
	l.Key.Release(a)

	arena.Free(a, l)
}

// Matches reports whether this leaf's key equals key exactly.
func (l *Leaf[V]) Matches(key []byte) bool {
	return slice.EqualTo(l.Key, key)
}

// MatchesPrefix reports whether this leaf's key begins with prefix.
func (l *Leaf[V]) MatchesPrefix(prefix []byte) bool {
	raw := l.Key.Raw()
	if len(raw) < len(prefix) {
		return false
	}

	for i, b := range prefix {
		if raw[i] != b {
			return false
		}
	}

	return true
}
