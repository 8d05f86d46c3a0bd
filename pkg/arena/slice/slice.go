// Package slice provides an arena-managed byte-string type used to store
// trie edges, prefixes and keys.
//
// # Simplification from the teacher package
//
// The package this one is modeled on stores a raw pointer/len/cap triple
// and carves its backing storage directly out of an arena's untyped memory
// via unsafe casts, so a Slice[T] never needs a companion Go slice header
// allocation. That can't be safely reproduced without compiling and running
// it. This package keeps the same method surface (Raw, Load, Slice, Len,
// Empty, Release, EqualTo, AppendOne, CheckedLoad) but stores a plain Go
// []T under the hood, allocated through [arena.New] so it still participates
// in the allocator's accounting. See DESIGN.md.
package slice

import (
	"github.com/bastiscode/byte-trie/pkg/arena"
	"github.com/bastiscode/byte-trie/pkg/opt"
)

// Slice is a byte string (or, generically, a T string) owned by an arena.
type Slice[T any] struct {
	data []T
}

// Of allocates a slice holding a copy of values.
func Of[T any](a arena.Allocator, values ...T) Slice[T] {
	if len(values) == 0 {
		return Slice[T]{}
	}

	buf := arena.New(a, make([]T, len(values)))
	copy(*buf, values)

	return Slice[T]{*buf}
}

// FromBytes allocates a slice holding a copy of b.
func FromBytes(a arena.Allocator, b []byte) Slice[byte] {
	return Of(a, b...)
}

// Wrap creates a Slice[T] that shares the backing array of s, without
// copying or allocating. Used where the caller already owns storage with at
// least the Slice's lifetime (e.g. a query key passed in by the caller).
func Wrap[T any](s []T) Slice[T] {
	return Slice[T]{s}
}

// Clone allocates an independent copy of s.
func Clone[T any](a arena.Allocator, s Slice[T]) Slice[T] {
	return Of(a, s.data...)
}

// Len returns the number of elements in the slice.
func (s Slice[T]) Len() int { return len(s.data) }

// Empty returns true if the slice holds no elements.
func (s Slice[T]) Empty() bool { return len(s.data) == 0 }

// Raw returns the underlying Go slice. The result must not be retained
// past the lifetime of the owning arena.
func (s Slice[T]) Raw() []T { return s.data }

// Load returns the element at index i.
func (s Slice[T]) Load(i int) T { return s.data[i] }

// CheckedLoad returns the element at index i, or None if i is out of range.
func (s Slice[T]) CheckedLoad(i int) opt.Option[T] {
	if i < 0 || i >= len(s.data) {
		return opt.None[T]()
	}

	return opt.Some(s.data[i])
}

// Slice returns the sub-slice [from, to), sharing the same backing array.
func (s Slice[T]) Slice(from, to int) Slice[T] {
	return Slice[T]{s.data[from:to]}
}

// SetLen truncates or (if within capacity) extends the slice to length n.
func (s *Slice[T]) SetLen(n int) {
	s.data = s.data[:n]
}

// AppendOne returns a new slice holding s's elements followed by v. It
// always copies into a fresh Go slice (not obtained through a) and leaves
// s unchanged.
func (s Slice[T]) AppendOne(a arena.Allocator, v T) Slice[T] {
	return Slice[T]{append(append([]T{}, s.data...), v)}
}

// Release marks the slice as no longer used; it does not hand its backing
// storage back to a. The Slice must not be used afterwards.
func (s Slice[T]) Release(arena.Allocator) {
	// Backed by ordinary Go slices tracked by the allocator's live set, so
	// there is nothing bespoke to release; the allocator's own Reset (or
	// the garbage collector, once unreferenced) reclaims the backing array.
}

// Equal reports whether l and r hold the same sequence of elements.
func Equal[T comparable](l Slice[T], r Slice[T]) bool {
	if l.Len() != r.Len() {
		return false
	}

	for i := range l.data {
		if l.data[i] != r.data[i] {
			return false
		}
	}

	return true
}

// EqualTo reports whether s holds the same sequence of elements as raw.
func EqualTo[T comparable](s Slice[T], raw []T) bool {
	if s.Len() != len(raw) {
		return false
	}

	for i := range s.data {
		if s.data[i] != raw[i] {
			return false
		}
	}

	return true
}
