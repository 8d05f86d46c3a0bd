// Package trie defines the capability both trie engines in this module
// satisfy, so callers can depend on whichever one they chose without the
// choice leaking past construction.
package trie

import (
	"github.com/bastiscode/byte-trie/pkg/arena"
	"github.com/bastiscode/byte-trie/pkg/opt"
)

// Match is one hit produced by PathMatches: a stored key of length N that
// is a prefix of the query, together with a shared reference to its bound
// value.
type Match[V any] struct {
	N     int
	Value *V
}

// Container is the capability common to both the PATRICIA and ART engines:
// point lookup, insert with replacement, delete, prefix membership, path
// enumeration, and prefix enumeration. Every operation is polymorphic in
// the value type V.
//
// A Container is not safe for concurrent use: concurrent reads against an
// unchanging instance are fine, but any concurrent mutation requires
// external synchronization, and a live Visit/VisitPrefix traversal must not
// overlap a mutation.
type Container[V any] interface {
	// Len reports the number of stored keys.
	Len() int

	// IsEmpty reports whether no keys are stored.
	IsEmpty() bool

	// Get returns a shared reference to the value bound to key, or
	// opt.None if key is not stored.
	Get(key []byte) opt.Option[*V]

	// Contains reports whether key is stored.
	Contains(key []byte) bool

	// ContainsPrefix reports whether any stored key begins with prefix,
	// including prefix itself.
	ContainsPrefix(prefix []byte) bool

	// Insert binds key to value, replacing and returning any previous
	// value bound to the same key.
	Insert(a arena.Allocator, key []byte, value V) opt.Option[V]

	// InsertNoReplace binds key to value only if key is not already
	// stored. It returns opt.None on a fresh insert, or the pre-existing
	// value if key was already present, in which case value is discarded.
	InsertNoReplace(a arena.Allocator, key []byte, value V) opt.Option[V]

	// Delete removes key, returning its bound value, or opt.None if key
	// was not stored.
	Delete(a arena.Allocator, key []byte) opt.Option[V]

	// PathMatches returns one (length, value) pair for every stored key
	// that is a prefix of query, including query itself, in strictly
	// increasing length order.
	PathMatches(query []byte) []Match[V]

	// Visit calls cb with every stored (key, value) pair, stopping early
	// if cb returns true. Enumeration order is unspecified.
	Visit(cb func(key []byte, value *V) bool) bool

	// VisitPrefix calls cb with every stored (key, value) pair whose key
	// begins with prefix, stopping early if cb returns true.
	VisitPrefix(prefix []byte, cb func(key []byte, value *V) bool) bool
}
