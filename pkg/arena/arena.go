// Package arena provides a small bump-allocation abstraction for the trie
// engines in this module.
//
// Both trie engines allocate many small, uniformly-shaped node structs over
// their lifetime. Rather than letting each node be an independent heap
// allocation with its own lifetime, every mutating operation is handed an
// [Allocator]: nodes (and the byte slices backing their edges/prefixes/keys)
// are obtained through it, and resetting the allocator drops every
// reference it holds to them in one step. The allocations themselves are
// ordinary values traced and collected by the garbage collector (see
// below).
//
// # Simplification from the teacher package
//
// The package this one is modeled on backs its arena with raw, untyped
// memory obtained via unsafe pointer tagging and a hand-rolled traceable
// allocation shape, so that arena-carved pointers remain valid to the
// garbage collector without each one being a separate heap allocation. That
// approach cannot be safely reproduced here without compiling and running
// it to catch a mistake. This package keeps the same [Allocator]/
// [AllocatorExt] contract and the same [New]/[Free] call shape, but backs
// every allocation with an ordinary Go `new()` call — still O(1), still
// correctly traced by the garbage collector, without the unsafe plumbing.
// See DESIGN.md.
package arena

import "reflect"

// Allocator is a source of node storage for the trie engines.
//
// It is deliberately a marker interface with no exported methods: callers
// obtain memory through the free functions [New] and [Free], never by
// calling into the allocator directly, mirroring the teacher package's
// split between the Allocator contract and its package-level New/Free
// helpers.
type Allocator interface {
	isAllocator()
}

// AllocatorExt is an Allocator that also recycles memory released with
// [Free], so a shrinking node can hand its old, now-oversized storage back
// for reuse instead of waiting for a [Recycled.Reset].
type AllocatorExt interface {
	Allocator

	release(t reflect.Type, v any)
	takeFree(t reflect.Type) (any, bool)
}

// Arena is a pure bump allocator: [New] never reuses memory released with
// [Free], and everything allocated through it becomes eligible for garbage
// collection only once the Arena itself is no longer reachable, or [Reset]
// is called.
type Arena struct {
	live []any
}

var _ Allocator = (*Arena)(nil)

func (*Arena) isAllocator() {}

// Reset drops every allocation this Arena is keeping alive, allowing the
// garbage collector to reclaim them. Any pointer obtained from this Arena,
// or from a node graph rooted in one, must not be used after Reset.
func (a *Arena) Reset() {
	a.live = nil
}

func (a *Arena) track(v any) {
	a.live = append(a.live, v)
}

// Recycled is a bump allocator with a per-type free list: memory released
// with [Free] is kept around and handed back out by a later [New] call for
// the same concrete type, instead of always allocating fresh memory.
//
// This mirrors the ART/PATRICIA node lifecycle, where Shrink frees an
// oversized node and immediately allocates its smaller replacement.
type Recycled struct {
	Arena

	free map[reflect.Type][]any
}

var (
	_ Allocator    = (*Recycled)(nil)
	_ AllocatorExt = (*Recycled)(nil)
)

func (r *Recycled) release(t reflect.Type, v any) {
	if r.free == nil {
		r.free = make(map[reflect.Type][]any)
	}

	r.free[t] = append(r.free[t], v)
}

func (r *Recycled) takeFree(t reflect.Type) (any, bool) {
	bucket := r.free[t]
	if len(bucket) == 0 {
		return nil, false
	}

	v := bucket[len(bucket)-1]
	r.free[t] = bucket[:len(bucket)-1]

	return v, true
}

// Reset drops every live and freed allocation this Recycled is keeping
// alive.
func (r *Recycled) Reset() {
	r.Arena.Reset()
	r.free = nil
}

// New allocates (or recycles) space for a value of type T, copies v into
// it, and returns a pointer to the new copy.
func New[T any](a Allocator, v T) *T {
	if r, ok := a.(AllocatorExt); ok {
		if cached, ok := r.takeFree(reflect.TypeFor[T]()); ok {
			p := cached.(*T)
			*p = v

			return p
		}
	}

	p := new(T)
	*p = v

	if tracker, ok := a.(interface{ track(any) }); ok {
		tracker.track(p)
	}

	return p
}

// Free releases p back to a, for reuse by a later [New] call for the same
// concrete type T. On a plain [Arena] this is a no-op: the memory is only
// reclaimed on [Arena.Reset] or by the garbage collector once unreferenced.
func Free[T any](a Allocator, p *T) {
	if r, ok := a.(AllocatorExt); ok {
		r.release(reflect.TypeFor[T](), p)
	}
}
