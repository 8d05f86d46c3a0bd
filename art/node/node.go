// Package node implements the node types for the Adaptive Radix Tree (ART)
// engine: four inner-node layouts (Node4, Node16, Node48, Node256) selected
// by child count, plus Leaf.
//
// Every inner node carries a compressed path prefix (Base.Partial) and an
// optional terminal value, represented as a Leaf (holding the full key)
// stored in the node's ZeroSizedChild slot rather than as a 257th branching
// child —
// this is the one place the tree treats "the value bound to this node
// itself" uniformly with "the value bound to a child reached by one more
// byte".
package node

import (
	"github.com/bastiscode/byte-trie/pkg/arena"
	"github.com/bastiscode/byte-trie/pkg/arena/slice"
)

// Type identifies which concrete node layout a Ref points to.
type Type int

const (
	// TypeUnknown marks an empty or invalid reference.
	TypeUnknown Type = iota
	// TypeLeaf is a terminal node storing a full key and a value.
	TypeLeaf
	// TypeNode4 stores up to 4 children in sorted parallel arrays.
	TypeNode4
	// TypeNode16 stores up to 16 children in sorted parallel arrays.
	TypeNode16
	// TypeNode48 stores up to 48 children via a 256-entry byte-to-slot index.
	TypeNode48
	// TypeNode256 stores up to 256 children via direct byte indexing.
	TypeNode256
)

const (
	// Node4Max is the maximum child count of a Node4 before it grows.
	Node4Max = 4
	// Node16Max is the maximum child count of a Node16 before it grows.
	Node16Max = 16
	// Node48Max is the maximum child count of a Node48 before it grows.
	Node48Max = 48
	// Node256Max is the maximum child count of a Node256 (it never grows).
	Node256Max = 256

	// Node16Min is the child count at or below which a Node16 shrinks to Node4.
	Node16Min = 4
	// Node48Min is the child count at or below which a Node48 shrinks to Node16.
	Node48Min = 16
	// Node256Min is the child count at or below which a Node256 shrinks to Node48.
	Node256Min = 48
)

// AsRef is implemented by anything that can be stored in a child slot: all
// concrete node types, and Ref itself.
type AsRef[V any] interface {
	Ref() Ref[V]
}

// Node is the common interface satisfied by every inner-node layout.
//
// Generic parameter V is the value type stored in the tree's leaves.
type Node[V any] interface {
	AsRef[V]

	// Type reports which concrete layout this node is.
	Type() Type

	// Full reports whether the node has reached the capacity of its
	// current layout and must Grow before accepting another child.
	Full() bool

	// Prefix returns the node's compressed path bytes.
	Prefix() slice.Slice[byte]

	// SetPrefix replaces the node's compressed path bytes.
	SetPrefix(prefix slice.Slice[byte])

	// Minimum returns the lexicographically smallest leaf in this subtree,
	// or nil if the subtree is empty.
	Minimum() *Leaf[V]

	// Maximum returns the lexicographically largest leaf in this subtree,
	// or nil if the subtree is empty.
	Maximum() *Leaf[V]

	// FindChild returns a pointer to the child reference for byte b, or nil
	// if there is none. b == -1 addresses the node's own terminal value.
	FindChild(b int) *Ref[V]

	// AddChild installs child at byte b, replacing any existing child.
	// The caller must ensure the node is not Full() for b >= 0.
	AddChild(b int, child AsRef[V])

	// RemoveChild removes the child at byte b. child must be the pointer
	// previously returned by FindChild, used to locate the slot.
	RemoveChild(b int, child *Ref[V])

	// Grow returns a larger-capacity replacement for this node, with all
	// existing children (and the terminal value) copied over. The caller
	// is responsible for installing the replacement in the parent slot.
	Grow(a arena.Allocator) Node[V]

	// Shrink returns a smaller-capacity replacement for this node if its
	// child count has fallen to the layout's retention threshold or below,
	// or collapses a single-child node that has no terminal value per
	// PATRICIA-style merging.
	// Returns the receiver unchanged if no shrink applies.
	Shrink(a arena.Allocator) Node[V]

	// Release returns the node's own storage (and its prefix slice) to a.
	Release(a arena.Allocator)
}

// Base holds the fields shared by every inner-node layout.
type Base struct {
	// Partial is the node's compressed path prefix.
	Partial slice.Slice[byte]

	// NumChildren is the number of byte-addressed children currently
	// stored (the terminal value in ZeroSizedChild is not counted).
	NumChildren int
}

// Prefix returns the node's compressed path bytes.
func (n *Base) Prefix() slice.Slice[byte] { return n.Partial }

// SetPrefix replaces the node's compressed path bytes.
func (n *Base) SetPrefix(prefix slice.Slice[byte]) { n.Partial = prefix }
