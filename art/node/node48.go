package node

import (
	"github.com/bastiscode/byte-trie/internal/debug"
	"github.com/bastiscode/byte-trie/pkg/arena"
)

// Node48 holds up to 48 children in a dense array, addressed indirectly
// through a 256-entry table mapping key byte to a 1-based slot index (0
// means "no child for this byte"). Children are kept dense: removing one
// swaps the last occupied slot into the freed position and repoints the
// index table, so the occupied range is always Children[:NumChildren].
type Node48[V any] struct {
	Base

	ZeroSizedChild Ref[V]
	Keys           [256]byte
	Children       [Node48Max]Ref[V]
}

var _ Node[any] = (*Node48[any])(nil)

func (n *Node48[V]) Type() Type  { return TypeNode48 }
func (n *Node48[V]) Full() bool  { return n.NumChildren == Node48Max }
func (n *Node48[V]) Ref() Ref[V] { return Ref[V]{n} }

func (n *Node48[V]) Minimum() *Leaf[V] {
	if !n.ZeroSizedChild.Empty() {
		return n.ZeroSizedChild.AsLeaf()
	}

	for b := 0; b < 256; b++ {
		if slot := n.Keys[b]; slot != 0 {
			return n.Children[slot-1].AsNode().Minimum()
		}
	}

	return nil
}

func (n *Node48[V]) Maximum() *Leaf[V] {
	for b := 255; b >= 0; b-- {
		if slot := n.Keys[b]; slot != 0 {
			return n.Children[slot-1].AsNode().Maximum()
		}
	}

	if !n.ZeroSizedChild.Empty() {
		return n.ZeroSizedChild.AsLeaf()
	}

	return nil
}

func (n *Node48[V]) FindChild(b int) *Ref[V] {
	if b < 0 {
		if n.ZeroSizedChild.Empty() {
			return nil
		}

		return &n.ZeroSizedChild
	}

	slot := n.Keys[byte(b)]
	if slot == 0 {
		return nil
	}

	return &n.Children[slot-1]
}

func (n *Node48[V]) AddChild(b int, child AsRef[V]) {
	if b < 0 {
		n.ZeroSizedChild = child.Ref()

		return
	}

	k := byte(b)

	if slot := n.Keys[k]; slot != 0 {
		n.Children[slot-1] = child.Ref()

		return
	}

	debug.Assert(!n.Full(), "node48 must not be full")

	n.Children[n.NumChildren] = child.Ref()
	n.Keys[k] = byte(n.NumChildren + 1)
	n.NumChildren++
}

// Grow converts this Node48 to a Node256.
func (n *Node48[V]) Grow(a arena.Allocator) Node[V] {
	next := arena.New(a, Node256[V]{Base: n.Base, ZeroSizedChild: n.ZeroSizedChild})

	for b := 0; b < 256; b++ {
		if slot := n.Keys[b]; slot != 0 {
			next.Children[b] = n.Children[slot-1]
		}
	}

	next.NumChildren = n.NumChildren

	return next
}

func (n *Node48[V]) RemoveChild(b int, child *Ref[V]) {
	if b < 0 {
		n.ZeroSizedChild = Ref[V]{}

		return
	}

	k := byte(b)
	slot := n.Keys[k]
	debug.Assert(slot != 0, "child must be present")

	last := byte(n.NumChildren)
	idx := slot - 1

	if slot != last {
		n.Children[idx] = n.Children[last-1]

		for lb := 0; lb < 256; lb++ {
			if n.Keys[lb] == last {
				n.Keys[lb] = slot

				break
			}
		}
	}

	n.Children[last-1] = Ref[V]{}
	n.Keys[k] = 0
	n.NumChildren--
}

// Shrink converts this Node48 back to a Node16 once its child count has
// fallen to Node48Min or below.
func (n *Node48[V]) Shrink(a arena.Allocator) Node[V] {
	if n.NumChildren > Node48Min {
		return n
	}

	next := arena.New(a, Node16[V]{Base: n.Base, ZeroSizedChild: n.ZeroSizedChild})

	i := 0

	for b := 0; b < 256; b++ {
		if slot := n.Keys[b]; slot != 0 {
			next.Keys[i] = byte(b)
			next.Children[i] = n.Children[slot-1]
			i++
		}
	}

	next.NumChildren = n.NumChildren

	arena.Free(a, n)

	return next
}

func (n *Node48[V]) Release(a arena.Allocator) {
	n.Partial.Release(a)

	arena.Free(a, n)
}
