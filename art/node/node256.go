package node

import (
	"github.com/bastiscode/byte-trie/internal/debug"
	"github.com/bastiscode/byte-trie/pkg/arena"
)

// Node256 holds a child for every possible byte value, indexed directly. It
// is the largest layout and never grows.
type Node256[V any] struct {
	Base

	ZeroSizedChild Ref[V]
	Children       [Node256Max]Ref[V]
}

var _ Node[any] = (*Node256[any])(nil)

func (n *Node256[V]) Type() Type  { return TypeNode256 }
func (n *Node256[V]) Full() bool  { return n.NumChildren == Node256Max }
func (n *Node256[V]) Ref() Ref[V] { return Ref[V]{n} }

func (n *Node256[V]) Minimum() *Leaf[V] {
	if !n.ZeroSizedChild.Empty() {
		return n.ZeroSizedChild.AsLeaf()
	}

	for b := 0; b < 256; b++ {
		if !n.Children[b].Empty() {
			return n.Children[b].AsNode().Minimum()
		}
	}

	return nil
}

func (n *Node256[V]) Maximum() *Leaf[V] {
	for b := 255; b >= 0; b-- {
		if !n.Children[b].Empty() {
			return n.Children[b].AsNode().Maximum()
		}
	}

	if !n.ZeroSizedChild.Empty() {
		return n.ZeroSizedChild.AsLeaf()
	}

	return nil
}

func (n *Node256[V]) FindChild(b int) *Ref[V] {
	if b < 0 {
		if n.ZeroSizedChild.Empty() {
			return nil
		}

		return &n.ZeroSizedChild
	}

	if n.Children[byte(b)].Empty() {
		return nil
	}

	return &n.Children[byte(b)]
}

func (n *Node256[V]) AddChild(b int, child AsRef[V]) {
	if b < 0 {
		n.ZeroSizedChild = child.Ref()

		return
	}

	k := byte(b)
	if n.Children[k].Empty() {
		debug.Assert(!n.Full(), "node256 must not be full")

		n.NumChildren++
	}

	n.Children[k] = child.Ref()
}

// Grow is never called: Node256 is the largest layout.
func (n *Node256[V]) Grow(a arena.Allocator) Node[V] {
	panic("node256 cannot grow")
}

func (n *Node256[V]) RemoveChild(b int, child *Ref[V]) {
	if b < 0 {
		n.ZeroSizedChild = Ref[V]{}

		return
	}

	k := byte(b)
	debug.Assert(!n.Children[k].Empty(), "child must be present")

	n.Children[k] = Ref[V]{}
	n.NumChildren--
}

// Shrink converts this Node256 back to a Node48 once its child count has
// fallen to Node256Min or below.
func (n *Node256[V]) Shrink(a arena.Allocator) Node[V] {
	if n.NumChildren > Node256Min {
		return n
	}

	next := arena.New(a, Node48[V]{Base: n.Base, ZeroSizedChild: n.ZeroSizedChild})

	slot := byte(0)

	for b := 0; b < 256; b++ {
		if !n.Children[b].Empty() {
			next.Children[slot] = n.Children[b]
			next.Keys[b] = slot + 1
			slot++
		}
	}

	next.NumChildren = n.NumChildren

	arena.Free(a, n)

	return next
}

func (n *Node256[V]) Release(a arena.Allocator) {
	n.Partial.Release(a)

	arena.Free(a, n)
}
