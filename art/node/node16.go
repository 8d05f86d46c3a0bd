package node

import (
	"github.com/bastiscode/byte-trie/art/simd"
	"github.com/bastiscode/byte-trie/internal/debug"
	"github.com/bastiscode/byte-trie/pkg/arena"
)

// Node16 holds up to 16 children in parallel arrays kept sorted by key
// byte, searched via art/simd (a scalar scan; see that package's doc
// comment for why it isn't actual SIMD here).
type Node16[V any] struct {
	Base

	ZeroSizedChild Ref[V]
	Keys           [Node16Max]byte
	Children       [Node16Max]Ref[V]
}

var _ Node[any] = (*Node16[any])(nil)

func (n *Node16[V]) Type() Type  { return TypeNode16 }
func (n *Node16[V]) Full() bool  { return n.NumChildren == Node16Max }
func (n *Node16[V]) Ref() Ref[V] { return Ref[V]{n} }

func (n *Node16[V]) Minimum() *Leaf[V] {
	if !n.ZeroSizedChild.Empty() {
		return n.ZeroSizedChild.AsLeaf()
	}

	if n.NumChildren == 0 {
		return nil
	}

	return n.Children[0].AsNode().Minimum()
}

func (n *Node16[V]) Maximum() *Leaf[V] {
	if n.NumChildren == 0 {
		if !n.ZeroSizedChild.Empty() {
			return n.ZeroSizedChild.AsLeaf()
		}

		return nil
	}

	return n.Children[n.NumChildren-1].AsNode().Maximum()
}

func (n *Node16[V]) index(b byte) int {
	return simd.FindKeyIndex(&n.Keys, n.NumChildren, b)
}

func (n *Node16[V]) FindChild(b int) *Ref[V] {
	if b < 0 {
		if n.ZeroSizedChild.Empty() {
			return nil
		}

		return &n.ZeroSizedChild
	}

	if i := n.index(byte(b)); i >= 0 {
		return &n.Children[i]
	}

	return nil
}

func (n *Node16[V]) AddChild(b int, child AsRef[V]) {
	if b < 0 {
		n.ZeroSizedChild = child.Ref()

		return
	}

	debug.Assert(!n.Full(), "node16 must not be full")

	k := byte(b)
	i := simd.FindInsertPosition(&n.Keys, n.NumChildren, k)

	if i < n.NumChildren && n.Keys[i] == k {
		n.Children[i] = child.Ref()

		return
	}

	copy(n.Keys[i+1:n.NumChildren+1], n.Keys[i:n.NumChildren])
	copy(n.Children[i+1:n.NumChildren+1], n.Children[i:n.NumChildren])

	n.Keys[i] = k
	n.Children[i] = child.Ref()
	n.NumChildren++
}

// Grow converts this Node16 to a Node48.
func (n *Node16[V]) Grow(a arena.Allocator) Node[V] {
	next := arena.New(a, Node48[V]{Base: n.Base, ZeroSizedChild: n.ZeroSizedChild})

	for i := 0; i < n.NumChildren; i++ {
		next.Children[i] = n.Children[i]
		next.Keys[n.Keys[i]] = byte(i + 1)
	}

	next.NumChildren = n.NumChildren

	return next
}

func (n *Node16[V]) RemoveChild(b int, child *Ref[V]) {
	if b < 0 {
		n.ZeroSizedChild = Ref[V]{}

		return
	}

	i := n.index(byte(b))
	debug.Assert(i >= 0, "child must be present")

	copy(n.Keys[i:], n.Keys[i+1:n.NumChildren])
	copy(n.Children[i:], n.Children[i+1:n.NumChildren])
	n.NumChildren--
}

// Shrink converts this Node16 back to a Node4 once its child count has
// fallen to Node16Min or below.
func (n *Node16[V]) Shrink(a arena.Allocator) Node[V] {
	if n.NumChildren > Node16Min {
		return n
	}

	next := arena.New(a, Node4[V]{Base: n.Base, ZeroSizedChild: n.ZeroSizedChild})

	copy(next.Keys[:], n.Keys[:n.NumChildren])
	copy(next.Children[:], n.Children[:n.NumChildren])
	next.NumChildren = n.NumChildren

	arena.Free(a, n)

	return next
}

func (n *Node16[V]) Release(a arena.Allocator) {
	n.Partial.Release(a)

	arena.Free(a, n)
}
