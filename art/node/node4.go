package node

import (
	"github.com/bastiscode/byte-trie/internal/debug"
	"github.com/bastiscode/byte-trie/pkg/arena"
	"github.com/bastiscode/byte-trie/pkg/arena/slice"
)

// Node4 is the smallest inner-node layout, holding up to 4 children in
// parallel arrays kept sorted by key byte for linear scan.
type Node4[V any] struct {
	Base

	ZeroSizedChild Ref[V]
	Keys           [Node4Max]byte
	Children       [Node4Max]Ref[V]
}

var _ Node[any] = (*Node4[any])(nil)

func (n *Node4[V]) Type() Type  { return TypeNode4 }
func (n *Node4[V]) Full() bool  { return n.NumChildren == Node4Max }
func (n *Node4[V]) Ref() Ref[V] { return Ref[V]{n} }

func (n *Node4[V]) Minimum() *Leaf[V] {
	if !n.ZeroSizedChild.Empty() {
		return n.ZeroSizedChild.AsLeaf()
	}

	if n.NumChildren == 0 {
		return nil
	}

	return n.Children[0].AsNode().Minimum()
}

func (n *Node4[V]) Maximum() *Leaf[V] {
	if n.NumChildren == 0 {
		if !n.ZeroSizedChild.Empty() {
			return n.ZeroSizedChild.AsLeaf()
		}

		return nil
	}

	return n.Children[n.NumChildren-1].AsNode().Maximum()
}

func (n *Node4[V]) FindChild(b int) *Ref[V] {
	if b < 0 {
		if n.ZeroSizedChild.Empty() {
			return nil
		}

		return &n.ZeroSizedChild
	}

	k := byte(b)
	for i := 0; i < n.NumChildren; i++ {
		if n.Keys[i] == k {
			return &n.Children[i]
		}
	}

	return nil
}

// AddChild inserts child at byte b, keeping Keys/Children sorted. The node
// must not be Full() when b >= 0.
func (n *Node4[V]) AddChild(b int, child AsRef[V]) {
	if b < 0 {
		n.ZeroSizedChild = child.Ref()

		return
	}

	debug.Assert(!n.Full(), "node4 must not be full")

	k := byte(b)

	var i int
	for ; i < n.NumChildren; i++ {
		if k == n.Keys[i] {
			n.Children[i] = child.Ref()

			return
		}

		if k < n.Keys[i] {
			break
		}
	}

	copy(n.Keys[i+1:n.NumChildren+1], n.Keys[i:n.NumChildren])
	copy(n.Children[i+1:n.NumChildren+1], n.Children[i:n.NumChildren])

	n.Keys[i] = k
	n.Children[i] = child.Ref()
	n.NumChildren++
}

// Grow converts this Node4 to a Node16, copying all children and the
// terminal value across.
func (n *Node4[V]) Grow(a arena.Allocator) Node[V] {
	next := arena.New(a, Node16[V]{Base: n.Base, ZeroSizedChild: n.ZeroSizedChild})

	copy(next.Keys[:], n.Keys[:n.NumChildren])
	copy(next.Children[:], n.Children[:n.NumChildren])

	return next
}

func (n *Node4[V]) RemoveChild(b int, child *Ref[V]) {
	if b < 0 {
		n.ZeroSizedChild = Ref[V]{}

		return
	}

	k := byte(b)

	var i int
	for ; i < n.NumChildren; i++ {
		if n.Keys[i] == k {
			break
		}
	}

	debug.Assert(i < n.NumChildren, "child must be present")

	copy(n.Keys[i:], n.Keys[i+1:n.NumChildren])
	copy(n.Children[i:], n.Children[i+1:n.NumChildren])
	n.NumChildren--
}

// Shrink collapses a Node4 with no terminal value and exactly one child:
// the child (if a leaf) takes the node's place directly, or (if an inner
// node) absorbs this node's prefix and the branching byte into its own
// prefix. A Node4 left with only its terminal value and no children is
// replaced by that terminal leaf, which carries the full key. A Node4 with
// a terminal value and a child, or with more than one child, is returned
// unchanged — it has no smaller layout to shrink into.
func (n *Node4[V]) Shrink(a arena.Allocator) Node[V] {
	if n.NumChildren == 0 && !n.ZeroSizedChild.Empty() {
		term := n.ZeroSizedChild

		n.Partial.Release(a)
		arena.Free(a, n)

		return term.AsNode()
	}

	if n.NumChildren != 1 || !n.ZeroSizedChild.Empty() {
		return n
	}

	child := n.Children[0]

	if c := child.AsNode(); c != nil && !child.IsLeaf() {
		combined := append(append([]byte{}, n.Partial.Raw()...), n.Keys[0])
		combined = append(combined, c.Prefix().Raw()...)

		c.Prefix().Release(a)
		c.SetPrefix(slice.FromBytes(a, combined))

		child = c.Ref()
	}

	n.Partial.Release(a)
	arena.Free(a, n)

	return child.AsNode()
}

func (n *Node4[V]) Release(a arena.Allocator) {
	n.Partial.Release(a)

	arena.Free(a, n)
}
