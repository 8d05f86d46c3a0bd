package tree

import (
	"github.com/bastiscode/byte-trie/art/node"
	"github.com/bastiscode/byte-trie/internal/debug"
	"github.com/bastiscode/byte-trie/pkg/arena"
	"github.com/bastiscode/byte-trie/pkg/opt"
)

// childByte returns the byte at depth in key, or -1 (the terminal-value
// sentinel) if depth has reached the end of key.
func childByte(key []byte, depth int) int {
	if depth >= len(key) {
		return -1
	}

	return int(key[depth])
}

// RecursiveInsert installs leaf into the subtree rooted at ref, splitting
// nodes as needed. If a key equal to leaf's already exists, its value is
// returned and, when replace is true, overwritten; otherwise opt.None is
// returned and the tree gains one more key.
func RecursiveInsert[V any](a arena.Allocator, ref *node.Ref[V], leaf *node.Leaf[V], depth int, replace bool) opt.Option[V] {
	if ref.Empty() {
		ref.Replace(leaf)

		return opt.None[V]()
	}

	if ref.IsLeaf() {
		return insertIntoLeaf(a, ref, leaf, depth, replace)
	}

	return insertIntoNode(a, ref, leaf, depth, replace)
}

func insertIntoLeaf[V any](a arena.Allocator, ref *node.Ref[V], leaf *node.Leaf[V], depth int, replace bool) opt.Option[V] {
	curr := ref.AsLeaf()
	debug.Assert(curr != nil, "current node must be a leaf")

	if curr.Matches(leaf.Key.Raw()) {
		old := curr.Value

		if replace {
			curr.Value = leaf.Value
		}

		return opt.Some(old)
	}

	newNode := arena.New(a, node.Node4[V]{})

	if i := LongestCommonPrefix(leaf.Key, curr.Key, depth); i > depth {
		newNode.SetPrefix(leaf.Key.Slice(depth, i))

		depth = i
	}

	newNode.AddChild(childByte(leaf.Key.Raw(), depth), leaf)
	newNode.AddChild(childByte(curr.Key.Raw(), depth), curr)

	ref.Replace(newNode)

	return opt.None[V]()
}

func insertIntoNode[V any](a arena.Allocator, ref *node.Ref[V], leaf *node.Leaf[V], depth int, replace bool) opt.Option[V] {
	curr := ref.AsNode()
	debug.Assert(curr != nil, "current node must be a node")

	if partial := curr.Prefix(); !partial.Empty() {
		if diff := PrefixMismatch(curr, leaf.Key.Raw(), depth); diff >= partial.Len() {
			depth += partial.Len()
		} else {
			newNode := arena.New(a, node.Node4[V]{})
			newNode.SetPrefix(partial.Slice(0, diff))

			newNode.AddChild(int(partial.Load(diff)), curr)

			remaining := partial.Slice(diff+1, partial.Len())
			curr.SetPrefix(remaining)

			ref.Replace(newNode)

			curr = newNode
			depth += diff
		}
	}

	b := childByte(leaf.Key.Raw(), depth)

	if child := curr.FindChild(b); child != nil {
		return RecursiveInsert(a, child, leaf, depth+1, replace)
	}

	addChild(a, curr, ref, b, leaf)

	return opt.None[V]()
}

// addChild installs child at byte b on curr, growing curr (and installing
// the replacement in ref) first if curr is already Full().
func addChild[V any](a arena.Allocator, curr node.Node[V], ref *node.Ref[V], b int, child node.AsRef[V]) {
	if b >= 0 && curr.Full() {
		grown := curr.Grow(a)
		grown.AddChild(b, child)
		ref.Replace(grown)

		return
	}

	curr.AddChild(b, child)
}
