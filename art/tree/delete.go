package tree

import (
	"github.com/bastiscode/byte-trie/art/node"
	"github.com/bastiscode/byte-trie/internal/debug"
	"github.com/bastiscode/byte-trie/pkg/arena"
)

// RecursiveDelete removes the leaf matching key from the subtree rooted at
// ref, shrinking and collapsing nodes left undersized by the removal. It
// returns the removed leaf, or nil if key was not present.
func RecursiveDelete[V any](a arena.Allocator, ref *node.Ref[V], key []byte, depth int) *node.Leaf[V] {
	if ref.Empty() {
		return nil
	}

	if l := ref.AsLeaf(); l != nil {
		if l.Matches(key) {
			ref.Replace(nil)

			return l
		}

		return nil
	}

	n := ref.AsNode()

	if partial := n.Prefix(); partial.Len() > 0 {
		if CheckPrefix(partial, key, depth) != partial.Len() {
			return nil
		}

		depth += partial.Len()
	}

	if depth > len(key) {
		return nil
	}

	b := childByte(key, depth)

	child := n.FindChild(b)
	if child == nil {
		return nil
	}

	if l := child.AsLeaf(); l != nil {
		if !l.Matches(key) {
			return nil
		}

		removeChild(a, ref, b, child)

		return l
	}

	return RecursiveDelete(a, child, key, depth+1)
}

// removeChild removes the child addressed by b from ref's node, shrinking
// (and, if the shrink collapses the node entirely, replacing) it in ref.
func removeChild[V any](a arena.Allocator, ref *node.Ref[V], b int, child *node.Ref[V]) {
	debug.Assert(ref.IsNode(), "ref must be a node")

	curr := ref.AsNode()
	curr.RemoveChild(b, child)

	if shrunk := curr.Shrink(a); shrunk != curr {
		ref.Replace(shrunk)
	}
}
