package patricia

import (
	"github.com/bastiscode/byte-trie/pkg/arena"
	"github.com/bastiscode/byte-trie/pkg/opt"
)

// Delete removes key from the subtree rooted at n, merging any node left
// with no value and a single remaining edge into that edge. It reports the
// removed value, or opt.None if key was not stored.
func Delete[V any](a arena.Allocator, n *Node[V], key []byte) opt.Option[V] {
	return deleteAt(a, n, nil, 0, key)
}

// deleteAt walks from n along key, tracking the chain of parent nodes
// passed through so it can merge collapsible nodes back up once the key is
// removed.
func deleteAt[V any](a arena.Allocator, n *Node[V], parents []*Node[V], depth int, key []byte) opt.Option[V] {
	search := key[depth:]

	if len(search) == 0 {
		if n.Value.IsNone() {
			return opt.None[V]()
		}

		old := n.Value
		n.Value = opt.None[V]()

		collapse(a, append(parents, n))

		return old
	}

	child := n.GetEdge(search[0])
	if child == nil {
		return opt.None[V]()
	}

	prefix := child.Partial.Raw()
	if len(search) < len(prefix) || !hasPrefix(search, prefix) {
		return opt.None[V]()
	}

	return deleteAt(a, child, append(parents, n), depth+len(prefix), key)
}

// collapse walks the chain (root-to-leaf order) from the back, merging any
// node that now has no value and exactly one edge into that edge, and
// removing any node left with no value and no edges from its parent.
func collapse[V any](a arena.Allocator, chain []*Node[V]) {
	for i := len(chain) - 1; i > 0; i-- {
		n := chain[i]
		parent := chain[i-1]

		switch {
		case n.Value.IsNone() && len(n.Edges) == 0:
			parent.DelEdge(n.Partial.Raw()[0])
			n.Partial.Release(a)
			arena.Free(a, n)

		case n.Value.IsNone() && len(n.Edges) == 1:
			// Merging happens in place: parent's edge to n still points at
			// the same node, so there is nothing left upstream to fix up.
			n.Merge(a)

			return

		default:
			return
		}
	}
}
