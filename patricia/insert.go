package patricia

import (
	"github.com/bastiscode/byte-trie/pkg/arena"
	"github.com/bastiscode/byte-trie/pkg/arena/slice"
	"github.com/bastiscode/byte-trie/pkg/opt"
)

func longestCommonPrefix(a, b []byte) int {
	n := min(len(a), len(b))

	var i int
	for i < n && a[i] == b[i] {
		i++
	}

	return i
}

// Insert binds the remaining bytes of search (originally the full key) to
// value somewhere in the subtree rooted at n, splitting edges as needed. It
// returns the value previously bound to the full key, if any, overwriting
// it only when replace is true.
func Insert[V any](a arena.Allocator, n *Node[V], search []byte, value V, replace bool) opt.Option[V] {
	if len(search) == 0 {
		old := n.Value

		if replace || old.IsNone() {
			n.Value = opt.Some(value)
		}

		return old
	}

	child := n.GetEdge(search[0])
	if child == nil {
		n.AddEdge(search[0], leafFor(a, search, value))

		return opt.None[V]()
	}

	childPrefix := child.Partial.Raw()

	common := longestCommonPrefix(search, childPrefix)
	if common == len(childPrefix) {
		return Insert(a, child, search[common:], value, replace)
	}

	split := NewNode[V](a, search[:common])

	remainingChildPrefix := append([]byte{}, childPrefix[common:]...)
	child.Partial.Release(a)
	child.Partial = slice.FromBytes(a, remainingChildPrefix)

	split.AddEdge(remainingChildPrefix[0], child)
	n.AddEdge(search[0], split)

	rest := search[common:]
	if len(rest) == 0 {
		split.Value = opt.Some(value)

		return opt.None[V]()
	}

	split.AddEdge(rest[0], leafFor(a, rest, value))

	return opt.None[V]()
}

func leafFor[V any](a arena.Allocator, key []byte, value V) *Node[V] {
	l := NewNode[V](a, key)
	l.Value = opt.Some(value)

	return l
}
