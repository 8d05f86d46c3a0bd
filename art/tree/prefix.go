// Package tree implements the recursive insert/search/delete/iterate
// algorithms shared by every ART node layout, operating on node.Ref[V] so
// the caller need not know which concrete layout it holds.
package tree

import (
	"github.com/bastiscode/byte-trie/art/node"
	"github.com/bastiscode/byte-trie/pkg/arena/slice"
)

// LongestCommonPrefix returns the first index at or after depth where l and
// r diverge, or the length of the shorter one if one is a prefix of the
// other.
func LongestCommonPrefix(l, r slice.Slice[byte], depth int) (i int) {
	n := min(l.Len(), r.Len())
	i = depth

	for i < n && l.Load(i) == r.Load(i) {
		i++
	}

	return
}

// CheckPrefix returns how many bytes of partial (starting at depth in key)
// match key.
func CheckPrefix(partial slice.Slice[byte], key []byte, depth int) (i int) {
	n := min(partial.Len(), len(key)-depth)

	for ; i < n; i++ {
		if partial.Load(i) != key[depth+i] {
			break
		}
	}

	return i
}

// PrefixMismatch is CheckPrefix extended past a node's own stored prefix:
// once the whole stored prefix matches, the comparison continues along the
// key of the subtree's minimum leaf, which carries the full path, so the
// result can exceed the prefix's length.
func PrefixMismatch[V any](n node.Node[V], key []byte, depth int) (i int) {
	partial := n.Prefix()

	for ; i < min(partial.Len(), len(key)-depth); i++ {
		if partial.Load(i) != key[depth+i] {
			return
		}
	}

	if l := n.Minimum(); l != nil {
		for ; i < min(l.Key.Len(), len(key))-depth; i++ {
			if l.Key.Load(depth+i) != key[depth+i] {
				return
			}
		}
	}

	return
}
