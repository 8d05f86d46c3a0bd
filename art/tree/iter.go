package tree

import (
	"github.com/bastiscode/byte-trie/art/node"
)

// RecursiveIter visits every leaf in the subtree rooted at ref in key order,
// calling cb with each key and a pointer to its value. It stops and returns
// true as soon as cb returns true; otherwise it returns false once the
// subtree is exhausted.
func RecursiveIter[V any](ref node.Ref[V], cb func(key []byte, value *V) bool) bool {
	if ref.Empty() {
		return false
	}

	switch n := ref.AsNode().(type) {
	case *node.Leaf[V]:
		return cb(n.Key.Raw(), &n.Value)

	case *node.Node4[V]:
		if !n.ZeroSizedChild.Empty() && RecursiveIter(n.ZeroSizedChild, cb) {
			return true
		}

		for i := 0; i < n.NumChildren; i++ {
			if RecursiveIter(n.Children[i], cb) {
				return true
			}
		}

	case *node.Node16[V]:
		if !n.ZeroSizedChild.Empty() && RecursiveIter(n.ZeroSizedChild, cb) {
			return true
		}

		for i := 0; i < n.NumChildren; i++ {
			if RecursiveIter(n.Children[i], cb) {
				return true
			}
		}

	case *node.Node48[V]:
		if !n.ZeroSizedChild.Empty() && RecursiveIter(n.ZeroSizedChild, cb) {
			return true
		}

		for b := 0; b < 256; b++ {
			if slot := n.Keys[b]; slot != 0 {
				if RecursiveIter(n.Children[slot-1], cb) {
					return true
				}
			}
		}

	case *node.Node256[V]:
		if !n.ZeroSizedChild.Empty() && RecursiveIter(n.ZeroSizedChild, cb) {
			return true
		}

		for b := 0; b < 256; b++ {
			if !n.Children[b].Empty() && RecursiveIter(n.Children[b], cb) {
				return true
			}
		}
	}

	return false
}

// IterPrefix visits every leaf whose key begins with prefix, in key order.
// It stops and returns true as soon as cb returns true.
func IterPrefix[V any](ref node.Ref[V], prefix []byte, cb func(key []byte, value *V) bool) bool {
	var depth int

	for !ref.Empty() {
		if l := ref.AsLeaf(); l != nil {
			if l.MatchesPrefix(prefix) {
				return cb(l.Key.Raw(), &l.Value)
			}

			return false
		}

		n := ref.AsNode()

		if depth == len(prefix) {
			if l := n.Minimum(); l != nil && l.MatchesPrefix(prefix) {
				return RecursiveIter(ref, cb)
			}

			return false
		}

		if p := n.Prefix(); p.Len() > 0 {
			matched := PrefixMismatch(n, prefix, depth)
			if matched > p.Len() {
				matched = p.Len()
			}

			if matched == 0 {
				return false
			}

			if depth+matched == len(prefix) {
				return RecursiveIter(ref, cb)
			}

			if matched < p.Len() {
				return false
			}

			depth += p.Len()
		}

		child := n.FindChild(int(prefix[depth]))
		if child == nil {
			return false
		}

		ref = *child
		depth++
	}

	return false
}
