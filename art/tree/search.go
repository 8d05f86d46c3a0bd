package tree

import (
	"github.com/bastiscode/byte-trie/art/node"
)

// Search looks up key in the subtree rooted at ref, returning a pointer
// into the stored leaf's value (not a copy), or nil if key is not present.
func Search[V any](ref node.Ref[V], key []byte) *V {
	var depth int

	for !ref.Empty() {
		if l := ref.AsLeaf(); l != nil {
			if l.Matches(key) {
				return &l.Value
			}

			return nil
		}

		curr := ref.AsNode()

		if partial := curr.Prefix(); partial.Len() > 0 {
			if CheckPrefix(partial, key, depth) != partial.Len() {
				return nil
			}

			depth += partial.Len()
		}

		b := -1
		if depth < len(key) {
			b = int(key[depth])
		}

		child := curr.FindChild(b)
		if child == nil {
			return nil
		}

		ref = *child
		depth++
	}

	return nil
}

// HasPrefix reports whether any key stored in the subtree rooted at ref
// begins with prefix (prefix itself need not be a stored key).
func HasPrefix[V any](ref node.Ref[V], prefix []byte) bool {
	var depth int

	for !ref.Empty() {
		if l := ref.AsLeaf(); l != nil {
			return l.MatchesPrefix(prefix)
		}

		n := ref.AsNode()

		if depth == len(prefix) {
			return true
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
				return true
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
