package tree

import (
	"github.com/bastiscode/byte-trie/art/node"
	"github.com/bastiscode/byte-trie/pkg/trie"
)

// Match is one hit produced by PathMatches: a stored key of length N that is
// a prefix of the query, together with a pointer to its bound value.
type Match[V any] = trie.Match[V]

// PathMatches walks the subtree rooted at ref along query, collecting one
// Match for every stored key that is a prefix of query (including query
// itself), in strictly increasing N order. Descent stops at the first byte
// mismatch, so no candidate key past that point is visited.
func PathMatches[V any](ref node.Ref[V], query []byte) []Match[V] {
	var matches []Match[V]

	var depth int

	for !ref.Empty() {
		if l := ref.AsLeaf(); l != nil {
			if l.Key.Len() <= len(query) && l.Matches(query[:l.Key.Len()]) {
				matches = append(matches, Match[V]{l.Key.Len(), &l.Value})
			}

			return matches
		}

		n := ref.AsNode()

		if partial := n.Prefix(); partial.Len() > 0 {
			if CheckPrefix(partial, query, depth) != partial.Len() {
				return matches
			}

			depth += partial.Len()

			if depth > len(query) {
				return matches
			}
		}

		if term := n.FindChild(-1); term != nil {
			if leaf := term.AsLeaf(); leaf != nil {
				matches = append(matches, Match[V]{depth, &leaf.Value})
			}
		}

		if depth == len(query) {
			return matches
		}

		child := n.FindChild(int(query[depth]))
		if child == nil {
			return matches
		}

		ref = *child
		depth++
	}

	return matches
}
