package patricia

import "github.com/bastiscode/byte-trie/pkg/trie"

// Match is one hit produced by PathMatches: a stored key of length N that
// is a prefix of the query, together with a pointer to its bound value.
type Match[V any] = trie.Match[V]

// PathMatches walks the trie rooted at n along query, collecting one Match
// for every stored key that is a prefix of query (including query itself),
// in strictly increasing N order. Descent stops at the first byte
// mismatch, so no candidate key past that point is visited.
func PathMatches[V any](n *Node[V], query []byte) []Match[V] {
	var matches []Match[V]

	depth := 0

	for {
		if v := n.Value.Ptr(); v != nil {
			matches = append(matches, Match[V]{depth, v})
		}

		if depth == len(query) {
			return matches
		}

		child := n.GetEdge(query[depth])
		if child == nil {
			return matches
		}

		prefix := child.Partial.Raw()
		avail := len(query) - depth
		common := min(avail, len(prefix))

		for i := 0; i < common; i++ {
			if prefix[i] != query[depth+i] {
				return matches
			}
		}

		if common < len(prefix) {
			return matches
		}

		depth += len(prefix)
		n = child
	}
}
