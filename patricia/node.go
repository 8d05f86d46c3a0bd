// Package patricia implements the PATRICIA engine of this module's
// byte-keyed associative container: a radix-compressed trie where every
// inner node's prefix is the longest byte run shared by everything beneath
// it, and every inner node other than the root either carries a value or
// has at least two children — a single-child inner node with no value of
// its own is always merged into its child instead.
package patricia

import (
	"sort"

	"github.com/bastiscode/byte-trie/internal/debug"
	"github.com/bastiscode/byte-trie/pkg/arena"
	"github.com/bastiscode/byte-trie/pkg/arena/slice"
	"github.com/bastiscode/byte-trie/pkg/opt"
)

// Edge is one labeled branch out of a Node: the first byte past the
// parent's prefix, and the child reached by it.
type Edge[V any] struct {
	Label  byte
	Target *Node[V]
}

// Node is one node of a PATRICIA trie. Its Partial is the byte run shared
// by every key in its subtree beyond what its ancestors already account
// for; Value is set when some stored key ends exactly at this node; Edges
// holds its children, kept sorted by Label for binary search.
type Node[V any] struct {
	Partial slice.Slice[byte]
	Value   opt.Option[V]
	Edges   []Edge[V]
}

// NewNode allocates an empty node with the given prefix.
func NewNode[V any](a arena.Allocator, prefix []byte) *Node[V] {
	return arena.New(a, Node[V]{Partial: slice.FromBytes(a, prefix)})
}

// IsLeaf reports whether n terminates a key and has no children of its
// own — the classic leaf shape of an edge-compressed trie.
func (n *Node[V]) IsLeaf() bool {
	return n.Value.IsSome() && len(n.Edges) == 0
}

func (n *Node[V]) indexOf(label byte) int {
	return sort.Search(len(n.Edges), func(i int) bool { return n.Edges[i].Label >= label })
}

// GetEdge returns the child reached by label, or nil if there is none.
func (n *Node[V]) GetEdge(label byte) *Node[V] {
	i := n.indexOf(label)
	if i < len(n.Edges) && n.Edges[i].Label == label {
		return n.Edges[i].Target
	}

	return nil
}

// AddEdge inserts (or replaces) the child reached by label, keeping Edges
// sorted by Label.
func (n *Node[V]) AddEdge(label byte, target *Node[V]) {
	i := n.indexOf(label)

	if i < len(n.Edges) && n.Edges[i].Label == label {
		n.Edges[i].Target = target

		return
	}

	n.Edges = append(n.Edges, Edge[V]{})
	copy(n.Edges[i+1:], n.Edges[i:])
	n.Edges[i] = Edge[V]{Label: label, Target: target}
}

// DelEdge removes the child reached by label, if any.
func (n *Node[V]) DelEdge(label byte) {
	i := n.indexOf(label)
	if i >= len(n.Edges) || n.Edges[i].Label != label {
		return
	}

	copy(n.Edges[i:], n.Edges[i+1:])
	n.Edges = n.Edges[:len(n.Edges)-1]
}

// Merge collapses n into its single remaining child, concatenating
// prefixes. It must only be called when n carries no value of its own and
// has exactly one edge — the state a deletion can leave a branching node
// in.
func (n *Node[V]) Merge(a arena.Allocator) {
	debug.Assert(len(n.Edges) == 1 && n.Value.IsNone(), "node must have exactly one edge and no value to merge")

	child := n.Edges[0].Target

	combined := append(append([]byte{}, n.Partial.Raw()...), child.Partial.Raw()...)

	n.Partial.Release(a)
	child.Partial.Release(a)

	n.Partial = slice.FromBytes(a, combined)
	n.Value = child.Value
	n.Edges = child.Edges
}

// Minimum returns the node holding the lexicographically smallest stored
// key in n's subtree, or nil if the subtree holds no value at all.
func (n *Node[V]) Minimum() *Node[V] {
	if n.Value.IsSome() {
		return n
	}

	if len(n.Edges) == 0 {
		return nil
	}

	return n.Edges[0].Target.Minimum()
}

// Maximum returns the node holding the lexicographically largest stored key
// in n's subtree, or nil if the subtree holds no value at all.
func (n *Node[V]) Maximum() *Node[V] {
	if len(n.Edges) > 0 {
		if m := n.Edges[len(n.Edges)-1].Target.Maximum(); m != nil {
			return m
		}
	}

	if n.Value.IsSome() {
		return n
	}

	return nil
}
