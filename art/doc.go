// Package art implements the Adaptive Radix Trie (ART) engine of this
// module's byte-keyed associative container: a trie whose inner nodes
// switch between four layouts as their child count grows or shrinks, so
// per-node memory stays proportional to the branching actually observed at
// that node rather than a fixed 256-entry table everywhere.
//
// # Node layouts
//
//   - Node4: up to 4 children, sorted parallel arrays, linear scan.
//   - Node16: up to 16 children, sorted parallel arrays, linear scan.
//   - Node48: up to 48 children, indexed indirectly via a 256-entry
//     byte-to-slot table so the dense child array need only be 48 wide.
//   - Node256: up to 256 children, indexed directly; never grows.
//
// A node promotes to the next layout when an insert would overflow its
// current capacity, and demotes back down once deletions leave its child
// count at or below the smaller layout's retention threshold. Every layout
// also carries a compressed path prefix and, where the key stored at that
// position ends exactly at an inner node, a terminal value reached through
// a reserved zero-length-key child slot rather than a 257th branch.
//
// # Memory management
//
// Nodes and their backing byte slices are obtained through an arena
// ([github.com/bastiscode/byte-trie/pkg/arena]) passed explicitly to every
// mutating call. Each allocation is an ordinary garbage-collected Go value;
// resetting the arena drops the arena's own references to them in one step.
//
// # Usage
//
//	a := new(arena.Arena)
//	defer a.Reset()
//
//	var t art.Tree[int]
//	t.Insert(a, []byte("hello"), 1)
//
//	if v, ok := t.Get([]byte("hello")).Get(); ok {
//	    fmt.Println(v)
//	}
//
//	t.VisitPrefix([]byte("hel"), func(key []byte, value *int) bool {
//	    fmt.Printf("%s -> %d\n", key, *value)
//	    return false
//	})
//
// On Go 1.23+, [Tree.All] and [Tree.Continuations] offer the same
// traversals as range-able iter.Seq2 sequences.
//
// # Thread safety
//
// Tree is not safe for concurrent use. Concurrent reads on an unchanging
// tree are fine; any concurrent mutation requires external synchronization.
package art
