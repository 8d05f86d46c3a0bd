package patricia

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/bastiscode/byte-trie/pkg/arena"
	"github.com/bastiscode/byte-trie/pkg/opt"
)

func TestNodeEdges(t *testing.T) {
	Convey("Given an empty node", t, func() {
		a := new(arena.Arena)
		n := NewNode[int](a, nil)

		So(n.IsLeaf(), ShouldBeFalse)
		So(n.GetEdge('a'), ShouldBeNil)

		Convey("When adding edges out of order", func() {
			c := NewNode[int](a, []byte("c"))
			A := NewNode[int](a, []byte("a"))
			b := NewNode[int](a, []byte("b"))

			n.AddEdge('c', c)
			n.AddEdge('a', A)
			n.AddEdge('b', b)

			Convey("Then Edges is kept sorted by Label", func() {
				So(len(n.Edges), ShouldEqual, 3)
				So(n.Edges[0].Label, ShouldEqual, byte('a'))
				So(n.Edges[1].Label, ShouldEqual, byte('b'))
				So(n.Edges[2].Label, ShouldEqual, byte('c'))
			})

			Convey("Then GetEdge finds each by label", func() {
				So(n.GetEdge('a'), ShouldEqual, A)
				So(n.GetEdge('z'), ShouldBeNil)
			})

			Convey("Then AddEdge with an existing label replaces the target", func() {
				other := NewNode[int](a, []byte("a2"))
				n.AddEdge('a', other)

				So(len(n.Edges), ShouldEqual, 3)
				So(n.GetEdge('a'), ShouldEqual, other)
			})

			Convey("Then DelEdge removes exactly one edge", func() {
				n.DelEdge('b')

				So(len(n.Edges), ShouldEqual, 2)
				So(n.GetEdge('b'), ShouldBeNil)
				So(n.GetEdge('a'), ShouldNotBeNil)
				So(n.GetEdge('c'), ShouldNotBeNil)
			})
		})
	})
}

func TestNodeMerge(t *testing.T) {
	Convey("Given a valueless node with exactly one edge", t, func() {
		a := new(arena.Arena)
		n := NewNode[int](a, []byte("fo"))
		child := NewNode[int](a, []byte("obar"))
		child.Value = opt.Some(1)
		n.AddEdge('o', child)

		Convey("When merged", func() {
			n.Merge(a)

			Convey("Then the prefixes are concatenated and the child's value/edges adopted", func() {
				So(n.Partial.Raw(), ShouldResemble, []byte("foobar"))
				So(n.Value.IsSome(), ShouldBeTrue)
				So(n.Value.Unwrap(), ShouldEqual, 1)
				So(len(n.Edges), ShouldEqual, 0)
			})
		})
	})
}

func TestInsertSplitsEdges(t *testing.T) {
	Convey("Given a trie with one stored key", t, func() {
		a := new(arena.Arena)
		root := NewNode[int](a, nil)

		So(Insert(a, root, []byte("hello"), 1, true).IsNone(), ShouldBeTrue)

		Convey("When inserting a key sharing a prefix", func() {
			old := Insert(a, root, []byte("help"), 2, true)
			So(old.IsNone(), ShouldBeTrue)

			Convey("Then the trie splits at the common prefix", func() {
				So(len(root.Edges), ShouldEqual, 1)

				split := root.Edges[0].Target
				So(split.Partial.Raw(), ShouldResemble, []byte("hel"))
				So(len(split.Edges), ShouldEqual, 2)

				So(Search(root, []byte("hello")), ShouldNotBeNil)
				So(*Search(root, []byte("hello")), ShouldEqual, 1)
				So(*Search(root, []byte("help")), ShouldEqual, 2)
			})
		})

		Convey("When inserting a key that is a prefix of the stored key", func() {
			Insert(a, root, []byte("hel"), 3, true)

			Convey("Then the split node itself carries the shorter key's value", func() {
				So(*Search(root, []byte("hel")), ShouldEqual, 3)
				So(*Search(root, []byte("hello")), ShouldEqual, 1)
			})
		})

		Convey("When re-inserting the same key with replace=false", func() {
			result := Insert(a, root, []byte("hello"), 999, false)

			Convey("Then the old value is kept and returned", func() {
				So(result.IsSome(), ShouldBeTrue)
				So(result.Unwrap(), ShouldEqual, 1)
				So(*Search(root, []byte("hello")), ShouldEqual, 1)
			})
		})
	})
}

func TestDeleteCollapsesChain(t *testing.T) {
	Convey("Given a trie with a branching node created by three keys", t, func() {
		a := new(arena.Arena)
		root := NewNode[int](a, nil)

		Insert(a, root, []byte("hello"), 1, true)
		Insert(a, root, []byte("hell"), 2, true)
		Insert(a, root, []byte("help"), 3, true)

		Convey("When deleting a leaf whose parent node still carries a value", func() {
			removed := Delete(a, root, []byte("hello"))
			So(removed.IsSome(), ShouldBeTrue)
			So(removed.Unwrap(), ShouldEqual, 1)

			Convey("Then the emptied leaf is detached and the other keys stay reachable", func() {
				So(Search(root, []byte("hello")), ShouldBeNil)
				So(*Search(root, []byte("hell")), ShouldEqual, 2)
				So(*Search(root, []byte("help")), ShouldEqual, 3)

				So(len(root.Edges), ShouldEqual, 1)
			})
		})

		Convey("When deleting a key that isn't stored", func() {
			removed := Delete(a, root, []byte("nope"))
			So(removed.IsNone(), ShouldBeTrue)
		})
	})
}

func TestPathMatches(t *testing.T) {
	Convey("Given a trie with several overlapping keys", t, func() {
		a := new(arena.Arena)
		root := NewNode[int](a, nil)

		Insert(a, root, []byte(""), 0, true)
		Insert(a, root, []byte("hell"), 1, true)
		Insert(a, root, []byte("hello"), 2, true)
		Insert(a, root, []byte("help"), 3, true)

		Convey("When matching against a longer query", func() {
			matches := PathMatches(root, []byte("helloworld"))

			Convey("Then every stored prefix is returned in increasing length order", func() {
				So(len(matches), ShouldEqual, 3)
				So(matches[0].N, ShouldEqual, 0)
				So(matches[1].N, ShouldEqual, 4)
				So(matches[2].N, ShouldEqual, 5)
				So(*matches[0].Value, ShouldEqual, 0)
				So(*matches[1].Value, ShouldEqual, 1)
				So(*matches[2].Value, ShouldEqual, 2)
			})
		})

		Convey("When the query diverges before any edge", func() {
			matches := PathMatches(root, []byte("xyz"))

			Convey("Then only the root's own value (if any) is returned", func() {
				So(len(matches), ShouldEqual, 1)
				So(matches[0].N, ShouldEqual, 0)
			})
		})
	})
}
