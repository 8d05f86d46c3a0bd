package node

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/bastiscode/byte-trie/pkg/arena"
	"github.com/bastiscode/byte-trie/pkg/arena/slice"
)

func leafFor(a arena.Allocator, key string) *Leaf[int] {
	return arena.New(a, Leaf[int]{Key: slice.FromBytes(a, []byte(key))})
}

func TestNode4(t *testing.T) {
	Convey("Given a Node4", t, func() {
		a := &arena.Arena{}
		n := arena.New(a, Node4[int]{})

		So(n.Type(), ShouldEqual, TypeNode4)
		So(n.Full(), ShouldBeFalse)
		So(n.NumChildren, ShouldEqual, 0)

		Convey("When adding children out of order", func() {
			n.AddChild('c', leafFor(a, "c"))
			n.AddChild('a', leafFor(a, "a"))
			n.AddChild('b', leafFor(a, "b"))

			So(n.NumChildren, ShouldEqual, 3)
			So(n.Keys[:3], ShouldResemble, []byte{'a', 'b', 'c'})

			Convey("Then FindChild locates each by byte", func() {
				So(n.FindChild('a'), ShouldNotBeNil)
				So(n.FindChild('z'), ShouldBeNil)
			})

			Convey("Then the node grows to a Node16 once full", func() {
				n.AddChild('d', leafFor(a, "d"))
				So(n.Full(), ShouldBeTrue)

				grown := n.Grow(a)
				So(grown.Type(), ShouldEqual, TypeNode16)
				So(grown.(*Node16[int]).NumChildren, ShouldEqual, 4)

				for _, b := range []byte{'a', 'b', 'c', 'd'} {
					So(grown.FindChild(int(b)), ShouldNotBeNil)
				}
			})

			Convey("Then RemoveChild removes exactly one child", func() {
				ref := n.FindChild('b')
				n.RemoveChild('b', ref)

				So(n.NumChildren, ShouldEqual, 2)
				So(n.FindChild('b'), ShouldBeNil)
				So(n.FindChild('a'), ShouldNotBeNil)
				So(n.FindChild('c'), ShouldNotBeNil)
			})
		})

		Convey("When the node has a terminal value and one child", func() {
			n.AddChild(-1, leafFor(a, ""))
			n.AddChild('a', leafFor(a, "a"))

			Convey("Then Shrink does not collapse it", func() {
				So(n.Shrink(a), ShouldEqual, n)
			})
		})

		Convey("When the node has exactly one child and no terminal value", func() {
			n.AddChild('a', leafFor(a, "a"))

			Convey("Then Shrink collapses the node into its child", func() {
				shrunk := n.Shrink(a)
				So(shrunk.Type(), ShouldEqual, TypeLeaf)
			})
		})
	})
}

func TestNode16GrowAndShrink(t *testing.T) {
	Convey("Given a Node16 filled to capacity", t, func() {
		a := &arena.Arena{}
		n := arena.New(a, Node16[int]{})

		for i := 0; i < Node16Max; i++ {
			n.AddChild(i, leafFor(a, string(rune(i))))
		}

		So(n.Full(), ShouldBeTrue)

		Convey("Then it grows to a Node48 preserving every child", func() {
			grown := n.Grow(a)
			So(grown.Type(), ShouldEqual, TypeNode48)

			for i := 0; i < Node16Max; i++ {
				So(grown.FindChild(i), ShouldNotBeNil)
			}
		})

		Convey("Then removing children below the retention threshold shrinks it to a Node4", func() {
			for i := Node16Max - 1; i >= Node16Min; i-- {
				ref := n.FindChild(i)
				n.RemoveChild(i, ref)
			}

			So(n.NumChildren, ShouldEqual, Node16Min)

			shrunk := n.Shrink(a)
			So(shrunk.Type(), ShouldEqual, TypeNode4)
			So(shrunk.(*Node4[int]).NumChildren, ShouldEqual, Node16Min)
		})
	})
}

func TestNode48GrowAndShrink(t *testing.T) {
	Convey("Given a Node48 filled to capacity", t, func() {
		a := &arena.Arena{}
		n := arena.New(a, Node48[int]{})

		for i := 0; i < Node48Max; i++ {
			n.AddChild(i, leafFor(a, string(rune(i))))
		}

		So(n.Full(), ShouldBeTrue)

		Convey("Then it grows to a Node256 preserving every child", func() {
			grown := n.Grow(a)
			So(grown.Type(), ShouldEqual, TypeNode256)

			for i := 0; i < Node48Max; i++ {
				So(grown.FindChild(i), ShouldNotBeNil)
			}
		})

		Convey("Then RemoveChild swap-removes and keeps the rest reachable", func() {
			victim := n.FindChild(10)
			n.RemoveChild(10, victim)

			So(n.NumChildren, ShouldEqual, Node48Max-1)
			So(n.FindChild(10), ShouldBeNil)

			for i := 0; i < Node48Max; i++ {
				if i == 10 {
					continue
				}

				So(n.FindChild(i), ShouldNotBeNil)
			}
		})

		Convey("Then removing children below the retention threshold shrinks it to a Node16", func() {
			for i := Node48Max - 1; i >= Node48Min; i-- {
				ref := n.FindChild(i)
				n.RemoveChild(i, ref)
			}

			So(n.NumChildren, ShouldEqual, Node48Min)

			shrunk := n.Shrink(a)
			So(shrunk.Type(), ShouldEqual, TypeNode16)
		})
	})
}

func TestNode256(t *testing.T) {
	Convey("Given a Node256", t, func() {
		a := &arena.Arena{}
		n := arena.New(a, Node256[int]{})

		Convey("It never grows", func() {
			So(func() { n.Grow(a) }, ShouldPanic)
		})

		Convey("When filled just past the Node48 retention threshold and then drained by one", func() {
			for i := 0; i < Node256Min+1; i++ {
				n.AddChild(i, leafFor(a, string(rune(i))))
			}

			ref := n.FindChild(Node256Min)
			n.RemoveChild(Node256Min, ref)

			So(n.NumChildren, ShouldEqual, Node256Min)

			shrunk := n.Shrink(a)
			So(shrunk.Type(), ShouldEqual, TypeNode48)
		})
	})
}
