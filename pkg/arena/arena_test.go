package arena

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestArenaNewFree(t *testing.T) {
	Convey("Given a plain Arena", t, func() {
		a := new(Arena)

		Convey("New allocates a distinct value each time, even after Free", func() {
			p1 := New(a, 1)
			So(*p1, ShouldEqual, 1)

			Free(a, p1)

			p2 := New(a, 2)
			So(*p2, ShouldEqual, 2)
			So(p2, ShouldNotEqual, p1)

			// p1 is untouched: a plain Arena never recycles.
			So(*p1, ShouldEqual, 1)
		})

		Convey("Reset drops tracked allocations without panicking", func() {
			New(a, 1)
			New(a, 2)
			a.Reset()
		})
	})
}

func TestRecycledReusesFreedMemory(t *testing.T) {
	Convey("Given a Recycled allocator", t, func() {
		r := new(Recycled)

		Convey("Free followed by New for the same type hands back the same storage", func() {
			p1 := New(r, 1)
			Free(r, p1)

			p2 := New(r, 2)

			So(p2, ShouldEqual, p1)
			So(*p2, ShouldEqual, 2)
		})

		Convey("New allocates fresh memory when the free list is empty", func() {
			p1 := New(r, 1)
			p2 := New(r, 2)

			So(p1, ShouldNotEqual, p2)
		})

		Convey("the free list is kept per concrete type", func() {
			type other struct{ v int }

			pInt := New(r, 7)
			Free(r, pInt)

			pOther := New(r, other{v: 9})
			So(pOther.v, ShouldEqual, 9)

			// The int slot from before is still available for an int request.
			pInt2 := New(r, 8)
			So(pInt2, ShouldEqual, pInt)
		})

		Convey("Reset clears both live and freed allocations", func() {
			p := New(r, 1)
			Free(r, p)
			r.Reset()

			p2 := New(r, 2)
			So(*p2, ShouldEqual, 2)
		})
	})
}
