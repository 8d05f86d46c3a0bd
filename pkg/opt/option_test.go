package opt

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestOption(t *testing.T) {
	Convey("Given a None option", t, func() {
		o := None[int]()

		So(o.IsSome(), ShouldBeFalse)
		So(o.IsNone(), ShouldBeTrue)
		So(o.Ptr(), ShouldBeNil)
		So(o.String(), ShouldEqual, "None")

		Convey("Get reports absence", func() {
			v, ok := o.Get()
			So(ok, ShouldBeFalse)
			So(v, ShouldEqual, 0)
		})

		Convey("Unwrap panics", func() {
			So(func() { o.Unwrap() }, ShouldPanic)
		})

		Convey("Expect panics with the given message", func() {
			So(func() { o.Expect("boom") }, ShouldPanicWith, "boom")
		})

		Convey("UnwrapOr returns the fallback", func() {
			So(o.UnwrapOr(7), ShouldEqual, 7)
		})

		Convey("UnwrapOrElse calls the fallback function", func() {
			called := false
			So(o.UnwrapOrElse(func() int { called = true; return 9 }), ShouldEqual, 9)
			So(called, ShouldBeTrue)
		})

		Convey("UnwrapOrDefault returns the zero value", func() {
			So(o.UnwrapOrDefault(), ShouldEqual, 0)
		})
	})

	Convey("Given a Some option", t, func() {
		o := Some(42)

		So(o.IsSome(), ShouldBeTrue)
		So(o.IsNone(), ShouldBeFalse)
		So(o.String(), ShouldEqual, "Some(42)")

		Convey("Get reports the value", func() {
			v, ok := o.Get()
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, 42)
		})

		Convey("Unwrap, Expect and UnwrapOr* all return the held value", func() {
			So(o.Unwrap(), ShouldEqual, 42)
			So(o.Expect("unused"), ShouldEqual, 42)
			So(o.UnwrapOr(0), ShouldEqual, 42)
			So(o.UnwrapOrElse(func() int { return 0 }), ShouldEqual, 42)
			So(o.UnwrapOrDefault(), ShouldEqual, 42)
		})

		Convey("Ptr aliases the option's own storage", func() {
			p := o.Ptr()
			So(p, ShouldNotBeNil)
			So(*p, ShouldEqual, 42)

			*p = 100
			So(o.Unwrap(), ShouldEqual, 100)
		})
	})

	Convey("Wrap turns a pointer into an option", t, func() {
		var nilPtr *int
		So(Wrap(nilPtr).IsNone(), ShouldBeTrue)

		v := 5
		wrapped := Wrap(&v)
		So(wrapped.IsSome(), ShouldBeTrue)
		So(wrapped.Ptr(), ShouldEqual, &v)
	})
}
