//go:build go1.23

package patricia

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/bastiscode/byte-trie/pkg/arena"
)

func TestTreeAllAndContinuations(t *testing.T) {
	Convey("Given a tree with several overlapping keys", t, func() {
		a := new(arena.Arena)
		tr := new(Tree[int])

		words := map[string]int{"foo": 1, "foobar": 2, "fizz": 3, "bar": 4}
		for w, v := range words {
			tr.Insert(a, []byte(w), v)
		}

		Convey("All visits every stored pair exactly once", func() {
			seen := map[string]int{}
			for k, v := range tr.All() {
				seen[string(k)] = *v
			}

			So(seen, ShouldResemble, words)
		})

		Convey("All can be stopped early", func() {
			n := 0
			for range tr.All() {
				n++
				break
			}

			So(n, ShouldEqual, 1)
		})

		Convey("Continuations only visits keys sharing the given prefix", func() {
			seen := map[string]int{}
			for k, v := range tr.Continuations([]byte("foo")) {
				seen[string(k)] = *v
			}

			So(seen, ShouldResemble, map[string]int{"foo": 1, "foobar": 2})
		})
	})
}

func TestTreeMinimumMaximum(t *testing.T) {
	Convey("Given an empty tree", t, func() {
		tr := new(Tree[int])

		So(tr.Minimum(), ShouldBeNil)
		So(tr.Maximum(), ShouldBeNil)
	})

	Convey("Given a tree with several keys", t, func() {
		a := new(arena.Arena)
		tr := new(Tree[int])

		values := map[string]int{"mango": 1, "apple": 2, "zebra": 3, "banana": 4}
		for w, v := range values {
			tr.Insert(a, []byte(w), v)
		}

		// "apple" is lexicographically smallest, "zebra" the largest.
		So(tr.Minimum().Value.Unwrap(), ShouldEqual, values["apple"])
		So(tr.Maximum().Value.Unwrap(), ShouldEqual, values["zebra"])
	})
}
