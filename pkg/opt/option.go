// Package opt provides optional values.
//
// Every Option is either Some and contains a value, or None, and does not.
// The container operations in this module use Option[T] instead of a
// (T, bool) pair or a nil-able pointer to report absence, since every
// lookup-like operation (Get, Insert's previous value, Delete's removed
// value) needs exactly this shape.
package opt

import "fmt"

// Option holds either Some value of type T, or None.
type Option[T any] struct {
	value *T
}

// Some wraps a value of type T.
func Some[T any](value T) Option[T] { return Option[T]{&value} }

// None returns an empty Option.
func None[T any]() Option[T] { return Option[T]{} }

// Wrap turns a possibly-nil pointer into an Option.
func Wrap[T any](value *T) Option[T] { return Option[T]{value} }

func (o Option[T]) String() string {
	if o.IsSome() {
		return fmt.Sprintf("Some(%v)", o.unwrap())
	}

	return "None"
}

// IsSome returns true if the option holds a value.
func (o Option[T]) IsSome() bool { return o.value != nil }

// IsNone returns true if the option holds no value.
func (o Option[T]) IsNone() bool { return o.value == nil }

// Get returns the held value and whether one is present, for use in an
// `if v, ok := opt.Get(); ok` idiom.
func (o Option[T]) Get() (T, bool) {
	if o.value == nil {
		var zero T
		return zero, false
	}

	return *o.value, true
}

// Expect returns the held value, or panics with msg if there is none.
func (o Option[T]) Expect(msg string) T {
	if o.IsNone() {
		panic(msg)
	}

	return o.unwrap()
}

// Unwrap returns the held value, or panics if there is none.
func (o Option[T]) Unwrap() T {
	return o.Expect("called Option.Unwrap() on a None value")
}

// UnwrapOr returns the held value, or def if there is none.
func (o Option[T]) UnwrapOr(def T) T {
	if o.value == nil {
		return def
	}

	return o.unwrap()
}

// UnwrapOrElse returns the held value, or computes one from f if there is none.
func (o Option[T]) UnwrapOrElse(f func() T) T {
	if o.value == nil {
		return f()
	}

	return o.unwrap()
}

// UnwrapOrDefault returns the held value, or the zero value of T if there is none.
func (o Option[T]) UnwrapOrDefault() (v T) {
	if o.value != nil {
		v = o.unwrap()
	}

	return
}

// Ptr returns the held value as a pointer, or nil if there is none.
//
// The returned pointer aliases the Option's storage and must not outlive it.
func (o Option[T]) Ptr() *T { return o.value }

func (o Option[T]) unwrap() T { return *o.value }
