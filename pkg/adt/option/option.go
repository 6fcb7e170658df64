package option

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ib-77/adt/pkg/adt/pair"
)

// Option represents a value which may or may not be there. This is very
// often preferable to nil-able pointers.
type Option[T any] struct {
	isSome bool
	some   T
}

// Some trivially injects a value into an optional context.
//
// Some : T -> Option[T].
func Some[T any](v T) Option[T] {
	return Option[T]{isSome: true, some: v}
}

// None trivially constructs an empty option.
//
// None : Option[T].
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr constructs an option from a pointer: nil maps to None, anything
// else to Some of the pointed-to value.
//
// FromPtr : *T -> Option[T].
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}

	return Some(*p)
}

// FromPredicate wraps the value in Some when the predicate holds, otherwise
// returns None.
//
// FromPredicate : (T, T -> bool) -> Option[T].
func FromPredicate[T any](v T, pred func(T) bool) Option[T] {
	if pred(v) {
		return Some(v)
	}

	return None[T]()
}

// Of invokes f and captures its outcome: a normal return becomes Some, an
// error or a recovered panic becomes None. The raised error never reaches
// the caller.
//
// Of : (() -> (T, error)) -> Option[T].
func Of[T any](f func() (T, error)) (o Option[T]) {
	defer func() {
		if r := recover(); r != nil {
			o = None[T]()
		}
	}()

	v, err := f()
	if err != nil {
		return None[T]()
	}

	return Some(v)
}

// IsSome returns true if the Option contains a value.
//
// IsSome : Option[T] -> bool.
func (o Option[T]) IsSome() bool {
	return o.isSome
}

// IsNone returns true if the Option is empty.
//
// IsNone : Option[T] -> bool.
func (o Option[T]) IsNone() bool {
	return !o.isSome
}

// Map applies a pure function to the contained value, rewrapping the
// result. None passes through untouched and f is never invoked for it.
//
// Map : (Option[A], A -> B) -> Option[B].
func Map[A, B any](o Option[A], f func(A) B) Option[B] {
	if o.isSome {
		return Some(f(o.some))
	}

	return None[B]()
}

// FlatMap applies a function that itself returns an Option and flattens one
// level of nesting. None passes through untouched.
//
// FlatMap : (Option[A], A -> Option[B]) -> Option[B].
func FlatMap[A, B any](o Option[A], f func(A) Option[B]) Option[B] {
	if o.isSome {
		return f(o.some)
	}

	return None[B]()
}

// Flatten joins two layers of Options together such that if either layer is
// None, the joined value is None.
//
// Flatten : Option[Option[A]] -> Option[A].
func Flatten[A any](oo Option[Option[A]]) Option[A] {
	if oo.IsNone() {
		return None[A]()
	}

	return oo.some
}

// Filter converts a Some whose value fails the predicate into None. The
// predicate is never invoked on a None.
func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if o.isSome && !pred(o.some) {
		return None[T]()
	}

	return o
}

// Fold is the universal Option eliminator. It collapses the Option into a
// plain value by invoking exactly one of the two continuations.
//
// Fold : (Option[A], () -> B, A -> B) -> B.
func Fold[A, B any](o Option[A], onNone func() B, onSome func(A) B) B {
	if o.isSome {
		return onSome(o.some)
	}

	return onNone()
}

// Tap invokes f for its side effect when the Option is Some, then returns
// the original Option unchanged.
func (o Option[T]) Tap(f func(T)) Option[T] {
	if o.isSome {
		f(o.some)
	}

	return o
}

// TapNone invokes f for its side effect when the Option is None, then
// returns the original Option unchanged.
func (o Option[T]) TapNone(f func()) Option[T] {
	if !o.isSome {
		f()
	}

	return o
}

// Recover converts a None into a Some by evaluating f. A Some passes
// through unchanged and f is never invoked for it.
func (o Option[T]) Recover(f func() T) Option[T] {
	if o.isSome {
		return o
	}

	return Some(f())
}

// UnwrapOr extracts the value from the Option, falling back to the supplied
// default when it is empty.
//
// UnwrapOr : (Option[T], T) -> T.
func (o Option[T]) UnwrapOr(def T) T {
	if o.isSome {
		return o.some
	}

	return def
}

// UnwrapOrFunc extracts the value from the Option, evaluating the supplied
// thunk when it is empty.
func (o Option[T]) UnwrapOrFunc(f func() T) T {
	return Fold(o, f, func(v T) T { return v })
}

// UnwrapOrZero extracts the value from the Option, falling back to the zero
// value of T when it is empty.
func (o Option[T]) UnwrapOrZero() T {
	var zero T
	return o.UnwrapOr(zero)
}

// UnwrapOrErr extracts the value from the Option; when it is empty the
// supplied error is returned instead.
func (o Option[T]) UnwrapOrErr(err error) (T, error) {
	if !o.isSome {
		var zero T
		return zero, err
	}

	return o.some, nil
}

// MustSome extracts the contained value or panics on None. This is the
// deliberate boundary converting absence into raised-error control flow;
// call it only after proving the Option is Some or at call sites willing to
// accept the panic.
func (o Option[T]) MustSome() T {
	if !o.isSome {
		panic(fmt.Sprintf("Option[%T] was None", o.some))
	}

	return o.some
}

// UnwrapOrFail extracts the contained value within a test context, failing
// the test on None.
func (o Option[T]) UnwrapOrFail(t *testing.T) T {
	t.Helper()

	require.True(t, o.isSome, "Option[%T] was None", o.some)

	return o.some
}

// Zip combines two Options into one holding a pair of both values. If
// either side is empty the result is None; b's value is never touched when
// a is already empty.
//
// Zip : (Option[A], Option[B]) -> Option[Pair[A, B]].
func Zip[A, B any](a Option[A], b Option[B]) Option[pair.Pair[A, B]] {
	if !a.isSome {
		return None[pair.Pair[A, B]]()
	}
	if !b.isSome {
		return None[pair.Pair[A, B]]()
	}

	return Some(pair.New(a.some, b.some))
}

// Apply applies an optional function to an optional argument. If the
// function side is empty the result is None before the argument side is
// even considered.
//
// Apply : (Option[A -> B], Option[A]) -> Option[B].
func Apply[A, B any](of Option[func(A) B], oa Option[A]) Option[B] {
	if !of.isSome {
		return None[B]()
	}
	if !oa.isSome {
		return None[B]()
	}

	return Some(of.some(oa.some))
}

// Alt chooses the receiver if it is full, otherwise the alternative. Useful
// in a long chain choosing between many ways of producing a value.
//
// Alt : (Option[T], Option[T]) -> Option[T].
func (o Option[T]) Alt(o2 Option[T]) Option[T] {
	if o.isSome {
		return o
	}

	return o2
}

// ToPtr converts the Option back into the nil-able pointer representation.
func (o Option[T]) ToPtr() *T {
	if !o.isSome {
		return nil
	}

	v := o.some
	return &v
}
