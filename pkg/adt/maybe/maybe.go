package maybe

import (
	"github.com/ib-77/adt/pkg/adt/option"
	"github.com/ib-77/adt/pkg/adt/pair"
)

// Maybe is the untagged presence/absence representation: the value itself
// behind a pointer, with nil as the absence sentinel. There is no wrapper
// allocation beyond the pointee and no tag to inspect.
//
// The representation is inherently lossy when T is itself a pointer-like
// type whose nil is a legitimate value; use option.Option there instead.
// Callers must also not retain the returned pointer across transformations
// if they care about aliasing, since Just necessarily heap-allocates its
// argument.
type Maybe[T any] = *T

// Just wraps a value into the present state.
func Just[T any](v T) Maybe[T] {
	return &v
}

// Nothing constructs the absent state.
func Nothing[T any]() Maybe[T] {
	return nil
}

// FromPtr is the identity under this representation; it exists so every
// container package carries the same constructor surface.
func FromPtr[T any](p *T) Maybe[T] {
	return p
}

// FromPredicate keeps the value when the predicate holds, otherwise
// Nothing.
func FromPredicate[T any](v T, pred func(T) bool) Maybe[T] {
	if pred(v) {
		return Just(v)
	}

	return nil
}

// Of invokes f and captures its outcome: a normal return becomes Just, an
// error or a recovered panic becomes Nothing. The raised error never
// reaches the caller.
func Of[T any](f func() (T, error)) (m Maybe[T]) {
	defer func() {
		if r := recover(); r != nil {
			m = nil
		}
	}()

	v, err := f()
	if err != nil {
		return nil
	}

	return Just(v)
}

// IsJust returns true if the Maybe holds a value.
func IsJust[T any](m Maybe[T]) bool {
	return m != nil
}

// IsNothing returns true if the Maybe is absent.
func IsNothing[T any](m Maybe[T]) bool {
	return m == nil
}

// Map applies f to the present value; Nothing passes through untouched and
// f is never invoked for it.
func Map[A, B any](m Maybe[A], f func(A) B) Maybe[B] {
	if m == nil {
		return nil
	}

	return Just(f(*m))
}

// FlatMap applies a function that itself returns a Maybe.
func FlatMap[A, B any](m Maybe[A], f func(A) Maybe[B]) Maybe[B] {
	if m == nil {
		return nil
	}

	return f(*m)
}

// Filter demotes a present value failing the predicate into Nothing. The
// predicate is never invoked on Nothing.
func Filter[T any](m Maybe[T], pred func(T) bool) Maybe[T] {
	if m != nil && !pred(*m) {
		return nil
	}

	return m
}

// Fold collapses the Maybe into a plain value by invoking exactly one of
// the two continuations.
func Fold[A, B any](m Maybe[A], onNothing func() B, onJust func(A) B) B {
	if m == nil {
		return onNothing()
	}

	return onJust(*m)
}

// Tap invokes f for its side effect on a present value and returns the
// original Maybe unchanged.
func Tap[T any](m Maybe[T], f func(T)) Maybe[T] {
	if m != nil {
		f(*m)
	}

	return m
}

// UnwrapOr returns the present value or the supplied default.
func UnwrapOr[T any](m Maybe[T], def T) T {
	if m == nil {
		return def
	}

	return *m
}

// UnwrapOrZero returns the present value or the zero value of T.
func UnwrapOrZero[T any](m Maybe[T]) T {
	if m == nil {
		var zero T
		return zero
	}

	return *m
}

// MustJust returns the present value or panics. Call only after IsJust has
// been proven.
func MustJust[T any](m Maybe[T]) T {
	if m == nil {
		panic("Maybe was Nothing")
	}

	return *m
}

// Zip combines two Maybes into one holding a pair of both values; absence
// on either side wins, checked left to right.
func Zip[A, B any](a Maybe[A], b Maybe[B]) Maybe[pair.Pair[A, B]] {
	if a == nil || b == nil {
		return nil
	}

	return Just(pair.New(*a, *b))
}

// Alt chooses a if it is present, otherwise b.
func Alt[T any](a, b Maybe[T]) Maybe[T] {
	if a != nil {
		return a
	}

	return b
}

// ToOption converts the untagged representation into the tagged one.
func ToOption[T any](m Maybe[T]) option.Option[T] {
	return option.FromPtr(m)
}

// FromOption converts a tagged Option into the untagged representation.
func FromOption[T any](o option.Option[T]) Maybe[T] {
	return o.ToPtr()
}
