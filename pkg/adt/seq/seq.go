package seq

import (
	"context"

	"golang.org/x/exp/constraints"

	"github.com/ib-77/adt/pkg/adt/option"
	"github.com/ib-77/adt/pkg/adt/pair"
)

// Pred is a unary predicate over A.
type Pred[A any] func(A) bool

// Number is a type constraint for the numeric types.
type Number interface {
	constraints.Integer | constraints.Float
}

// First extracts the first element of a slice, if any, as an Option.
func First[A any](s []A) option.Option[A] {
	if len(s) == 0 {
		return option.None[A]()
	}

	return option.Some(s[0])
}

// Last extracts the last element of a slice, if any, as an Option.
func Last[A any](s []A) option.Option[A] {
	if len(s) == 0 {
		return option.None[A]()
	}

	return option.Some(s[len(s)-1])
}

// Find returns the first value that passes the predicate, or None.
func Find[A any](pred Pred[A], s []A) option.Option[A] {
	for _, v := range s {
		if pred(v) {
			return option.Some(v)
		}
	}

	return option.None[A]()
}

// FindIdx returns the first value passing the predicate along with its
// index, or None.
func FindIdx[A any](pred Pred[A], s []A) option.Option[pair.Pair[int, A]] {
	for i, v := range s {
		if pred(v) {
			return option.Some(pair.New(i, v))
		}
	}

	return option.None[pair.Pair[int, A]]()
}

// Head receives the first element of a channel, if any, as an Option. A
// closed channel or an expired context yields None.
func Head[A any](ctx context.Context, ch <-chan A) option.Option[A] {
	select {
	case v, ok := <-ch:
		if !ok {
			return option.None[A]()
		}
		return option.Some(v)
	case <-ctx.Done():
		return option.None[A]()
	}
}

// All returns true when the predicate holds for every value in the slice.
func All[A any](pred Pred[A], s []A) bool {
	for _, v := range s {
		if !pred(v) {
			return false
		}
	}

	return true
}

// Any returns true when the predicate holds for at least one value.
func Any[A any](pred Pred[A], s []A) bool {
	for _, v := range s {
		if pred(v) {
			return true
		}
	}

	return false
}

// Map applies f to every member of the slice and collects the results.
func Map[A, B any](f func(A) B, s []A) []B {
	out := make([]B, 0, len(s))
	for _, v := range s {
		out = append(out, f(v))
	}

	return out
}

// Filter keeps the members of the slice that pass the predicate.
func Filter[A any](pred Pred[A], s []A) []A {
	out := make([]A, 0)
	for _, v := range s {
		if pred(v) {
			out = append(out, v)
		}
	}

	return out
}

// Foldl reduces the slice left to right with an accumulator seeded by seed.
func Foldl[A, B any](f func(B, A) B, seed B, s []A) B {
	acc := seed
	for _, v := range s {
		acc = f(acc, v)
	}

	return acc
}

// Sum adds up all the numbers in the slice.
func Sum[N Number](s []N) N {
	return Foldl(func(acc, v N) N { return acc + v }, N(0), s)
}
