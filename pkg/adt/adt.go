package adt

import (
	"github.com/ib-77/adt/pkg/adt/either"
	"github.com/ib-77/adt/pkg/adt/maybe"
	"github.com/ib-77/adt/pkg/adt/option"
	"github.com/ib-77/adt/pkg/adt/pair"
	"github.com/ib-77/adt/pkg/adt/result"
)

// Option is an alias for option.Option.
type Option[T any] = option.Option[T]

// Either is an alias for either.Either.
type Either[L, R any] = either.Either[L, R]

// Result is an alias for result.Result.
type Result[T any] = result.Result[T]

// Maybe is an alias for maybe.Maybe.
type Maybe[T any] = maybe.Maybe[T]

// Pair is an alias for pair.Pair.
type Pair[A, B any] = pair.Pair[A, B]

// Some wraps a value into a present Option.
func Some[T any](v T) Option[T] { return option.Some(v) }

// None constructs an empty Option.
func None[T any]() Option[T] { return option.None[T]() }

// Left returns an Either holding the left branch.
func Left[L, R any](l L) Either[L, R] { return either.Left[L, R](l) }

// Right returns an Either holding the right branch.
func Right[L, R any](r R) Either[L, R] { return either.Right[L, R](r) }

// Ok creates a successful Result.
func Ok[T any](v T) Result[T] { return result.Ok(v) }

// Err creates a failed Result.
func Err[T any](err error) Result[T] { return result.Err[T](err) }

// Just wraps a value into a present Maybe.
func Just[T any](v T) Maybe[T] { return maybe.Just(v) }

// Nothing constructs an absent Maybe.
func Nothing[T any]() Maybe[T] { return maybe.Nothing[T]() }

// NewPair constructs a two-slot product.
func NewPair[A, B any](a A, b B) Pair[A, B] { return pair.New(a, b) }
