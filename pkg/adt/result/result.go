package result

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ib-77/adt/pkg/adt/either"
	"github.com/ib-77/adt/pkg/adt/option"
	"github.com/ib-77/adt/pkg/adt/pair"
)

// Result represents a computation that either produced a value or failed
// with an error.
type Result[T any] struct {
	ok   T
	err  error
	isOk bool
}

// Ok creates a new Result with a success value.
func Ok[T any](v T) Result[T] {
	return Result[T]{ok: v, isOk: true}
}

// Err creates a new Result with an error.
func Err[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// Errf creates a new Result with a new formatted error.
func Errf[T any](format string, args ...any) Result[T] {
	return Result[T]{err: fmt.Errorf(format, args...)}
}

// FromPtr builds an Ok from a non-nil pointer, or an Err holding err when
// the pointer is nil.
func FromPtr[T any](p *T, err error) Result[T] {
	if p == nil {
		return Err[T](err)
	}

	return Ok(*p)
}

// FromPredicate builds an Ok when the predicate holds for v, otherwise an
// Err holding err.
func FromPredicate[T any](v T, pred func(T) bool, err error) Result[T] {
	if pred(v) {
		return Ok(v)
	}

	return Err[T](err)
}

// Of invokes f and captures its outcome as a Result. A returned error
// becomes Err, and a panic raised by f is recovered and becomes Err as
// well; neither ever propagates to the caller.
func Of[T any](f func() (T, error)) (r Result[T]) {
	defer func() {
		if p := recover(); p != nil {
			if err, ok := p.(error); ok {
				r = Err[T](err)
				return
			}
			r = Errf[T]("recovered: %v", p)
		}
	}()

	v, err := f()
	if err != nil {
		return Err[T](err)
	}

	return Ok(v)
}

// IsOk returns true if the Result is a success value.
func (r Result[T]) IsOk() bool {
	return r.isOk
}

// IsErr returns true if the Result is an error.
func (r Result[T]) IsErr() bool {
	return !r.isOk
}

// Err returns the error if the computation failed, nil otherwise.
func (r Result[T]) Err() error {
	return r.err
}

// Map applies f to the success value and rewraps the output. An Err passes
// through untouched and f is never invoked for it.
func Map[A, B any](r Result[A], f func(A) B) Result[B] {
	if r.isOk {
		return Ok(f(r.ok))
	}

	return Err[B](r.err)
}

// MapErr applies f to the error of a failed Result, leaving a success
// untouched.
func (r Result[T]) MapErr(f func(error) error) Result[T] {
	if r.isOk {
		return r
	}

	return Err[T](f(r.err))
}

// Bimap applies exactly one of the two functions depending on the state.
func Bimap[A, B any](r Result[A], onOk func(A) B,
	onErr func(error) error) Result[B] {

	if r.isOk {
		return Ok(onOk(r.ok))
	}

	return Err[B](onErr(r.err))
}

// FlatMap applies a function returning a Result to the success value and
// flattens one level of nesting. An Err passes through unchanged.
func FlatMap[A, B any](r Result[A], f func(A) Result[B]) Result[B] {
	if r.isOk {
		return f(r.ok)
	}

	return Err[B](r.err)
}

// Flatten joins two layers of Results; the first error encountered wins.
func Flatten[T any](rr Result[Result[T]]) Result[T] {
	if !rr.isOk {
		return Err[T](rr.err)
	}

	return rr.ok
}

// Filter demotes a success whose value fails the predicate into an Err
// holding err. The predicate is never invoked on an Err.
func (r Result[T]) Filter(pred func(T) bool, err error) Result[T] {
	if r.isOk && !pred(r.ok) {
		return Err[T](err)
	}

	return r
}

// Fold collapses the Result into a plain value by invoking exactly one of
// the two handlers.
func Fold[T, O any](r Result[T], onErr func(error) O, onOk func(T) O) O {
	if r.isOk {
		return onOk(r.ok)
	}

	return onErr(r.err)
}

// Tap executes f for its side effect if the Result is a success, returning
// the original Result unchanged.
func (r Result[T]) Tap(f func(T)) Result[T] {
	if r.isOk {
		f(r.ok)
	}

	return r
}

// TapErr executes f for its side effect if the Result is an error,
// returning the original Result unchanged.
func (r Result[T]) TapErr(f func(error)) Result[T] {
	if !r.isOk {
		f(r.err)
	}

	return r
}

// Recover converts a failed Result into a success by applying f to its
// error. A success passes through unchanged.
func (r Result[T]) Recover(f func(error) T) Result[T] {
	if r.isOk {
		return r
	}

	return Ok(f(r.err))
}

// UnwrapOr returns the success value or the supplied default.
func (r Result[T]) UnwrapOr(def T) T {
	if r.isOk {
		return r.ok
	}

	return def
}

// UnwrapOrFunc returns the success value, evaluating the supplied thunk on
// error.
func (r Result[T]) UnwrapOrFunc(f func() T) T {
	if r.isOk {
		return r.ok
	}

	return f()
}

// UnwrapOrZero returns the success value or the zero value of T.
func (r Result[T]) UnwrapOrZero() T {
	var zero T
	return r.UnwrapOr(zero)
}

// Unpack ejects the Result into the (T, error) shape customary in go
// idiom. This is the usual boundary between modeled failure and
// conventional error returns.
func (r Result[T]) Unpack() (T, error) {
	return r.ok, r.err
}

// MustOk returns the success value or panics with the contained error.
// This is the deliberate boundary converting modeled failure back into
// raised-error control flow; use it only at call sites accepting that
// contract.
func (r Result[T]) MustOk() T {
	if !r.isOk {
		panic(r.err)
	}

	return r.ok
}

// UnwrapOrFail returns the success value within a test context, failing the
// test on error.
func (r Result[T]) UnwrapOrFail(t *testing.T) T {
	t.Helper()

	require.NoError(t, r.err, "Result[%T] was Err", r.ok)

	return r.ok
}

// Zip combines two Results into one holding a pair of both success values.
// The first error wins: when a is an Err its error is returned regardless
// of b's state, and nothing of b is touched.
func Zip[A, B any](a Result[A], b Result[B]) Result[pair.Pair[A, B]] {
	if !a.isOk {
		return Err[pair.Pair[A, B]](a.err)
	}
	if !b.isOk {
		return Err[pair.Pair[A, B]](b.err)
	}

	return Ok(pair.New(a.ok, b.ok))
}

// Apply applies a wrapped function to a wrapped argument with the same
// left-to-right short-circuit order as Zip.
func Apply[A, B any](rf Result[func(A) B], ra Result[A]) Result[B] {
	if !rf.isOk {
		return Err[B](rf.err)
	}
	if !ra.isOk {
		return Err[B](ra.err)
	}

	return Ok(rf.ok(ra.ok))
}

// Alt chooses the receiver if it is a success, otherwise the alternative,
// unchanged.
func (r Result[T]) Alt(r2 Result[T]) Result[T] {
	if r.isOk {
		return r
	}

	return r2
}

// Collect gathers a slice of Results into a Result of a slice. All errors
// are joined; the output slice order follows the input.
func Collect[T any](rs []Result[T]) Result[[]T] {
	var errs []error

	out := make([]T, 0, len(rs))
	for _, r := range rs {
		if r.isOk {
			out = append(out, r.ok)
			continue
		}
		errs = append(errs, r.err)
	}

	if len(errs) > 0 {
		return Err[[]T](errors.Join(errs...))
	}

	return Ok(out)
}

// Errors expands a joined error back into its parts. A nil error yields an
// empty slice, an unjoined error a single-element one.
func Errors(err error) []error {
	if err == nil {
		return nil
	}

	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}

	return []error{err}
}

// OkToSome converts the success value into an Option, discarding the error.
func (r Result[T]) OkToSome() option.Option[T] {
	if r.isOk {
		return option.Some(r.ok)
	}

	return option.None[T]()
}

// ToEither converts the Result into an Either with the error on the left.
func (r Result[T]) ToEither() either.Either[error, T] {
	if r.isOk {
		return either.Right[error](r.ok)
	}

	return either.Left[error, T](r.err)
}

// FromEither converts an error-on-the-left Either back into a Result.
func FromEither[T any](e either.Either[error, T]) Result[T] {
	return either.Fold(e, Err[T], Ok[T])
}
