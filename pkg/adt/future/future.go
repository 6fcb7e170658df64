package future

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/ib-77/adt/pkg/adt/either"
	"github.com/ib-77/adt/pkg/adt/option"
	"github.com/ib-77/adt/pkg/adt/result"
)

// Future is an in-flight computation that settles exactly once, on exactly
// one of two paths: a value or an error. Each Future is stamped with an id
// and creation time for tracing.
type Future[T any] struct {
	id        uuid.UUID
	createdAt time.Time

	// res is written exactly once, before done is closed. Await reads it
	// only after done is closed, so no lock is needed.
	res  result.Result[T]
	done chan struct{}
}

// Go launches f in a goroutine and returns a Future settling with its
// outcome. A panic raised by f is recovered into a failed settlement and
// never escapes the goroutine.
func Go[T any](ctx context.Context, f func(ctx context.Context) (T, error)) *Future[T] {
	fut := &Future[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		done:      make(chan struct{}),
	}

	go func() {
		defer close(fut.done)
		defer func() {
			if p := recover(); p != nil {
				if err, ok := p.(error); ok {
					fut.res = result.Err[T](err)
					return
				}
				fut.res = result.Errf[T]("recovered: %v", p)
			}
		}()

		v, err := f(ctx)
		if err != nil {
			fut.res = result.Err[T](err)
			return
		}
		fut.res = result.Ok(v)
	}()

	return fut
}

// Settled returns an already-settled Future holding r. Useful for seeding
// combinators in tests and retries.
func Settled[T any](r result.Result[T]) *Future[T] {
	fut := &Future[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		res:       r,
		done:      make(chan struct{}),
	}
	close(fut.done)

	return fut
}

// Id returns the tracing id stamped at launch.
func (f *Future[T]) Id() uuid.UUID {
	return f.id
}

// CreatedAt returns the launch time (UTC).
func (f *Future[T]) CreatedAt() time.Time {
	return f.createdAt
}

// Await blocks until the Future settles or ctx expires, whichever comes
// first, and returns the outcome as a Result. Context expiry yields
// Err(ctx.Err()) without disturbing the underlying computation.
func (f *Future[T]) Await(ctx context.Context) result.Result[T] {
	select {
	case <-f.done:
		return f.res
	case <-ctx.Done():
		return result.Err[T](ctx.Err())
	}
}

// AwaitEither awaits the Future and returns the outcome as an Either with
// the error on the left.
func (f *Future[T]) AwaitEither(ctx context.Context) either.Either[error, T] {
	return f.Await(ctx).ToEither()
}

// AwaitOption awaits the Future and returns the outcome as an Option,
// discarding the error.
func (f *Future[T]) AwaitOption(ctx context.Context) option.Option[T] {
	return f.Await(ctx).OkToSome()
}

// IsCancellation reports whether an error of a failed settlement came from
// context expiry rather than the computation itself.
func IsCancellation(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled)
}

// All awaits every Future and collects the values in input order. The
// first settlement error wins and cancels the remaining awaits.
func All[T any](ctx context.Context, futs []*Future[T]) result.Result[[]T] {
	g, gctx := errgroup.WithContext(ctx)

	out := make([]T, len(futs))
	for i, fut := range futs {
		g.Go(func() error {
			v, err := fut.Await(gctx).Unpack()
			if err != nil {
				return err
			}

			out[i] = v
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return result.Err[[]T](err)
	}

	return result.Ok(out)
}

// Traverse runs f over every element of xs with at most limit invocations
// in flight, collecting the results in input order. The first error wins
// and cancels the rest. The limit must be positive; Traverse panics
// otherwise, since a zero-weight semaphore would block forever.
func Traverse[A, B any](ctx context.Context, xs []A, limit int64,
	f func(ctx context.Context, a A) (B, error)) result.Result[[]B] {

	if limit < 1 {
		panic(fmt.Sprintf("future: Traverse limit must be positive, got %d", limit))
	}

	sem := semaphore.NewWeighted(limit)
	g, gctx := errgroup.WithContext(ctx)

	out := make([]B, len(xs))
	for i, x := range xs {
		if err := sem.Acquire(gctx, 1); err != nil {
			break
		}

		g.Go(func() error {
			defer sem.Release(1)

			v, err := f(gctx, x)
			if err != nil {
				return err
			}

			out[i] = v
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return result.Err[[]B](err)
	}
	if err := ctx.Err(); err != nil {
		return result.Err[[]B](err)
	}

	return result.Ok(out)
}
