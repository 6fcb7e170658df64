package chain

import (
	"context"

	"github.com/ib-77/adt/pkg/adt/result"
)

// Chain wraps a result.Result with context to enable fluent chaining.
type Chain[T any] struct {
	ctx context.Context
	res result.Result[T]
}

// Start creates a new chain from a result.Result.
func Start[T any](ctx context.Context, r result.Result[T]) *Chain[T] {
	return &Chain[T]{ctx: ctx, res: r}
}

// FromValue creates a new chain from a successful value.
func FromValue[T any](ctx context.Context, v T) *Chain[T] {
	return &Chain[T]{ctx: ctx, res: result.Ok(v)}
}

// Result returns the underlying result.Result.
func (c *Chain[T]) Result() result.Result[T] {
	return c.res
}

// Then chains a function that returns result.Result[U]. An already-failed
// chain passes through with its original error; an expired context fails a
// successful chain before the function is consulted.
func Then[T, U any](c *Chain[T], onSuccess func(context.Context, T) result.Result[U]) *Chain[U] {
	return &Chain[U]{
		ctx: c.ctx,
		res: result.FlatMap(c.res, func(v T) result.Result[U] {
			if err := c.ctx.Err(); err != nil {
				return result.Err[U](err)
			}
			return onSuccess(c.ctx, v)
		}),
	}
}

// ThenTry chains a function that returns (U, error) -- like repo calls.
func ThenTry[T, U any](c *Chain[T], try func(context.Context, T) (U, error)) *Chain[U] {
	return Then(c, func(ctx context.Context, v T) result.Result[U] {
		u, err := try(ctx, v)
		if err != nil {
			return result.Err[U](err)
		}
		return result.Ok(u)
	})
}

// Map chains a pure transformation function.
func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	return Then(c, func(ctx context.Context, v T) result.Result[U] {
		return result.Ok(onSuccess(ctx, v))
	})
}

// Ensure performs a side effect on success without changing the result.
func (c *Chain[T]) Ensure(onSuccess func(context.Context, T)) *Chain[T] {
	return &Chain[T]{
		ctx: c.ctx,
		res: c.res.Tap(func(v T) { onSuccess(c.ctx, v) }),
	}
}

// EnsureErr performs a side effect on failure without changing the result.
func (c *Chain[T]) EnsureErr(onFailure func(context.Context, error)) *Chain[T] {
	return &Chain[T]{
		ctx: c.ctx,
		res: c.res.TapErr(func(err error) { onFailure(c.ctx, err) }),
	}
}

// Recover converts a failed chain back into a successful one.
func (c *Chain[T]) Recover(onFailure func(context.Context, error) T) *Chain[T] {
	return &Chain[T]{
		ctx: c.ctx,
		res: c.res.Recover(func(err error) T { return onFailure(c.ctx, err) }),
	}
}

// Finally collapses the chain into a final value via the two handlers.
func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U,
	onFailure func(context.Context, error) U) U {

	return result.Fold(c.res,
		func(err error) U { return onFailure(c.ctx, err) },
		func(v T) U { return onSuccess(c.ctx, v) },
	)
}
