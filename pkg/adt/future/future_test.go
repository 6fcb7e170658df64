package future

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/adt/pkg/adt/result"
)

func TestAwait_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	fut := Go(ctx, func(ctx context.Context) (int, error) {
		return 5, nil
	})

	res := fut.Await(ctx)
	if !res.IsOk() || res.UnwrapOrZero() != 5 {
		t.Fatalf("expected Ok(5), got ok=%v err=%v", res.IsOk(), res.Err())
	}
	if fut.Id() == (uuid.UUID{}) {
		t.Fatalf("expected a stamped id")
	}
	if fut.CreatedAt().IsZero() {
		t.Fatalf("expected a stamped creation time")
	}
}

func TestAwait_Error(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	boom := errors.New("boom")
	fut := Go(ctx, func(ctx context.Context) (int, error) {
		return 0, boom
	})

	res := fut.Await(ctx)
	if res.IsOk() || !errors.Is(res.Err(), boom) {
		t.Fatalf("expected Err(boom), got ok=%v err=%v", res.IsOk(), res.Err())
	}
}

func TestAwait_SettlesExactlyOnce(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var calls atomic.Int32
	fut := Go(ctx, func(ctx context.Context) (int, error) {
		calls.Add(1)
		return 1, nil
	})

	first := fut.Await(ctx)
	second := fut.Await(ctx)
	if first != second {
		t.Fatalf("awaiting twice must observe the same settlement")
	}
	if calls.Load() != 1 {
		t.Fatalf("computation must run exactly once, ran %d times", calls.Load())
	}
}

func TestAwait_RecoversPanic(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	fut := Go(ctx, func(ctx context.Context) (int, error) {
		panic("boom")
	})

	res := fut.Await(ctx)
	if res.IsOk() || res.Err() == nil {
		t.Fatalf("expected a failed settlement, got ok=%v", res.IsOk())
	}
}

func TestAwait_ContextExpiry(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	block := make(chan struct{})
	defer close(block)

	fut := Go(context.Background(), func(ctx context.Context) (int, error) {
		<-block
		return 1, nil
	})

	res := fut.Await(ctx)
	if res.IsOk() || !IsCancellation(res.Err()) {
		t.Fatalf("expected cancellation error, got ok=%v err=%v", res.IsOk(), res.Err())
	}
}

func TestAwaitConversions(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	okFut := Settled(result.Ok(5))
	if e := okFut.AwaitEither(ctx); !e.IsRight() || e.MustRight() != 5 {
		t.Fatalf("expected Right(5), got %+v", e)
	}
	if o := okFut.AwaitOption(ctx); o.IsNone() || o.MustSome() != 5 {
		t.Fatalf("expected Some(5), got %+v", o)
	}

	boom := errors.New("boom")
	errFut := Settled(result.Err[int](boom))
	if e := errFut.AwaitEither(ctx); !e.IsLeft() || !errors.Is(e.MustLeft(), boom) {
		t.Fatalf("expected Left(boom), got %+v", e)
	}
	if o := errFut.AwaitOption(ctx); o.IsSome() {
		t.Fatalf("expected None, got %+v", o)
	}
}

func TestIsCancellation(t *testing.T) {
	t.Parallel()

	if !IsCancellation(context.Canceled) || !IsCancellation(context.DeadlineExceeded) {
		t.Fatalf("context errors must classify as cancellation")
	}
	if IsCancellation(errors.New("boom")) || IsCancellation(nil) {
		t.Fatalf("ordinary errors must not classify as cancellation")
	}
}

func TestAll(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	futs := []*Future[int]{
		Go(ctx, func(ctx context.Context) (int, error) { return 1, nil }),
		Go(ctx, func(ctx context.Context) (int, error) { return 2, nil }),
		Go(ctx, func(ctx context.Context) (int, error) { return 3, nil }),
	}

	res := All(ctx, futs)
	vs, err := res.Unpack()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vs) != 3 || vs[0] != 1 || vs[1] != 2 || vs[2] != 3 {
		t.Fatalf("expected [1 2 3] in input order, got %v", vs)
	}
}

func TestAll_FirstErrorWins(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	boom := errors.New("boom")
	futs := []*Future[int]{
		Settled(result.Ok(1)),
		Settled(result.Err[int](boom)),
	}

	res := All(ctx, futs)
	if res.IsOk() || !errors.Is(res.Err(), boom) {
		t.Fatalf("expected Err(boom), got ok=%v err=%v", res.IsOk(), res.Err())
	}
}

func TestTraverse(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	res := Traverse(ctx, []int{1, 2, 3, 4}, 2,
		func(ctx context.Context, i int) (int, error) {
			return i * 10, nil
		})

	vs, err := res.Unpack()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vs) != 4 || vs[0] != 10 || vs[3] != 40 {
		t.Fatalf("expected [10 20 30 40] in input order, got %v", vs)
	}
}

func TestTraverse_NonPositiveLimitPanics(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	defer func() {
		if recover() == nil {
			t.Fatalf("Traverse with a non-positive limit must panic, not block")
		}
	}()

	Traverse(ctx, []int{1}, 0, func(ctx context.Context, i int) (int, error) {
		return i, nil
	})
}

func TestTraverse_Error(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	boom := errors.New("boom")
	res := Traverse(ctx, []int{1, 2, 3}, 1,
		func(ctx context.Context, i int) (int, error) {
			if i == 2 {
				return 0, boom
			}
			return i, nil
		})

	if res.IsOk() || !errors.Is(res.Err(), boom) {
		t.Fatalf("expected Err(boom), got ok=%v err=%v", res.IsOk(), res.Err())
	}
}
