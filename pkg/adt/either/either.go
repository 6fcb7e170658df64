package either

import (
	"fmt"

	"github.com/ib-77/adt/pkg/adt/pair"
)

// Either is a value that is exactly one of two branches. The type itself is
// symmetric; by convention only, Left carries the secondary/error branch
// and Right the primary one.
type Either[L, R any] struct {
	isLeft bool
	left   L
	right  R
}

// Left returns an Either holding the left branch.
func Left[L, R any](l L) Either[L, R] {
	return Either[L, R]{isLeft: true, left: l}
}

// Right returns an Either holding the right branch.
func Right[L, R any](r R) Either[L, R] {
	return Either[L, R]{right: r}
}

// FromPtr builds a Right from a non-nil pointer, or a Left holding l when
// the pointer is nil.
func FromPtr[L, R any](p *R, l L) Either[L, R] {
	if p == nil {
		return Left[L, R](l)
	}

	return Right[L](*p)
}

// FromPredicate builds a Right when the predicate holds for v, otherwise a
// Left holding l.
func FromPredicate[L, R any](v R, pred func(R) bool, l L) Either[L, R] {
	if pred(v) {
		return Right[L](v)
	}

	return Left[L, R](l)
}

// Of invokes f and captures its outcome: a normal return becomes Right, an
// error or a recovered panic is converted through onError into a Left. The
// raised error never reaches the caller.
func Of[L, R any](f func() (R, error), onError func(error) L) (e Either[L, R]) {
	defer func() {
		if p := recover(); p != nil {
			if err, ok := p.(error); ok {
				e = Left[L, R](onError(err))
				return
			}
			e = Left[L, R](onError(fmt.Errorf("recovered: %v", p)))
		}
	}()

	v, err := f()
	if err != nil {
		return Left[L, R](onError(err))
	}

	return Right[L](v)
}

// IsLeft returns true if the Either is left.
func (e Either[L, R]) IsLeft() bool {
	return e.isLeft
}

// IsRight returns true if the Either is right.
func (e Either[L, R]) IsRight() bool {
	return !e.isLeft
}

// MapRight applies f to the right branch, leaving a left untouched.
func MapRight[L, R, O any](e Either[L, R], f func(R) O) Either[L, O] {
	if e.isLeft {
		return Left[L, O](e.left)
	}

	return Right[L](f(e.right))
}

// MapLeft applies f to the left branch, leaving a right untouched.
func MapLeft[L, R, O any](e Either[L, R], f func(L) O) Either[O, R] {
	if e.isLeft {
		return Left[O, R](f(e.left))
	}

	return Right[O](e.right)
}

// Bimap applies exactly one of the two functions depending on the branch.
func Bimap[L, R, L2, R2 any](e Either[L, R], fl func(L) L2,
	fr func(R) R2) Either[L2, R2] {

	if e.isLeft {
		return Left[L2, R2](fl(e.left))
	}

	return Right[L2](fr(e.right))
}

// FlatMap applies a function returning an Either to the right branch and
// flattens one level of nesting. A left passes through unchanged.
func FlatMap[L, R, O any](e Either[L, R], f func(R) Either[L, O]) Either[L, O] {
	if e.isLeft {
		return Left[L, O](e.left)
	}

	return f(e.right)
}

// Filter demotes a Right whose value fails the predicate into a Left
// holding l. The predicate is never invoked on a Left.
func (e Either[L, R]) Filter(pred func(R) bool, l L) Either[L, R] {
	if !e.isLeft && !pred(e.right) {
		return Left[L, R](l)
	}

	return e
}

// Fold collapses the Either into a plain value by invoking exactly one of
// the two handlers.
func Fold[L, R, O any](e Either[L, R], onLeft func(L) O, onRight func(R) O) O {
	if e.isLeft {
		return onLeft(e.left)
	}

	return onRight(e.right)
}

// WhenLeft executes f for its side effect if the Either is left.
func (e Either[L, R]) WhenLeft(f func(L)) {
	if e.isLeft {
		f(e.left)
	}
}

// WhenRight executes f for its side effect if the Either is right.
func (e Either[L, R]) WhenRight(f func(R)) {
	if !e.isLeft {
		f(e.right)
	}
}

// Recover converts a left into a right by applying f to the left value. A
// right passes through unchanged.
func (e Either[L, R]) Recover(f func(L) R) Either[L, R] {
	if e.isLeft {
		return Right[L](f(e.left))
	}

	return e
}

// Swap exchanges the two branches.
func (e Either[L, R]) Swap() Either[R, L] {
	if e.isLeft {
		return Right[R](e.left)
	}

	return Left[R, L](e.right)
}

// RightOr returns the right value or the supplied default.
func (e Either[L, R]) RightOr(def R) R {
	if e.isLeft {
		return def
	}

	return e.right
}

// LeftOr returns the left value or the supplied default.
func (e Either[L, R]) LeftOr(def L) L {
	if e.isLeft {
		return e.left
	}

	return def
}

// MustRight returns the right value or panics. Call only after IsRight has
// been proven.
func (e Either[L, R]) MustRight() R {
	if e.isLeft {
		panic("Either was Left")
	}

	return e.right
}

// MustLeft returns the left value or panics. Call only after IsLeft has
// been proven.
func (e Either[L, R]) MustLeft() L {
	if !e.isLeft {
		panic("Either was Right")
	}

	return e.left
}

// Zip combines two Eithers into one holding a pair of both right values.
// The first left wins: when a is left its value is returned regardless of
// b's branch, and nothing of b is touched.
func Zip[L, A, B any](a Either[L, A], b Either[L, B]) Either[L, pair.Pair[A, B]] {
	if a.isLeft {
		return Left[L, pair.Pair[A, B]](a.left)
	}
	if b.isLeft {
		return Left[L, pair.Pair[A, B]](b.left)
	}

	return Right[L](pair.New(a.right, b.right))
}

// Apply applies a wrapped function to a wrapped argument with the same
// left-to-right short-circuit order as Zip.
func Apply[L, A, B any](ef Either[L, func(A) B], ea Either[L, A]) Either[L, B] {
	if ef.isLeft {
		return Left[L, B](ef.left)
	}
	if ea.isLeft {
		return Left[L, B](ea.left)
	}

	return Right[L](ef.right(ea.right))
}

// Alt chooses the receiver if it is right, otherwise the alternative,
// unchanged.
func (e Either[L, R]) Alt(e2 Either[L, R]) Either[L, R] {
	if !e.isLeft {
		return e
	}

	return e2
}
