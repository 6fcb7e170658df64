package pair

// Pair is the simplest two-slot product type. Both slots always hold a
// value, so no branching logic is ever required.
type Pair[A, B any] struct {
	first  A
	second B
}

// New is the canonical constructor for a Pair. The fields themselves are
// unexported.
func New[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{first: a, second: b}
}

// First returns the first value in the Pair.
func (p Pair[A, B]) First() A {
	return p.first
}

// Second returns the second value in the Pair.
func (p Pair[A, B]) Second() B {
	return p.second
}

// Unpack ejects the pair's members into the multiple return values that are
// customary in go idiom.
func (p Pair[A, B]) Unpack() (A, B) {
	return p.first, p.second
}

// Swap returns a new Pair with both slots exchanged.
func Swap[A, B any](p Pair[A, B]) Pair[B, A] {
	return New(p.second, p.first)
}

// MapFirst applies f to the first slot only, producing a new Pair.
func MapFirst[A, B, C any](p Pair[A, B], f func(A) C) Pair[C, B] {
	return New(f(p.first), p.second)
}

// MapSecond applies f to the second slot only, producing a new Pair.
func MapSecond[A, B, C any](p Pair[A, B], f func(B) C) Pair[A, C] {
	return New(p.first, f(p.second))
}

// Bimap applies the two functions to the two slots independently.
func Bimap[A, B, C, D any](p Pair[A, B], f func(A) C, g func(B) D) Pair[C, D] {
	return New(f(p.first), g(p.second))
}

// FromFuncs takes two functions that share the same argument type, runs them
// both and produces a Pair of the results.
func FromFuncs[A, B, C any](f func(A) B, g func(A) C) func(A) Pair[B, C] {
	return func(a A) Pair[B, C] {
		return New(f(a), g(a))
	}
}
