// Package future converts in-flight asynchronous computations into the
// container types. A Future settles exactly once; awaiting it yields a
// Result, Either, or Option depending on how much of the failure the
// caller wants to keep.
//
// Key operations:
// - Go: launch a computation; panics are recovered into failed settlements
// - Await/AwaitEither/AwaitOption: block until settled or ctx expires
// - All: await many futures, first error wins
// - Traverse: run a function over a slice with bounded parallelism
//
// The package adds no retries, timeouts, or cancellation of its own; the
// caller's context carries all of that, and IsCancellation distinguishes
// its expiry from computation failure.
package future
