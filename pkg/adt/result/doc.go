// Package result implements a success/failure container carrying an error
// payload, the explicit alternative to (T, error) returns inside
// combinator chains.
//
// Key operations:
// - Ok/Err/Errf/FromPtr/FromPredicate/Of: construct a Result
// - IsOk/IsErr: exhaustive, mutually exclusive guards
// - Map/MapErr/Bimap/FlatMap/Filter/Fold/Tap/TapErr/Recover: transform
// - UnwrapOr/Unpack/MustOk: extract, with Unpack as the (T, error) boundary
// - Zip/Apply/Alt/Collect: combine, short-circuiting on the first error
//
// Failure flows through chains as data; only MustOk raises, and only on
// demand. Of is the opposite boundary: it converts raised errors and
// panics into modeled failure and never lets them propagate.
package result
