// Package chain provides a fluent wrapper around result.Result[T]
// for building synchronous pipelines without branching at each step.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T] or value
// - Then: switch to a new Result[U] via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the successful value (T -> U)
// - Ensure/EnsureErr: run side effects without changing the result
// - Recover: turn a failure back into a success
// - Finally: collapse the chain into a final value via handlers
package chain
