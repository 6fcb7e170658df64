// Package option implements a tagged presence/absence container, an
// explicit alternative to nil-able pointers.
//
// Key operations:
// - Some/None/FromPtr/FromPredicate/Of: construct an Option
// - IsSome/IsNone: exhaustive, mutually exclusive guards
// - Map/FlatMap/Filter/Fold/Tap/Recover: transform or eliminate the value
// - UnwrapOr/UnwrapOrZero/UnwrapOrErr/MustSome: extract the value
// - Zip/Apply/Alt: combine two Options
//
// Absence flows through combinator chains as data; only MustSome converts
// it into a panic, and only on demand.
package option
