// Package either implements a symmetric tagged two-branch sum type.
//
// Left conventionally denotes the secondary/error branch and Right the
// primary one, but this is documentation only; nothing in the type enforces
// it and every operation has a mirror for the other side.
//
// Key operations:
// - Left/Right/FromPtr/FromPredicate: construct an Either
// - IsLeft/IsRight: exhaustive, mutually exclusive guards
// - MapLeft/MapRight/Bimap/FlatMap/Fold: transform or eliminate
// - Zip/Apply/Alt: combine, short-circuiting on the first Left
package either
