// Package adt bundles the container types into a single import surface:
// type aliases and constructor wrappers for Option, Either, Result, Maybe
// and Pair.
//
// Each type also lives in its own subpackage with the full operation set;
// import those directly when only one container is needed.
package adt
