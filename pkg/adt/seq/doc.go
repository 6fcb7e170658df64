// Package seq bridges ordered sequences and the container types: free
// functions over slices and channels rather than any global augmentation
// of built-in types.
//
// Key operations:
// - First/Last/Find/FindIdx: extract an element, if any, as an Option
// - Head: first element of a channel as an Option
// - All/Any/Map/Filter/Foldl/Sum: plain slice helpers
package seq
