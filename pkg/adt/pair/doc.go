// Package pair defines an immutable two-slot product type with independent
// per-side transformation.
//
// Key operations:
// - New/Unpack: build a pair or eject it back into two values
// - First/Second: positional access
// - MapFirst/MapSecond/Bimap: transform one or both slots
// - Swap: exchange the slots
package pair
