// Package maybe implements the lightweight, untagged presence/absence
// representation: a generic alias for *T with nil as the single absence
// sentinel, and free functions instead of methods.
//
// It trades the explicit tag of package option for zero wrapper structure.
// The price is in-band signalling: a payload type whose own nil is
// meaningful cannot be represented faithfully, which is a fundamental
// limitation of the representation and not a bug. Prefer option.Option
// whenever that ambiguity can arise.
package maybe
