// Package prim provides the small building blocks shared by every flat
// container family: a phantom zero-size length-type unit, and generic
// validate/emplace helpers for fixed-size Go arrays of a flat element type.
//
// Go offers no proof obligation that every element of a [N]byte reinterpreted
// as [N]T was constructed through a validating constructor, so ValidateArray
// re-validates every element explicitly, accepting the extra cost for the
// stronger guarantee.
package prim
