// Package vec implements FlatVec[T], a growable inline vector: a
// length-prefixed header followed by up to capacity sized elements packed
// with no padding between them, where capacity is recovered from the
// backing buffer's total length rather than stored.
//
// Go has neither const generics (for the header's length-integer width)
// nor DST slice-tail structs (for the element payload), so both are
// represented as runtime values instead of type parameters: an Elem[T]
// bundles T's fixed size/align with its parse/emplace functions, and a
// LenCodec bundles the header's width and byte order, resolving a field's
// encoding at a value rather than at a type.
package vec
