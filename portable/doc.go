// Package portable implements fixed-width, alignment-1 integers, floats,
// and booleans whose byte order is fixed at the type level rather than
// following the host's native order.
//
// Go has no const generics, so this package parameterizes each numeric type
// over a zero-size marker type satisfying Order — BE or LE — which
// delegates to endian.EndianEngine (package endian) for the actual byte
// swap. A Uint32[BE] and a Uint32[LE] are distinct types; there is no way
// to construct one from bytes meant for the other.
package portable
