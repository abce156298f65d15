// Package flat defines the shared contracts every concrete flat type in
// flatgo is built against: the layout contract (alignment/minimum size/
// actual size), the emplacer contract (in-place construction), the
// field-iterator utility used to walk a composite's fields with correct
// alignment, and the owning wrapper that binds a validated view to the
// lifetime of an arbitrary byte-owning container.
//
// Go has no unsized types, so there is no single generic Validate/Emplace
// entry point: each concrete family (package vec, str, flex, portable)
// exposes its own New/Parse functions operating directly on []byte, where New
// default-initializes the value. What this package supplies is the machinery
// those functions are built out of.
//
// # Layout contract
//
// The portable numerics, prim.Unit and flex.FlexVec implement Layout as
// methods; vec.FlatVec exposes Align and MinSize as package-level functions
// (vec.Align, vec.MinSize) and only Size as a method, and str.FlatString
// has only a Size method. The Layout interface is:
//
//	Align() int     // required alignment of the first byte
//	MinSize() int   // smallest byte length any value of the type can occupy
//	Size() int      // actual byte length of this particular value
//
// A byte slice is layout-compatible with a type iff its start address is
// aligned to Align() and its length is at least MinSize(). Layout
// compatibility is necessary but not sufficient for validity — validation
// additionally walks the bytes to confirm every invariant holds.
//
// # Emplacer contract
//
// An Emplacer[T] is any value that, given an uninitialized byte slice
// layout-compatible with T, either writes a valid T into it or fails with
// a ferr.Error. Struct emplacers carry one emplacer per field and invoke
// them in declared order via a Cursor; tagged-union emplacers write the tag
// first, then dispatch to the payload emplacer.
package flat
