package flat

// Layout is implemented by every flat type's view, sized or unsized.
// Align and MinSize are properties of the type, not of any particular
// instance, but Go has no "static" interface methods, so they are exposed
// as ordinary (receiver-ignoring) methods the same way a concrete type
// would expose any other constant-valued property.
type Layout interface {
	// Align is the required alignment, in bytes, of the value's first byte.
	Align() int
	// MinSize is the smallest byte length any value of the type can occupy.
	MinSize() int
	// Size is the actual byte length of this particular value. For sized
	// types this equals MinSize; for unsized types it is greater or equal.
	Size() int
}

// LayoutCompatible reports whether b could possibly hold a value of l's
// type: its address must be aligned to l.Align() and it must be at least
// l.MinSize() bytes long. This is necessary but not sufficient for
// validity — callers still need to run the type's own validation.
func LayoutCompatible(l Layout, b []byte) bool {
	return IsAligned(b, l.Align()) && len(b) >= l.MinSize()
}
