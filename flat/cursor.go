package flat

import (
	"unsafe"

	"github.com/arcflux/flatgo/internal/align"
	"github.com/arcflux/flatgo/ferr"
)

// Cursor is a byte-range cursor that a composite's validate/default-init/
// emplace walk advances field by field, computing each field's offset as
// pos ← ceil(pos + size(prev), ALIGN(next)).
//
// It replaces the offset arithmetic a hand-rolled parser would otherwise
// repeat per field (data[4:12], data[12:16], …) with a reusable,
// bounds-checked type. In this module it drives FlatVec's header-then-
// elements scan (vec.New, vec.Parse) and FlexVec's offset-chain scan
// (flex.Parse).
//
// A Cursor is not safe for concurrent use; callers walk a single byte range
// from front to back exactly once.
type Cursor struct {
	buf []byte
	pos int
}

// NewCursor creates a cursor over buf, starting at position 0.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Pos returns the cursor's current byte offset from the start of buf.
func (c *Cursor) Pos() int {
	return c.pos
}

// Len returns the total length of the underlying buffer.
func (c *Cursor) Len() int {
	return len(c.buf)
}

// AlignTo advances the cursor to the next multiple of a, failing with
// InsufficientSize (at the current position) if doing so would run past
// the end of the buffer.
func (c *Cursor) AlignTo(a int) error {
	next := align.CeilMul(c.pos, a)
	if next > len(c.buf) {
		return ferr.New(ferr.InsufficientSize, c.pos)
	}
	c.pos = next

	return nil
}

// Take returns the next n bytes and advances the cursor past them. It fails
// with InsufficientSize (at the cursor's position) if fewer than n bytes
// remain.
func (c *Cursor) Take(n int) ([]byte, error) {
	if c.pos+n > len(c.buf) {
		return nil, ferr.New(ferr.InsufficientSize, c.pos)
	}
	b := c.buf[c.pos : c.pos+n]
	c.pos += n

	return b, nil
}

// Rest returns every remaining byte without advancing the cursor. It is
// used for a composite's terminal (possibly unsized) field, which consumes
// whatever bytes remain.
func (c *Cursor) Rest() []byte {
	return c.buf[c.pos:]
}

// IsAligned reports whether b's first byte sits at an address aligned to
// a (a power of two). Alignment-1 types (portable numerics, bytes) are
// always aligned.
func IsAligned(b []byte, a int) bool {
	if a <= 1 || len(b) == 0 {
		return true
	}

	return align.IsAligned(uintptr(unsafe.Pointer(unsafe.SliceData(b))), a)
}
