package vec

import (
	"github.com/arcflux/flatgo/ferr"
	"github.com/arcflux/flatgo/flat"
	"github.com/arcflux/flatgo/internal/align"
)

// Elem describes T's fixed layout and its parse/emplace functions, standing
// in for the static T: Flat + Sized bound flatty places on FlatVec's
// element type.
type Elem[T any] struct {
	Align   int
	Size    int
	Parse   func([]byte) (*T, error)
	Emplace func(dst []byte, v T) error
}

// FlatVec is an inline growable vector. Its backing bytes are: a length
// header (lc.Size() bytes, or more if T's alignment demands padding),
// followed by capacity elements of elem.Size bytes each, where
// capacity = (len(buf) - dataOffset) / elem.Size. Only the first Len()
// elements are considered part of the active region; it never allocates or
// shrinks the backing buffer — push/pop only move the header's count.
type FlatVec[T any] struct {
	buf  []byte
	elem Elem[T]
	lc   LenCodec
}

func dataOffset[T any](elem Elem[T], lc LenCodec) int {
	return align.Max(lc.Size(), elem.Align)
}

// Align is max(align(L), align(T)).
func Align[T any](elem Elem[T], lc LenCodec) int {
	return align.Max(1, elem.Align) // LenCodec byte layouts are always align-1 themselves
}

// MinSize is the size of an empty vector: just the (possibly padded) header.
func MinSize[T any](elem Elem[T], lc LenCodec) int {
	return dataOffset(elem, lc)
}

// New default-initializes a FlatVec over buf: it writes a zero length into
// the header and otherwise leaves the body untouched. buf's length must be
// at least the header size; it governs the vector's capacity for the
// lifetime of the returned value.
func New[T any](elem Elem[T], lc LenCodec, buf []byte) (*FlatVec[T], error) {
	off := dataOffset(elem, lc)
	cur := flat.NewCursor(buf)
	hdr, err := cur.Take(off)
	if err != nil {
		return nil, err
	}
	lc.Put(hdr[:lc.Size()], 0)

	return &FlatVec[T]{buf: buf, elem: elem, lc: lc}, nil
}

// Parse validates buf as a FlatVec: the header must fit, the recorded
// length must not exceed the buffer-derived capacity, and every active
// element must itself validate. It walks the header and every active
// element through a Cursor so the offset arithmetic is bounds-checked once,
// in one place, instead of at each element by hand.
func Parse[T any](elem Elem[T], lc LenCodec, buf []byte) (*FlatVec[T], error) {
	off := dataOffset(elem, lc)
	cur := flat.NewCursor(buf)
	hdr, err := cur.Take(off)
	if err != nil {
		return nil, err
	}

	n := lc.Get(hdr[:lc.Size()])
	cap := (len(buf) - off) / elem.Size
	if n > cap {
		return nil, ferr.New(ferr.InvalidData, off)
	}

	for range n {
		start := cur.Pos()
		b, err := cur.Take(elem.Size)
		if err != nil {
			return nil, err
		}
		if _, err := elem.Parse(b); err != nil {
			if fe, ok := err.(ferr.Error); ok {
				return nil, fe.Offset(start)
			}

			return nil, err
		}
	}

	return &FlatVec[T]{buf: buf, elem: elem, lc: lc}, nil
}

// Len returns the number of active elements.
func (v *FlatVec[T]) Len() int { return v.lc.Get(v.buf[:v.lc.Size()]) }

// Capacity returns the maximum number of elements the backing buffer holds.
func (v *FlatVec[T]) Capacity() int {
	off := dataOffset(v.elem, v.lc)
	return (len(v.buf) - off) / v.elem.Size
}

// Remaining is Capacity minus Len.
func (v *FlatVec[T]) Remaining() int { return v.Capacity() - v.Len() }

// Size is the active byte size: the header plus Len elements, excluding any
// unused capacity — matching flatty's FlatBase::size, which shrinks with pop.
func (v *FlatVec[T]) Size() int {
	return dataOffset(v.elem, v.lc) + v.elem.Size*v.Len()
}

func (v *FlatVec[T]) setLen(n int) { v.lc.Put(v.buf[:v.lc.Size()], n) }

// At returns the i'th active element, parsing it from the backing bytes.
func (v *FlatVec[T]) At(i int) (*T, error) {
	if i < 0 || i >= v.Len() {
		return nil, ferr.New(ferr.InsufficientSize, 0)
	}
	off := dataOffset(v.elem, v.lc) + i*v.elem.Size

	return v.elem.Parse(v.buf[off : off+v.elem.Size])
}

// AsSlice parses and returns every active element as a plain Go slice.
func (v *FlatVec[T]) AsSlice() ([]T, error) {
	n := v.Len()
	out := make([]T, n)
	for i := range n {
		e, err := v.At(i)
		if err != nil {
			return nil, err
		}
		out[i] = *e
	}

	return out, nil
}

// Push appends x if capacity remains, reporting whether it did.
func (v *FlatVec[T]) Push(x T) bool {
	n := v.Len()
	if n >= v.Capacity() {
		return false
	}
	off := dataOffset(v.elem, v.lc) + n*v.elem.Size
	if err := v.elem.Emplace(v.buf[off:off+v.elem.Size], x); err != nil {
		return false
	}
	v.setLen(n + 1)

	return true
}

// Pop removes and returns the last active element, if any.
func (v *FlatVec[T]) Pop() (T, bool) {
	n := v.Len()
	if n == 0 {
		var zero T
		return zero, false
	}
	e, err := v.At(n - 1)
	if err != nil {
		var zero T
		return zero, false
	}
	v.setLen(n - 1)

	return *e, true
}

// ExtendFromSlice pushes as many elements of xs as fit, returning the
// number actually pushed.
func (v *FlatVec[T]) ExtendFromSlice(xs []T) int {
	pushed := 0
	for _, x := range xs {
		if !v.Push(x) {
			break
		}
		pushed++
	}

	return pushed
}

// Equal reports whether a and b have the same length and eq returns true
// for every corresponding pair of active elements. Lengths differing
// always means unequal, regardless of trailing capacity.
func Equal[T any](a, b *FlatVec[T], eq func(x, y T) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	as, err := a.AsSlice()
	if err != nil {
		return false
	}
	bs, err := b.AsSlice()
	if err != nil {
		return false
	}
	for i := range as {
		if !eq(as[i], bs[i]) {
			return false
		}
	}

	return true
}
