package flex

import (
	"github.com/arcflux/flatgo/ferr"
	"github.com/arcflux/flatgo/flat"
	"github.com/arcflux/flatgo/internal/align"
	"github.com/arcflux/flatgo/vec"
)

// FlexElem describes T's parse and default-emplace behavior. Unlike
// vec.Elem, T need not be a fixed size: Parse and EmplaceDefault both
// return the number of bytes the value actually occupies, since that is
// what determines the next offset slot's value.
type FlexElem[T any] struct {
	Align   int
	MinSize int
	Parse   func(b []byte) (*T, int, error)
	// EmplaceDefault writes T's default value into the start of b (which
	// may be larger than needed) and returns the bytes actually used.
	EmplaceDefault func(b []byte) (*T, int, error)
}

// FlexVec is a linked, terminator-delimited growable vector.
type FlexVec[T any] struct {
	buf  []byte
	elem FlexElem[T]
	lc   vec.LenCodec
}

func (f *FlexVec[T]) offsetSize() int {
	return align.Max(f.lc.Size(), f.elem.Align)
}

// Align is max(align(L), align(T)).
func (f *FlexVec[T]) Align() int { return f.elem.Align }

// MinSize is the size of an empty FlexVec: just one offset slot.
func (f *FlexVec[T]) MinSize() int { return f.offsetSize() }

// New default-initializes an empty FlexVec over buf: a single terminator
// (zero) offset slot.
func New[T any](elem FlexElem[T], lc vec.LenCodec, buf []byte) (*FlexVec[T], error) {
	off := align.Max(lc.Size(), elem.Align)
	if len(buf) < off {
		return nil, ferr.New(ferr.InsufficientSize, 0)
	}
	lc.Put(buf[:lc.Size()], 0)

	return &FlexVec[T]{buf: buf, elem: elem, lc: lc}, nil
}

// Parse validates buf as a FlexVec, walking the offset chain with a Cursor
// and validating every entry's payload in turn.
func Parse[T any](elem FlexElem[T], lc vec.LenCodec, buf []byte) (*FlexVec[T], error) {
	off := align.Max(lc.Size(), elem.Align)
	if len(buf) < off {
		return nil, ferr.New(ferr.InsufficientSize, 0)
	}

	cur := flat.NewCursor(buf)
	for {
		slotPos := cur.Pos()
		slot, err := cur.Take(lc.Size())
		if err != nil {
			return nil, err
		}
		n := lc.Get(slot)
		if n == 0 {
			break
		}

		if pad := off - lc.Size(); pad > 0 {
			if _, err := cur.Take(pad); err != nil {
				return nil, ferr.New(ferr.InsufficientSize, slotPos+off)
			}
		}
		payloadStart := cur.Pos()

		last := n == lc.Max()
		var payload []byte
		if last {
			payload = cur.Rest()
		} else {
			if n < off {
				return nil, ferr.New(ferr.InsufficientSize, slotPos+off)
			}
			if payload, err = cur.Take(n - off); err != nil {
				return nil, ferr.New(ferr.InsufficientSize, slotPos+off)
			}
		}

		if _, _, err := elem.Parse(payload); err != nil {
			if fe, ok := err.(ferr.Error); ok {
				return nil, fe.Offset(payloadStart)
			}

			return nil, err
		}

		if last {
			break
		}
	}

	return &FlexVec[T]{buf: buf, elem: elem, lc: lc}, nil
}

// Len counts the active entries by walking the offset chain.
func (f *FlexVec[T]) Len() int {
	pos, n := 0, 0
	for {
		v := f.lc.Get(f.buf[pos : pos+f.lc.Size()])
		if v == 0 {
			return n
		}
		n++
		if v == f.lc.Max() {
			return n
		}
		pos += v
	}
}

// IsEmpty reports whether the vector has no entries.
func (f *FlexVec[T]) IsEmpty() bool {
	return f.lc.Get(f.buf[:f.lc.Size()]) == 0
}

// Size is the header plus active entries' bytes: it shrinks and grows with
// Push/Truncate, never counting unused trailing capacity.
func (f *FlexVec[T]) Size() int {
	off := f.offsetSize()
	pos := 0
	for {
		v := f.lc.Get(f.buf[pos : pos+f.lc.Size()])
		if v == 0 {
			return pos + off
		}
		if v == f.lc.Max() {
			payloadStart := pos + off
			_, size, _ := f.elem.Parse(f.buf[payloadStart:])

			return payloadStart + align.CeilMul(size, f.elem.Align)
		}
		pos += v
	}
}

// All returns a range-over-func iterator over every active entry, in
// order, stopping early if the consumer's loop body returns without
// continuing (standard Go 1.23 iterator convention).
func (f *FlexVec[T]) All() func(yield func(*T) bool) {
	return func(yield func(*T) bool) {
		off := f.offsetSize()
		pos := 0
		for {
			v := f.lc.Get(f.buf[pos : pos+f.lc.Size()])
			if v == 0 {
				return
			}
			last := v == f.lc.Max()
			payloadStart := pos + off
			var payload []byte
			if last {
				payload = f.buf[payloadStart:]
			} else {
				payload = f.buf[payloadStart : pos+v]
			}
			item, _, err := f.elem.Parse(payload)
			if err != nil {
				return
			}
			if !yield(item) {
				return
			}
			if last {
				return
			}
			pos += v
		}
	}
}

// PushWith walks to the current end of the chain and emplaces a new entry
// there using emplace, converting the previous L::MAX terminator (if any)
// into a concrete offset along the way.
func (f *FlexVec[T]) PushWith(emplace func(b []byte) (*T, int, error)) (*T, error) {
	off := f.offsetSize()
	pos := 0

	for {
		if pos+f.lc.Size() > len(f.buf) {
			return nil, ferr.New(ferr.InsufficientSize, pos)
		}
		v := f.lc.Get(f.buf[pos : pos+f.lc.Size()])
		if v == 0 {
			break
		}
		if v == f.lc.Max() {
			payloadStart := pos + off
			_, size, err := f.elem.Parse(f.buf[payloadStart:])
			if err != nil {
				return nil, err
			}
			entryLen := off + align.CeilMul(size, f.elem.Align)
			if entryLen >= f.lc.Max() {
				return nil, ferr.New(ferr.InsufficientSize, pos)
			}
			f.lc.Put(f.buf[pos:pos+f.lc.Size()], entryLen)
			pos += entryLen

			break
		}
		pos += v
	}

	if pos+off > len(f.buf) {
		return nil, ferr.New(ferr.InsufficientSize, pos)
	}
	f.lc.Put(f.buf[pos:pos+f.lc.Size()], f.lc.Max())

	payloadStart := pos + off
	v, _, err := emplace(f.buf[payloadStart:])
	if err != nil {
		return nil, err
	}

	return v, nil
}

// PushDefault appends a default-initialized T.
func (f *FlexVec[T]) PushDefault() (*T, error) {
	return f.PushWith(f.elem.EmplaceDefault)
}

// Truncate shrinks the vector to its first n entries, marking the n'th
// entry (0-indexed n-1) as the new final one. It is a no-op if the vector
// already has n or fewer entries.
func (f *FlexVec[T]) Truncate(n int) {
	if n == 0 {
		f.lc.Put(f.buf[:f.lc.Size()], 0)
		return
	}

	pos := 0
	for range n - 1 {
		v := f.lc.Get(f.buf[pos : pos+f.lc.Size()])
		if v == 0 || v == f.lc.Max() {
			return
		}
		pos += v
	}

	v := f.lc.Get(f.buf[pos : pos+f.lc.Size()])
	if v == 0 || v == f.lc.Max() {
		return
	}
	f.lc.Put(f.buf[pos:pos+f.lc.Size()], f.lc.Max())
}

// Clear empties the vector.
func (f *FlexVec[T]) Clear() { f.Truncate(0) }

// Pop removes the last entry, if any, reporting whether one was removed.
func (f *FlexVec[T]) Pop() bool {
	n := f.Len()
	if n == 0 {
		return false
	}
	f.Truncate(n - 1)

	return true
}
