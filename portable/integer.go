package portable

import (
	"unsafe"

	"github.com/arcflux/flatgo/ferr"
)

// Uint16 is a 2-byte unsigned integer stored in O's byte order.
type Uint16[O Order] struct{ b []byte }

func (Uint16[O]) Align() int   { return 1 }
func (Uint16[O]) MinSize() int { return 2 }
func (Uint16[O]) Size() int    { return 2 }

// Get reads the current value.
func (v Uint16[O]) Get() uint16 { return engineOf[O]().Uint16(v.b) }

// Set overwrites the value in place.
func (v Uint16[O]) Set(x uint16) { engineOf[O]().PutUint16(v.b, x) }

// ParseUint16 validates that b holds at least 2 bytes and returns a view.
func ParseUint16[O Order](b []byte) (Uint16[O], error) {
	if len(b) < 2 {
		return Uint16[O]{}, ferr.New(ferr.InsufficientSize, 0)
	}

	return Uint16[O]{b: b[:2]}, nil
}

// EmplaceUint16 validates b like ParseUint16 and writes x into it.
func EmplaceUint16[O Order](b []byte, x uint16) (Uint16[O], error) {
	v, err := ParseUint16[O](b)
	if err != nil {
		return v, err
	}
	v.Set(x)

	return v, nil
}

// Uint32 is a 4-byte unsigned integer stored in O's byte order.
type Uint32[O Order] struct{ b []byte }

func (Uint32[O]) Align() int   { return 1 }
func (Uint32[O]) MinSize() int { return 4 }
func (Uint32[O]) Size() int    { return 4 }

func (v Uint32[O]) Get() uint32  { return engineOf[O]().Uint32(v.b) }
func (v Uint32[O]) Set(x uint32) { engineOf[O]().PutUint32(v.b, x) }

func ParseUint32[O Order](b []byte) (Uint32[O], error) {
	if len(b) < 4 {
		return Uint32[O]{}, ferr.New(ferr.InsufficientSize, 0)
	}

	return Uint32[O]{b: b[:4]}, nil
}

func EmplaceUint32[O Order](b []byte, x uint32) (Uint32[O], error) {
	v, err := ParseUint32[O](b)
	if err != nil {
		return v, err
	}
	v.Set(x)

	return v, nil
}

// Uint64 is an 8-byte unsigned integer stored in O's byte order.
type Uint64[O Order] struct{ b []byte }

func (Uint64[O]) Align() int   { return 1 }
func (Uint64[O]) MinSize() int { return 8 }
func (Uint64[O]) Size() int    { return 8 }

func (v Uint64[O]) Get() uint64  { return engineOf[O]().Uint64(v.b) }
func (v Uint64[O]) Set(x uint64) { engineOf[O]().PutUint64(v.b, x) }

func ParseUint64[O Order](b []byte) (Uint64[O], error) {
	if len(b) < 8 {
		return Uint64[O]{}, ferr.New(ferr.InsufficientSize, 0)
	}

	return Uint64[O]{b: b[:8]}, nil
}

func EmplaceUint64[O Order](b []byte, x uint64) (Uint64[O], error) {
	v, err := ParseUint64[O](b)
	if err != nil {
		return v, err
	}
	v.Set(x)

	return v, nil
}

// Int16 is a 2-byte signed integer stored in O's byte order, reinterpreting
// its unsigned backing the same way section.NumericHeader.Parse reinterprets
// StartTime: via an unsafe.Pointer bit cast rather than arithmetic that could
// overflow in two's-complement conversion.
type Int16[O Order] struct{ u Uint16[O] }

func (Int16[O]) Align() int   { return 1 }
func (Int16[O]) MinSize() int { return 2 }
func (Int16[O]) Size() int    { return 2 }

func (v Int16[O]) Get() int16 {
	u := v.u.Get()
	return *(*int16)(unsafe.Pointer(&u))
}

func (v Int16[O]) Set(x int16) {
	v.u.Set(*(*uint16)(unsafe.Pointer(&x)))
}

func ParseInt16[O Order](b []byte) (Int16[O], error) {
	u, err := ParseUint16[O](b)
	return Int16[O]{u: u}, err
}

func EmplaceInt16[O Order](b []byte, x int16) (Int16[O], error) {
	v, err := ParseInt16[O](b)
	if err != nil {
		return v, err
	}
	v.Set(x)

	return v, nil
}

// Int32 is a 4-byte signed integer stored in O's byte order.
type Int32[O Order] struct{ u Uint32[O] }

func (Int32[O]) Align() int   { return 1 }
func (Int32[O]) MinSize() int { return 4 }
func (Int32[O]) Size() int    { return 4 }

func (v Int32[O]) Get() int32 {
	u := v.u.Get()
	return *(*int32)(unsafe.Pointer(&u))
}

func (v Int32[O]) Set(x int32) {
	v.u.Set(*(*uint32)(unsafe.Pointer(&x)))
}

func ParseInt32[O Order](b []byte) (Int32[O], error) {
	u, err := ParseUint32[O](b)
	return Int32[O]{u: u}, err
}

func EmplaceInt32[O Order](b []byte, x int32) (Int32[O], error) {
	v, err := ParseInt32[O](b)
	if err != nil {
		return v, err
	}
	v.Set(x)

	return v, nil
}

// Int64 is an 8-byte signed integer stored in O's byte order.
type Int64[O Order] struct{ u Uint64[O] }

func (Int64[O]) Align() int   { return 1 }
func (Int64[O]) MinSize() int { return 8 }
func (Int64[O]) Size() int    { return 8 }

func (v Int64[O]) Get() int64 {
	u := v.u.Get()
	return *(*int64)(unsafe.Pointer(&u))
}

func (v Int64[O]) Set(x int64) {
	v.u.Set(*(*uint64)(unsafe.Pointer(&x)))
}

func ParseInt64[O Order](b []byte) (Int64[O], error) {
	u, err := ParseUint64[O](b)
	return Int64[O]{u: u}, err
}

func EmplaceInt64[O Order](b []byte, x int64) (Int64[O], error) {
	v, err := ParseInt64[O](b)
	if err != nil {
		return v, err
	}
	v.Set(x)

	return v, nil
}
