package vec

import "github.com/arcflux/flatgo/portable"

// LenCodec reads and writes a FlatVec/FlatString/FlexVec header's length
// field, abstracting over its width and byte order.
type LenCodec interface {
	Size() int
	Max() int
	Get(b []byte) int
	Put(b []byte, n int)
}

type lenU8 struct{}

func (lenU8) Size() int           { return 1 }
func (lenU8) Max() int            { return 0xff }
func (lenU8) Get(b []byte) int    { return int(b[0]) }
func (lenU8) Put(b []byte, n int) { b[0] = byte(n) }

// LenU8 is a one-byte length field, 0..=255.
var LenU8 LenCodec = lenU8{}

type lenU16[O portable.Order] struct{}

func (lenU16[O]) Size() int { return 2 }
func (lenU16[O]) Max() int  { return 0xffff }

func (lenU16[O]) Get(b []byte) int {
	v, _ := portable.ParseUint16[O](b)
	return int(v.Get())
}

func (lenU16[O]) Put(b []byte, n int) {
	v, _ := portable.ParseUint16[O](b)
	v.Set(uint16(n))
}

// LenU16 is a two-byte length field in order O.
func LenU16[O portable.Order]() LenCodec { return lenU16[O]{} }

type lenU32[O portable.Order] struct{}

func (lenU32[O]) Size() int { return 4 }
func (lenU32[O]) Max() int  { return 0xffffffff }

func (lenU32[O]) Get(b []byte) int {
	v, _ := portable.ParseUint32[O](b)
	return int(v.Get())
}

func (lenU32[O]) Put(b []byte, n int) {
	v, _ := portable.ParseUint32[O](b)
	v.Set(uint32(n))
}

// LenU32 is a four-byte length field in order O.
func LenU32[O portable.Order]() LenCodec { return lenU32[O]{} }
