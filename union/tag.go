package union

import "github.com/arcflux/flatgo/portable"

// TagCodec reads and writes a tagged union's discriminant, abstracting
// over its width and byte order.
type TagCodec interface {
	Size() int
	Get(b []byte) int
	Put(b []byte, tag int)
}

type tagU8 struct{}

func (tagU8) Size() int           { return 1 }
func (tagU8) Get(b []byte) int    { return int(b[0]) }
func (tagU8) Put(b []byte, t int) { b[0] = byte(t) }

// TagU8 is a one-byte discriminant.
var TagU8 TagCodec = tagU8{}

type tagU16[O portable.Order] struct{}

func (tagU16[O]) Size() int { return 2 }

func (tagU16[O]) Get(b []byte) int {
	v, _ := portable.ParseUint16[O](b)
	return int(v.Get())
}

func (tagU16[O]) Put(b []byte, t int) {
	v, _ := portable.ParseUint16[O](b)
	v.Set(uint16(t))
}

// TagU16 is a two-byte discriminant in order O.
func TagU16[O portable.Order]() TagCodec { return tagU16[O]{} }
