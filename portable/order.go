package portable

import "github.com/arcflux/flatgo/endian"

// Order is the marker-type constraint standing in for flatty's const-generic
// endianness parameter. BE and LE are its only two implementations.
type Order interface {
	engine() endian.EndianEngine
}

// BE selects big-endian byte order.
type BE struct{}

func (BE) engine() endian.EndianEngine { return endian.GetBigEndianEngine() }

// LE selects little-endian byte order.
type LE struct{}

func (LE) engine() endian.EndianEngine { return endian.GetLittleEndianEngine() }

func engineOf[O Order]() endian.EndianEngine {
	var o O
	return o.engine()
}
