package owner

import (
	"github.com/arcflux/flatgo/buffer"
	"github.com/arcflux/flatgo/flat"
)

// heapBytes adapts a plain []byte to flat.MutByteSource.
type heapBytes struct{ b []byte }

func (h *heapBytes) Bytes() []byte    { return h.b }
func (h *heapBytes) MutBytes() []byte { return h.b }

// FromBytes validates b as a T and returns an Owning bound to it. b is
// taken by reference; the caller must not otherwise retain a mutable alias
// to it.
func FromBytes[T any](b []byte, validate func([]byte) (*T, error)) (*flat.Owning[T], error) {
	return flat.NewOwning[T](&heapBytes{b: b}, validate)
}

// FromPooledBuffer validates buf as a T and returns an Owning bound to it.
// Releasing buf back to its pool while the returned Owning is still in use
// is a use-after-free the caller must avoid, same as freeing any other
// borrowed buffer early.
func FromPooledBuffer[T any](buf *buffer.Buffer, validate func([]byte) (*T, error)) (*flat.Owning[T], error) {
	return flat.NewOwning[T](buf, validate)
}
