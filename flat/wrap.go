package flat

// ByteSource is exposed by any container that owns a byte buffer with a
// stable address and length across accesses: a heap-allocated buffer, a
// pooled buffer (package buffer), or a fixed stack/array-backed slice.
type ByteSource interface {
	Bytes() []byte
}

// MutByteSource additionally exposes the owned bytes mutably, which is
// required to back a flat value that supports in-place mutation.
type MutByteSource interface {
	ByteSource
	MutBytes() []byte
}

// Owning binds a typed flat view to the lifetime of an arbitrary
// byte-owning container. It validates the container's bytes exactly once,
// at construction; every subsequent access returns the cached view without
// re-validating. Owning never reallocates — if the source's bytes move,
// the caller must construct a new Owning.
type Owning[T any] struct {
	src  MutByteSource
	view *T
}

// NewOwning validates src's bytes as a T using validate, and on success
// returns an Owning bound to src. validate is typically a concrete
// package's Parse/New function (e.g. vec.Parse[int32, uint32]).
func NewOwning[T any](src MutByteSource, validate func([]byte) (*T, error)) (*Owning[T], error) {
	view, err := validate(src.Bytes())
	if err != nil {
		return nil, err
	}

	return &Owning[T]{src: src, view: view}, nil
}

// Get returns the cached, already-validated view.
func (o *Owning[T]) Get() *T {
	return o.view
}

// Bytes returns the full backing byte range the view was validated against.
func (o *Owning[T]) Bytes() []byte {
	return o.src.Bytes()
}
