package flat

// Emplacer is implemented by a value describing how to construct a T into
// an uninitialized, layout-compatible byte slice. Emplace must touch only
// the bytes it is given (locality) and, on success, must return a view
// pointing into that same slice.
//
// The container packages do not implement Emplacer themselves: they construct
// in place through their own functions (vec.New, str.New, str.FromStr,
// flex.New, FlexVec.PushWith). A struct-level generated emplacer composes one
// Emplacer per field and runs them in declared order via a Cursor.
type Emplacer[T any] interface {
	Emplace(b []byte) (*T, error)
}

// EmplacerFunc adapts a plain function to the Emplacer interface, the same
// way http.HandlerFunc adapts a function to http.Handler.
type EmplacerFunc[T any] func(b []byte) (*T, error)

// Emplace calls f(b).
func (f EmplacerFunc[T]) Emplace(b []byte) (*T, error) {
	return f(b)
}
