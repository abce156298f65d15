package prim

// Unit is a zero-size flat type: it occupies no bytes and always validates.
// It stands in for a tagged union variant carrying no payload at all.
type Unit struct{}

func (Unit) Align() int   { return 1 }
func (Unit) MinSize() int { return 0 }
func (Unit) Size() int    { return 0 }

// ParseUnit always succeeds; it never reads b.
func ParseUnit(_ []byte) (Unit, error) { return Unit{}, nil }

// EmplaceUnit always succeeds; it never writes b.
func EmplaceUnit(_ []byte) (Unit, error) { return Unit{}, nil }
