package portable

import "github.com/arcflux/flatgo/ferr"

// Bool is a 1-byte boolean whose only valid representations are 0 and 1;
// any other byte value fails validation.
type Bool struct{ b []byte }

func (Bool) Align() int   { return 1 }
func (Bool) MinSize() int { return 1 }
func (Bool) Size() int    { return 1 }

// Get reads the value. Only called on an already-validated Bool.
func (v Bool) Get() bool { return v.b[0] != 0 }

// Set overwrites the value in place.
func (v Bool) Set(x bool) {
	if x {
		v.b[0] = 1
	} else {
		v.b[0] = 0
	}
}

// ParseBool validates that b holds at least one byte whose value is 0 or 1.
func ParseBool(b []byte) (Bool, error) {
	if len(b) < 1 {
		return Bool{}, ferr.New(ferr.InsufficientSize, 0)
	}
	if b[0] > 1 {
		return Bool{}, ferr.New(ferr.InvalidData, 0)
	}

	return Bool{b: b[:1]}, nil
}

// EmplaceBool checks that b holds at least one byte and writes x into it;
// the byte's previous value is not checked.
func EmplaceBool(b []byte, x bool) (Bool, error) {
	if len(b) < 1 {
		return Bool{}, ferr.New(ferr.InsufficientSize, 0)
	}
	v := Bool{b: b[:1]}
	v.Set(x)

	return v, nil
}
