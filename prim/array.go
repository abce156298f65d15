package prim

import "github.com/arcflux/flatgo/ferr"

// ValidateArray validates count consecutive, equally-sized elements packed
// into b with no padding between them, calling validate on each element's
// byte range in order: a fixed-size array is valid iff every element is
// valid and sits at a fixed stride, with no terminator or length prefix of
// its own.
//
// On the first element that fails to validate, ValidateArray returns that
// element's error offset by its position within b, so a caller one level up
// need only add its own field offset once.
func ValidateArray[T any](b []byte, count, elemSize int, validate func([]byte) (*T, error)) ([]T, error) {
	need := count * elemSize
	if len(b) < need {
		return nil, ferr.New(ferr.InsufficientSize, 0)
	}

	out := make([]T, count)
	for i := range count {
		off := i * elemSize
		v, err := validate(b[off : off+elemSize])
		if err != nil {
			if fe, ok := err.(ferr.Error); ok {
				return nil, fe.Offset(off)
			}

			return nil, err
		}
		out[i] = *v
	}

	return out, nil
}

// EmplaceArray writes len(values) elements into b using emplace, which is
// handed each element's byte range and the value to write. b must hold at
// least len(values)*elemSize bytes.
func EmplaceArray[T any](b []byte, values []T, elemSize int, emplace func(dst []byte, v T) error) error {
	need := len(values) * elemSize
	if len(b) < need {
		return ferr.New(ferr.InsufficientSize, 0)
	}

	for i, v := range values {
		off := i * elemSize
		if err := emplace(b[off:off+elemSize], v); err != nil {
			if fe, ok := err.(ferr.Error); ok {
				return fe.Offset(off)
			}

			return err
		}
	}

	return nil
}
