package portable

import "math"

// Float32 is a 4-byte IEEE-754 float stored in O's byte order.
type Float32[O Order] struct{ u Uint32[O] }

func (Float32[O]) Align() int   { return 1 }
func (Float32[O]) MinSize() int { return 4 }
func (Float32[O]) Size() int    { return 4 }

func (v Float32[O]) Get() float32  { return math.Float32frombits(v.u.Get()) }
func (v Float32[O]) Set(x float32) { v.u.Set(math.Float32bits(x)) }

func ParseFloat32[O Order](b []byte) (Float32[O], error) {
	u, err := ParseUint32[O](b)
	return Float32[O]{u: u}, err
}

func EmplaceFloat32[O Order](b []byte, x float32) (Float32[O], error) {
	v, err := ParseFloat32[O](b)
	if err != nil {
		return v, err
	}
	v.Set(x)

	return v, nil
}

// Float64 is an 8-byte IEEE-754 float stored in O's byte order.
type Float64[O Order] struct{ u Uint64[O] }

func (Float64[O]) Align() int   { return 1 }
func (Float64[O]) MinSize() int { return 8 }
func (Float64[O]) Size() int    { return 8 }

func (v Float64[O]) Get() float64  { return math.Float64frombits(v.u.Get()) }
func (v Float64[O]) Set(x float64) { v.u.Set(math.Float64bits(x)) }

func ParseFloat64[O Order](b []byte) (Float64[O], error) {
	u, err := ParseUint64[O](b)
	return Float64[O]{u: u}, err
}

func EmplaceFloat64[O Order](b []byte, x float64) (Float64[O], error) {
	v, err := ParseFloat64[O](b)
	if err != nil {
		return v, err
	}
	v.Set(x)

	return v, nil
}
