package prim_test

import (
	"testing"

	"github.com/arcflux/flatgo/ferr"
	"github.com/arcflux/flatgo/portable"
	"github.com/arcflux/flatgo/prim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitAlwaysValidates(t *testing.T) {
	u, err := prim.ParseUnit(nil)
	require.NoError(t, err)
	assert.Equal(t, prim.Unit{}, u)
	assert.Equal(t, 0, u.Size())
	assert.Equal(t, 1, u.Align())
}

func TestValidateArrayRoundTrip(t *testing.T) {
	b := make([]byte, 12)
	for i := range 3 {
		_, err := portable.EmplaceUint32[portable.BE](b[i*4:i*4+4], uint32(i+1))
		require.NoError(t, err)
	}

	got, err := prim.ValidateArray(b, 3, 4, func(e []byte) (*portable.Uint32[portable.BE], error) {
		v, err := portable.ParseUint32[portable.BE](e)
		return &v, err
	})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, uint32(1), got[0].Get())
	assert.Equal(t, uint32(2), got[1].Get())
	assert.Equal(t, uint32(3), got[2].Get())
}

func TestValidateArrayInsufficientSize(t *testing.T) {
	_, err := prim.ValidateArray(make([]byte, 3), 1, 4, func(b []byte) (*portable.Uint32[portable.BE], error) {
		v, err := portable.ParseUint32[portable.BE](b)
		return &v, err
	})
	require.Error(t, err)
	assert.Equal(t, ferr.InsufficientSize, err.(ferr.Error).Kind)
}

func TestValidateArrayOffsetsElementError(t *testing.T) {
	// Second element (offset 1) is the invalid byte for a Bool array.
	b := []byte{1, 2}
	_, err := prim.ValidateArray(b, 2, 1, func(e []byte) (*portable.Bool, error) {
		v, err := portable.ParseBool(e)
		return &v, err
	})
	require.Error(t, err)
	fe := err.(ferr.Error)
	assert.Equal(t, ferr.InvalidData, fe.Kind)
	assert.Equal(t, 1, fe.Pos)
}

func TestEmplaceArrayRoundTrip(t *testing.T) {
	b := make([]byte, 8)
	err := prim.EmplaceArray(b, []uint16{0x0102, 0x0304}, 2, func(dst []byte, v uint16) error {
		_, err := portable.EmplaceUint16[portable.BE](dst, v)
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, b[:4])
}
