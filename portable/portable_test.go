package portable_test

import (
	"testing"

	"github.com/arcflux/flatgo/ferr"
	"github.com/arcflux/flatgo/portable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUint16RoundTripBothOrders(t *testing.T) {
	be := make([]byte, 2)
	v, err := portable.EmplaceUint16[portable.BE](be, 0x0102)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02}, be)
	assert.Equal(t, uint16(0x0102), v.Get())

	le := make([]byte, 2)
	v2, err := portable.EmplaceUint16[portable.LE](le, 0x0102)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x02, 0x01}, le)
	assert.Equal(t, uint16(0x0102), v2.Get())
}

func TestUint16InsufficientSize(t *testing.T) {
	_, err := portable.ParseUint16[portable.BE]([]byte{1})
	require.Error(t, err)
	assert.Equal(t, ferr.InsufficientSize, err.(ferr.Error).Kind)
}

func TestInt32NegativeRoundTrip(t *testing.T) {
	b := make([]byte, 4)
	v, err := portable.EmplaceInt32[portable.LE](b, -42)
	require.NoError(t, err)
	assert.Equal(t, int32(-42), v.Get())

	parsed, err := portable.ParseInt32[portable.LE](b)
	require.NoError(t, err)
	assert.Equal(t, int32(-42), parsed.Get())
}

// Endian transparency: the same logical value written in each order
// produces the expected byte-reversed wire form, and both read back as
// the original value regardless of the host's native
// byte order.
func TestInt32EndianTransparency(t *testing.T) {
	be := make([]byte, 4)
	_, err := portable.EmplaceInt32[portable.BE](be, 0x12345678)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x12, 0x34, 0x56, 0x78}, be)

	le := make([]byte, 4)
	_, err = portable.EmplaceInt32[portable.LE](le, 0x12345678)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x78, 0x56, 0x34, 0x12}, le)

	gotBE, err := portable.ParseInt32[portable.BE](be)
	require.NoError(t, err)
	assert.Equal(t, int32(0x12345678), gotBE.Get())

	gotLE, err := portable.ParseInt32[portable.LE](le)
	require.NoError(t, err)
	assert.Equal(t, int32(0x12345678), gotLE.Get())
}

func TestInt64NegativeRoundTrip(t *testing.T) {
	b := make([]byte, 8)
	v, err := portable.EmplaceInt64[portable.BE](b, -1)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), v.Get())
	for _, x := range b {
		assert.Equal(t, byte(0xff), x)
	}
}

func TestFloat64RoundTrip(t *testing.T) {
	b := make([]byte, 8)
	v, err := portable.EmplaceFloat64[portable.LE](b, 3.14159)
	require.NoError(t, err)
	assert.InDelta(t, 3.14159, v.Get(), 1e-9)
}

func TestFloat32RoundTrip(t *testing.T) {
	b := make([]byte, 4)
	v, err := portable.EmplaceFloat32[portable.BE](b, 2.5)
	require.NoError(t, err)
	assert.Equal(t, float32(2.5), v.Get())
}

func TestBoolRejectsNonCanonicalByte(t *testing.T) {
	_, err := portable.ParseBool([]byte{2})
	require.Error(t, err)
	assert.Equal(t, ferr.InvalidData, err.(ferr.Error).Kind)
}

func TestBoolRoundTrip(t *testing.T) {
	b := make([]byte, 1)
	v, err := portable.EmplaceBool(b, true)
	require.NoError(t, err)
	assert.True(t, v.Get())
	assert.Equal(t, byte(1), b[0])

	v2, err := portable.ParseBool([]byte{0})
	require.NoError(t, err)
	assert.False(t, v2.Get())
}

func TestUint64AlignAlwaysOne(t *testing.T) {
	var v portable.Uint64[portable.BE]
	assert.Equal(t, 1, v.Align())
	assert.Equal(t, 8, v.MinSize())
	assert.Equal(t, 8, v.Size())
}
