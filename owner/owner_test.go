package owner_test

import (
	"testing"

	"github.com/arcflux/flatgo/buffer"
	"github.com/arcflux/flatgo/owner"
	"github.com/arcflux/flatgo/portable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validateU32BE(b []byte) (*portable.Uint32[portable.BE], error) {
	v, err := portable.ParseUint32[portable.BE](b)
	return &v, err
}

func TestFromBytesBindsToHeapSlice(t *testing.T) {
	b := make([]byte, 4)
	_, err := portable.EmplaceUint32[portable.BE](b, 0xdeadbeef)
	require.NoError(t, err)

	owned, err := owner.FromBytes(b, validateU32BE)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xdeadbeef), owned.Get().Get())
}

func TestFromPooledBuffer(t *testing.T) {
	p := buffer.NewPool(8)
	buf := p.Get(4)
	_, err := portable.EmplaceUint32[portable.BE](buf.MutBytes(), 7)
	require.NoError(t, err)

	owned, err := owner.FromPooledBuffer(buf, validateU32BE)
	require.NoError(t, err)
	assert.Equal(t, uint32(7), owned.Get().Get())
}
