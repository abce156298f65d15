package buffer_test

import (
	"testing"

	"github.com/arcflux/flatgo/buffer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetReturnsExactlySizedZeroedBuffer(t *testing.T) {
	p := buffer.NewPool(64)
	b := p.Get(20)
	require.Len(t, b.Bytes(), 20)
	for _, x := range b.Bytes() {
		assert.Equal(t, byte(0), x)
	}
}

func TestReleaseAndReuseDoesNotLeakStaleData(t *testing.T) {
	p := buffer.NewPool(16)
	b := p.Get(10)
	copy(b.MutBytes(), []byte("stale-data"))
	b.Release()

	b2 := p.Get(10)
	for _, x := range b2.Bytes() {
		assert.Equal(t, byte(0), x, "released buffer's stale bytes must not leak into a fresh Get")
	}
}

func TestBytesAndMutBytesAliasSameBackingArray(t *testing.T) {
	p := buffer.NewPool(8)
	b := p.Get(8)
	b.MutBytes()[0] = 0xab
	assert.Equal(t, byte(0xab), b.Bytes()[0])
}

func TestNewPoolWithBucketOptionRoundsUp(t *testing.T) {
	p := buffer.NewPool(1, buffer.WithBucket(64), buffer.WithMaxThreshold(1<<20))
	b := p.Get(3)
	require.Len(t, b.Bytes(), 3)
	assert.Equal(t, 64, cap(b.Bytes()))
	b.Release()
}
