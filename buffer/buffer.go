package buffer

import "github.com/arcflux/flatgo/options"

// Buffer is a fixed-size byte buffer on loan from a Pool. It satisfies
// flat.MutByteSource, so it can back a flat.Owning[T] directly.
type Buffer struct {
	b    []byte
	pool *Pool
}

// Bytes returns the full backing range.
func (b *Buffer) Bytes() []byte { return b.b }

// MutBytes returns the full backing range, mutably.
func (b *Buffer) MutBytes() []byte { return b.b }

// Release returns the buffer to the pool it was obtained from. The caller
// must not use b after calling Release.
func (b *Buffer) Release() {
	if b.pool != nil {
		b.pool.put(b)
	}
}

// Pool is a size-bucketed sync.Pool of Buffers. Unlike
// internal/pool.ByteBufferPool, Pool hands out buffers whose length is
// fixed at Get time to exactly the requested size; it never grows a
// buffer already on loan.
type Pool struct {
	bucket       int
	maxThreshold int
}

// WithBucket overrides the rounding granularity in bytes passed to NewPool;
// a non-positive bucket leaves it unchanged. Larger buckets trade a little memory for fewer
// distinct size classes in the underlying sync.Pool, the same tradeoff
// internal/pool.ByteBufferPool's default sizes make at a coarser grain.
func WithBucket(bucket int) options.Option[*Pool] {
	return options.New(func(p *Pool) error {
		if bucket > 0 {
			p.bucket = bucket
		}

		return nil
	})
}

// WithMaxThreshold discards (rather than recycles) any buffer whose
// capacity exceeds threshold when it is released, mirroring
// ByteBufferPool's maxThreshold guard against unbounded memory growth from
// one oversized, rarely-reused buffer monopolizing the pool.
func WithMaxThreshold(threshold int) options.Option[*Pool] {
	return options.NoError(func(p *Pool) {
		p.maxThreshold = threshold
	})
}

// NewPool creates a Pool with the given bucket granularity (1, meaning no
// rounding, when bucket <= 0) and no maximum threshold, then applies opts.
func NewPool(bucket int, opts ...options.Option[*Pool]) *Pool {
	if bucket <= 0 {
		bucket = 1
	}
	p := &Pool{bucket: bucket}
	// Apply is infallible for every Option this package defines; errors
	// are reserved for future options that can fail.
	_ = options.Apply(p, opts...)

	return p
}

func (p *Pool) poolFor(size int) *bucketPool {
	n := (size + p.bucket - 1) / p.bucket
	if n < 1 {
		n = 1
	}

	return bucketPoolFor(n * p.bucket)
}

// Get returns a Buffer whose Bytes() has length exactly size, zeroed.
func (p *Pool) Get(size int) *Buffer {
	bp := p.poolFor(size)
	raw := bp.get()
	buf := raw[:size]
	for i := range buf {
		buf[i] = 0
	}

	return &Buffer{b: buf, pool: p}
}

func (p *Pool) put(b *Buffer) {
	if p.maxThreshold > 0 && cap(b.b) > p.maxThreshold {
		return
	}
	bp := p.poolFor(cap(b.b))
	bp.put(b.b[:cap(b.b)])
}
