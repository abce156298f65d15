package buffer

import "sync"

// bucketPool is a sync.Pool specialized to one fixed allocation size.
type bucketPool struct {
	size int
	pool sync.Pool
}

func (bp *bucketPool) get() []byte {
	if v := bp.pool.Get(); v != nil {
		return v.([]byte)
	}

	return make([]byte, bp.size)
}

func (bp *bucketPool) put(b []byte) {
	bp.pool.Put(b)
}

var (
	bucketPoolsMu sync.Mutex
	bucketPools   = map[int]*bucketPool{}
)

func bucketPoolFor(size int) *bucketPool {
	bucketPoolsMu.Lock()
	defer bucketPoolsMu.Unlock()

	bp, ok := bucketPools[size]
	if !ok {
		bp = &bucketPool{size: size}
		bucketPools[size] = bp
	}

	return bp
}
