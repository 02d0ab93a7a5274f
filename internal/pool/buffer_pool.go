// Package pool provides reusable buffers for the hot token-normalization path.
package pool

import "sync"

// BufferPool is a pool of byte slices for memory reuse during normalization.
type BufferPool struct {
	pool sync.Pool
}

// NewBufferPool creates a pool whose buffers start with the given capacity.
func NewBufferPool(size int) *BufferPool {
	return &BufferPool{
		pool: sync.Pool{
			New: func() interface{} {
				buffer := make([]byte, 0, size)
				return &buffer
			},
		},
	}
}

// Get retrieves a buffer from the pool or creates a new one.
func (bp *BufferPool) Get() *[]byte {
	return bp.pool.Get().(*[]byte)
}

// Put returns a buffer to the pool, keeping its capacity.
func (bp *BufferPool) Put(buffer *[]byte) {
	*buffer = (*buffer)[:0]
	bp.pool.Put(buffer)
}
