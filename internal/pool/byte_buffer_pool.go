package pool

import "sync"

const (
	SealBufferDefaultSize  = 1024 * 16   // 16KiB, about 120 records of 16 landmarks
	SealBufferMaxThreshold = 1024 * 1024 // 1MiB
)

// ByteBuffer is a growable byte slice that can be recycled through a ByteBufferPool.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified default capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer but keeps its memory.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Write appends data to the buffer, growing it as needed.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// ByteBufferPool is a sync.Pool of ByteBuffers.
//
// Buffers that grew past maxThreshold are dropped on Put instead of being
// retained, so one long recording does not pin a large allocation.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool of buffers with the given default capacity.
// A maxThreshold of zero keeps every buffer.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves an empty ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var sealPool = NewByteBufferPool(SealBufferDefaultSize, SealBufferMaxThreshold)

// GetSealBuffer retrieves a scratch buffer for serializing data before it is sealed.
func GetSealBuffer() *ByteBuffer {
	return sealPool.Get()
}

// PutSealBuffer returns a scratch buffer obtained from GetSealBuffer.
func PutSealBuffer(bb *ByteBuffer) {
	sealPool.Put(bb)
}
