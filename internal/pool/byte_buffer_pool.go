// Package pool provides a pooled byte buffer for blob payload assembly.
package pool

import "sync"

const (
	// BlobBufferDefaultSize is the initial capacity of buffers created by the
	// pool. A blob of a few thousand packed words fits without regrowth.
	BlobBufferDefaultSize = 16 * 1024

	// blobBufferMaxThreshold is the largest buffer the pool retains. Larger
	// buffers are dropped on Put so one oversized blob does not pin memory.
	blobBufferMaxThreshold = 128 * 1024
)

// ByteBuffer is a growable byte slice with pooling support.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a ByteBuffer with the given initial capacity.
func NewByteBuffer(capacity int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, capacity)}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Reset empties the buffer while retaining its allocation.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

var blobBufferPool = sync.Pool{
	New: func() any {
		return NewByteBuffer(BlobBufferDefaultSize)
	},
}

// GetBlobBuffer returns an empty ByteBuffer from the pool.
func GetBlobBuffer() *ByteBuffer {
	bb, _ := blobBufferPool.Get().(*ByteBuffer)
	bb.Reset()

	return bb
}

// PutBlobBuffer returns a ByteBuffer to the pool. Buffers that grew past the
// retention threshold are dropped.
func PutBlobBuffer(bb *ByteBuffer) {
	if bb == nil || cap(bb.B) > blobBufferMaxThreshold {
		return
	}

	blobBufferPool.Put(bb)
}
