package cbor

import "sync"

// byteBuffer is a pooled append buffer for the renderers. Buffers leave
// the pool with length zero and keep their capacity across uses.
type byteBuffer struct {
	b []byte
}

var bufPool = sync.Pool{
	New: func() any {
		return &byteBuffer{b: make([]byte, 0, 256)}
	},
}

func getBuffer() *byteBuffer {
	bb := bufPool.Get().(*byteBuffer)
	bb.reset()
	return bb
}

func putBuffer(bb *byteBuffer) {
	bb.reset()
	bufPool.Put(bb)
}

func (bb *byteBuffer) reset() { bb.b = bb.b[:0] }

func (bb *byteBuffer) bytes() []byte { return bb.b }

func (bb *byteBuffer) writeByte(c byte) { bb.b = append(bb.b, c) }

func (bb *byteBuffer) writeString(s string) { bb.b = append(bb.b, s...) }
