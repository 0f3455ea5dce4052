package cbor

import (
	"encoding/binary"
	"math"
)

// cursor tracks a read offset into one immutable input buffer. Every
// read is bounds-checked against the full input length and advances the
// offset by exactly the bytes it consumed. A cursor belongs to a single
// decode call.
type cursor struct {
	buf []byte
	off int
}

// remaining returns the number of unread bytes.
func (c *cursor) remaining() int { return len(c.buf) - c.off }

// require fails with OutOfBoundsError unless n more bytes can be read.
func (c *cursor) require(n int) error {
	if c.remaining() < n {
		return OutOfBoundsError{Offset: c.off, Need: n, Length: len(c.buf)}
	}
	return nil
}

func (c *cursor) readUint8() (uint8, error) {
	if err := c.require(1); err != nil {
		return 0, err
	}
	v := c.buf[c.off]
	c.off++
	return v, nil
}

func (c *cursor) readUint16() (uint16, error) {
	if err := c.require(2); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint16(c.buf[c.off:])
	c.off += 2
	return v, nil
}

func (c *cursor) readUint32() (uint32, error) {
	if err := c.require(4); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint32(c.buf[c.off:])
	c.off += 4
	return v, nil
}

func (c *cursor) readUint64() (uint64, error) {
	if err := c.require(8); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint64(c.buf[c.off:])
	c.off += 8
	return v, nil
}

func (c *cursor) readFloat32() (float32, error) {
	bits, err := c.readUint32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(bits), nil
}

func (c *cursor) readFloat64() (float64, error) {
	bits, err := c.readUint64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(bits), nil
}

// readBytes returns the next n bytes as an owned copy.
func (c *cursor) readBytes(n int) ([]byte, error) {
	if err := c.require(n); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, c.buf[c.off:])
	c.off += n
	return out, nil
}

// readBreak peeks at the current byte: a break marker is consumed and
// reported true, anything else leaves the offset where it was. Peeking
// past the end of the input is itself an out-of-bounds read.
func (c *cursor) readBreak() (bool, error) {
	if err := c.require(1); err != nil {
		return false, err
	}
	if c.buf[c.off] != makeByte(majorTypeSimple, simpleBreak) {
		return false, nil
	}
	c.off++
	return true, nil
}
