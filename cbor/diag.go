package cbor

import (
	"encoding/hex"
	"math"
	"strconv"
	"strings"
)

// Diag renders a decoded value in RFC 8949 diagnostic notation. Framing
// is gone after decoding, so indefinite-length items render in their
// definite form.
func Diag(v Value) string {
	bb := getBuffer()
	defer putBuffer(bb)
	writeDiag(bb, v)
	return string(bb.bytes())
}

func writeDiag(buf *byteBuffer, v Value) {
	switch x := v.(type) {
	case Int:
		buf.writeString(strconv.FormatInt(int64(x), 10))
	case Bytes:
		buf.writeString("h'")
		buf.writeString(hex.EncodeToString(x))
		buf.writeByte('\'')
	case Text:
		buf.writeString(strconv.Quote(string(x)))
	case Array:
		buf.writeByte('[')
		for i, e := range x {
			if i > 0 {
				buf.writeString(", ")
			}
			writeDiag(buf, e)
		}
		buf.writeByte(']')
	case Map:
		buf.writeByte('{')
		for i, p := range x {
			if i > 0 {
				buf.writeString(", ")
			}
			writeDiag(buf, p.Key)
			buf.writeString(": ")
			writeDiag(buf, p.Value)
		}
		buf.writeByte('}')
	case Tag:
		buf.writeString(strconv.FormatUint(x.Number, 10))
		buf.writeByte('(')
		writeDiag(buf, x.Content)
		buf.writeByte(')')
	case Bool:
		if x {
			buf.writeString("true")
		} else {
			buf.writeString("false")
		}
	case Null:
		buf.writeString("null")
	case Undefined:
		buf.writeString("undefined")
	case Simple:
		buf.writeString("simple(")
		buf.writeString(strconv.Itoa(int(x)))
		buf.writeByte(')')
	case Float:
		buf.writeString(formatFloatDiag(float64(x)))
	}
}

// formatFloatDiag names the non-finite values and keeps a trailing ".0"
// on integral finite floats so they stay distinguishable from integers.
func formatFloatDiag(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case math.IsNaN(f):
		return "NaN"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
