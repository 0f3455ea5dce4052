// Package cbor decodes CBOR (RFC 8949) payloads into a dynamic tree of
// Int, Bytes, Text, Array, Map, Tag, Bool, Null, Undefined, Simple and
// Float values, and renders such trees as diagnostic notation or JSON.
package cbor

import (
	"math"

	"github.com/x448/float16"
)

// TagFunc transforms a decoded tagged item. It receives the decoded
// content and the tag number and returns the value that takes the tag's
// place in the tree.
type TagFunc func(content Value, num uint64) Value

// SimpleFunc maps a simple value code outside 20..23 to a value.
type SimpleFunc func(code uint8) Value

// KeepTags is a TagFunc that preserves the tag number by wrapping the
// content in a Tag.
func KeepTags(content Value, num uint64) Value {
	return Tag{Number: num, Content: content}
}

// KeepSimpleValues is a SimpleFunc that preserves the code as a Simple.
func KeepSimpleValues(code uint8) Value {
	return Simple(code)
}

func dropTag(content Value, _ uint64) Value { return content }

func undefinedSimple(uint8) Value { return Undefined{} }

// DecodeOptions configures a decode call. The zero value is ready to
// use: tags decode to their content with the number dropped, unassigned
// simple values decode to Undefined, and nesting depth is capped at a
// large default.
type DecodeOptions struct {
	// TagFunc is applied to every decoded tag. Nil keeps the content
	// and drops the number.
	TagFunc TagFunc

	// SimpleFunc is applied to every simple value outside 20..23,
	// whether from a one-byte header or from the two-byte form. Nil
	// yields Undefined regardless of the code.
	SimpleFunc SimpleFunc

	// MaxDepth bounds nesting of arrays, maps and tags. Zero or
	// negative means the package default.
	MaxDepth int
}

// Decode decodes exactly one CBOR item spanning the whole of data with
// default options.
func Decode(data []byte) (Value, error) {
	return DecodeOptions{}.Decode(data)
}

// Decode decodes exactly one CBOR item spanning the whole of data.
// Bytes left over after the item make the decode fail with
// TrailingBytesError, and an empty input fails with OutOfBoundsError.
func (o DecodeOptions) Decode(data []byte) (Value, error) {
	d := decoder{cursor: cursor{buf: data}, opts: o}
	if d.opts.TagFunc == nil {
		d.opts.TagFunc = dropTag
	}
	if d.opts.SimpleFunc == nil {
		d.opts.SimpleFunc = undefinedSimple
	}
	if d.opts.MaxDepth <= 0 {
		d.opts.MaxDepth = defaultMaxDepth
	}
	v, err := d.decodeItem(0)
	if err != nil {
		return nil, err
	}
	if d.off != len(data) {
		return nil, TrailingBytesError{Offset: d.off, Length: len(data)}
	}
	return v, nil
}

// decoder threads one cursor and the resolved options through the
// recursive item decode.
type decoder struct {
	cursor
	opts DecodeOptions
}

// readLength interprets the additional information field of a header:
// values below 24 are the length itself, 24 through 27 read a big-endian
// integer of 1, 2, 4 or 8 bytes, and 31 signals an indefinite length.
func (d *decoder) readLength(addInfo uint8) (length uint64, indefinite bool, err error) {
	switch {
	case addInfo <= addInfoDirect:
		return uint64(addInfo), false, nil
	case addInfo == addInfoUint8:
		v, err := d.readUint8()
		return uint64(v), false, err
	case addInfo == addInfoUint16:
		v, err := d.readUint16()
		return uint64(v), false, err
	case addInfo == addInfoUint32:
		v, err := d.readUint32()
		return uint64(v), false, err
	case addInfo == addInfoUint64:
		v, err := d.readUint64()
		return v, false, err
	case addInfo == addInfoIndefinite:
		return 0, true, nil
	default:
		return 0, false, MalformedLengthError{AddInfo: addInfo, Offset: d.off - 1}
	}
}

// readChunkLength reads the header of the next chunk inside an
// indefinite-length string, reporting done when it consumes the break
// marker instead. A chunk must be definite and must repeat the enclosing
// string's major type; reserved additional information in the chunk
// header is reported as malformed before either check.
func (d *decoder) readChunkLength(want uint8) (length uint64, done bool, err error) {
	initial, err := d.readUint8()
	if err != nil {
		return 0, false, err
	}
	if initial == makeByte(majorTypeSimple, simpleBreak) {
		return 0, true, nil
	}
	headerOff := d.off - 1
	length, indefinite, err := d.readLength(getAddInfo(initial))
	if err != nil {
		return 0, false, err
	}
	if indefinite || getMajorType(initial) != want {
		return 0, false, InvalidChunkError{
			Want:       want,
			Got:        getMajorType(initial),
			Indefinite: indefinite,
			Offset:     headerOff,
		}
	}
	return length, false, nil
}

// itemCount converts a declared length into an element count after
// bounding it against the unread input. Each element occupies at least
// minBytes encoded bytes, so any count the remaining input cannot hold
// fails here, before allocation.
func (d *decoder) itemCount(length uint64, minBytes int) (int, error) {
	if length > uint64(d.remaining())/uint64(minBytes) {
		need := math.MaxInt
		if length <= uint64(math.MaxInt/minBytes) {
			need = int(length) * minBytes
		}
		return 0, OutOfBoundsError{Offset: d.off, Need: need, Length: len(d.buf)}
	}
	return int(length), nil
}

// decodeItem decodes the single item at the cursor.
func (d *decoder) decodeItem(depth int) (Value, error) {
	if depth > d.opts.MaxDepth {
		return nil, ErrDepthExceeded
	}
	headerOff := d.off
	initial, err := d.readUint8()
	if err != nil {
		return nil, err
	}
	major := getMajorType(initial)
	addInfo := getAddInfo(initial)

	// Floats carry no length. They dispatch on the raw additional
	// information before the length decoder would misread their payload
	// bytes as a count.
	if major == majorTypeSimple {
		switch addInfo {
		case simpleFloat16:
			bits, err := d.readUint16()
			if err != nil {
				return nil, err
			}
			return Float(float16.Frombits(bits).Float32()), nil
		case simpleFloat32:
			f, err := d.readFloat32()
			if err != nil {
				return nil, err
			}
			return Float(f), nil
		case simpleFloat64:
			f, err := d.readFloat64()
			if err != nil {
				return nil, err
			}
			return Float(f), nil
		}
	}

	length, indefinite, err := d.readLength(addInfo)
	if err != nil {
		return nil, err
	}
	if indefinite && (major < majorTypeBytes || major > majorTypeMap) {
		return nil, InvalidIndefiniteError{Major: major, Offset: headerOff}
	}

	switch major {
	case majorTypeUint:
		if length > math.MaxInt64 {
			return nil, IntOverflow{Value: length}
		}
		return Int(length), nil
	case majorTypeNegInt:
		if length > math.MaxInt64 {
			return nil, IntOverflow{Value: length, Negative: true}
		}
		return Int(-1 - int64(length)), nil
	case majorTypeBytes:
		b, err := d.readByteString(length, indefinite)
		if err != nil {
			return nil, err
		}
		return b, nil
	case majorTypeText:
		t, err := d.readTextString(length, indefinite)
		if err != nil {
			return nil, err
		}
		return t, nil
	case majorTypeArray:
		a, err := d.decodeArray(length, indefinite, depth)
		if err != nil {
			return nil, err
		}
		return a, nil
	case majorTypeMap:
		m, err := d.decodeMap(length, indefinite, depth)
		if err != nil {
			return nil, err
		}
		return m, nil
	case majorTypeTag:
		content, err := d.decodeItem(depth + 1)
		if err != nil {
			return nil, err
		}
		return d.opts.TagFunc(content, length), nil
	default: // majorTypeSimple
		switch length {
		case uint64(simpleFalse):
			return Bool(false), nil
		case uint64(simpleTrue):
			return Bool(true), nil
		case uint64(simpleNull):
			return Null{}, nil
		case uint64(simpleUndefined):
			return Undefined{}, nil
		default:
			return d.opts.SimpleFunc(uint8(length)), nil
		}
	}
}

// readByteString assembles a definite or chunked byte string into one
// owned slice.
func (d *decoder) readByteString(length uint64, indefinite bool) (Bytes, error) {
	if !indefinite {
		n, err := d.itemCount(length, 1)
		if err != nil {
			return nil, err
		}
		b, err := d.readBytes(n)
		if err != nil {
			return nil, err
		}
		return Bytes(b), nil
	}
	out := Bytes{}
	for {
		chunkLen, done, err := d.readChunkLength(majorTypeBytes)
		if err != nil {
			return nil, err
		}
		if done {
			return out, nil
		}
		n, err := d.itemCount(chunkLen, 1)
		if err != nil {
			return nil, err
		}
		out = append(out, d.buf[d.off:d.off+n]...)
		d.off += n
	}
}

// readTextString assembles a definite or chunked text string, decoding
// the encoded bytes of every chunk into one UTF-16 code unit sequence
// and materializing the string once the last chunk is in.
func (d *decoder) readTextString(length uint64, indefinite bool) (Text, error) {
	if !indefinite {
		n, err := d.itemCount(length, 1)
		if err != nil {
			return "", err
		}
		units, err := d.appendCodeUnits(nil, n)
		if err != nil {
			return "", err
		}
		return materializeText(units), nil
	}
	var units []uint16
	for {
		chunkLen, done, err := d.readChunkLength(majorTypeText)
		if err != nil {
			return "", err
		}
		if done {
			return materializeText(units), nil
		}
		n, err := d.itemCount(chunkLen, 1)
		if err != nil {
			return "", err
		}
		units, err = d.appendCodeUnits(units, n)
		if err != nil {
			return "", err
		}
	}
}

func (d *decoder) decodeArray(length uint64, indefinite bool, depth int) (Array, error) {
	if indefinite {
		arr := Array{}
		for {
			done, err := d.readBreak()
			if err != nil {
				return nil, err
			}
			if done {
				return arr, nil
			}
			v, err := d.decodeItem(depth + 1)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
	}
	// Every element is at least one byte on the wire.
	n, err := d.itemCount(length, 1)
	if err != nil {
		return nil, err
	}
	arr := make(Array, n)
	for i := range arr {
		v, err := d.decodeItem(depth + 1)
		if err != nil {
			return nil, err
		}
		arr[i] = v
	}
	return arr, nil
}

func (d *decoder) decodeMap(length uint64, indefinite bool, depth int) (Map, error) {
	if indefinite {
		m := Map{}
		for {
			done, err := d.readBreak()
			if err != nil {
				return nil, err
			}
			if done {
				return m, nil
			}
			key, err := d.decodeItem(depth + 1)
			if err != nil {
				return nil, err
			}
			value, err := d.decodeItem(depth + 1)
			if err != nil {
				return nil, err
			}
			m = m.set(key, value)
		}
	}
	// Every pair is at least two bytes on the wire.
	n, err := d.itemCount(length, 2)
	if err != nil {
		return nil, err
	}
	m := make(Map, 0, n)
	for i := 0; i < n; i++ {
		key, err := d.decodeItem(depth + 1)
		if err != nil {
			return nil, err
		}
		value, err := d.decodeItem(depth + 1)
		if err != nil {
			return nil, err
		}
		m = m.set(key, value)
	}
	return m, nil
}
