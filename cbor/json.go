package cbor

import (
	"encoding/base64"
	"encoding/json"
	"math"
	"strconv"
)

// JSON renders a decoded value as a JSON document.
//
// CBOR is richer than JSON, so the projection is lossy at the edges.
// Byte strings become standard base64 strings, undefined and the
// non-finite floats become null, non-text map keys are coerced to their
// diagnostic text, preserved tags render as {"$tag":N,"$":content} and
// preserved simple values as {"$simple":N}.
func JSON(v Value) []byte {
	return AppendJSON(nil, v)
}

// AppendJSON appends the JSON rendering of v to dst and returns the
// extended slice.
func AppendJSON(dst []byte, v Value) []byte {
	switch x := v.(type) {
	case Int:
		return strconv.AppendInt(dst, int64(x), 10)
	case Bytes:
		dst = append(dst, '"')
		dst = base64.StdEncoding.AppendEncode(dst, x)
		return append(dst, '"')
	case Text:
		return appendJSONString(dst, string(x))
	case Array:
		dst = append(dst, '[')
		for i, e := range x {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = AppendJSON(dst, e)
		}
		return append(dst, ']')
	case Map:
		dst = append(dst, '{')
		for i, p := range x {
			if i > 0 {
				dst = append(dst, ',')
			}
			if t, ok := p.Key.(Text); ok {
				dst = appendJSONString(dst, string(t))
			} else {
				dst = appendJSONString(dst, Diag(p.Key))
			}
			dst = append(dst, ':')
			dst = AppendJSON(dst, p.Value)
		}
		return append(dst, '}')
	case Tag:
		dst = append(dst, `{"$tag":`...)
		dst = strconv.AppendUint(dst, x.Number, 10)
		dst = append(dst, `,"$":`...)
		dst = AppendJSON(dst, x.Content)
		return append(dst, '}')
	case Bool:
		if x {
			return append(dst, "true"...)
		}
		return append(dst, "false"...)
	case Simple:
		dst = append(dst, `{"$simple":`...)
		dst = strconv.AppendUint(dst, uint64(x), 10)
		return append(dst, '}')
	case Float:
		f := float64(x)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return append(dst, "null"...)
		}
		return strconv.AppendFloat(dst, f, 'g', -1, 64)
	default: // Null, Undefined
		return append(dst, "null"...)
	}
}

func appendJSONString(dst []byte, s string) []byte {
	b, _ := json.Marshal(s)
	return append(dst, b...)
}
