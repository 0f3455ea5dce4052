package cbor

import "unicode/utf8"

// IsLikelyJSON reports whether the given bytes look like JSON text rather
// than a CBOR item. It is a heuristic, not a formal discriminator: the
// data must be valid UTF-8 and its first non-whitespace byte must start a
// JSON value. Most CBOR payloads fail one of the two.
func IsLikelyJSON(b []byte) bool {
	if !utf8.Valid(b) {
		return false
	}
	i := 0
	for i < len(b) {
		switch b[i] {
		case ' ', '\n', '\r', '\t':
			i++
			continue
		}
		break
	}
	if i >= len(b) {
		return false
	}
	switch c := b[i]; {
	case c == '{' || c == '[' || c == '"' || c == '-':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == 't' || c == 'f' || c == 'n':
		return true
	}
	return false
}
