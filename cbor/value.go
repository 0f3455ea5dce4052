package cbor

import (
	"bytes"
	"math"
)

// Value is a decoded CBOR value. The implementations form a closed set;
// consumers switch over Int, Bytes, Text, Array, Map, Tag, Bool, Null,
// Undefined, Simple and Float.
type Value interface {
	isValue()
}

var (
	_ Value = Int(0)
	_ Value = Bytes(nil)
	_ Value = Text("")
	_ Value = Array(nil)
	_ Value = Map(nil)
	_ Value = Tag{}
	_ Value = Bool(false)
	_ Value = Null{}
	_ Value = Undefined{}
	_ Value = Simple(0)
	_ Value = Float(0)
)

// Int is a CBOR integer (major types 0 and 1). Negative items decode to
// -1 minus the encoded magnitude.
type Int int64

// Bytes is a CBOR byte string (major type 2). The slice is owned by the
// decoded tree and never aliases the input buffer.
type Bytes []byte

// Text is a CBOR text string (major type 3).
type Text string

// Array is a CBOR array (major type 4).
type Array []Value

// Pair is one key/value entry of a Map.
type Pair struct {
	Key   Value
	Value Value
}

// Map is a CBOR map (major type 5) as an insertion-ordered pair list.
// Keys may be any value. Inserting a key equal to an existing one
// replaces that entry in place, so the first occurrence fixes the
// position and the last occurrence fixes the value.
type Map []Pair

// Get returns the value stored under key and whether the key is present.
func (m Map) Get(key Value) (Value, bool) {
	for _, p := range m {
		if Equal(p.Key, key) {
			return p.Value, true
		}
	}
	return nil, false
}

func (m Map) set(key, value Value) Map {
	for i, p := range m {
		if Equal(p.Key, key) {
			m[i].Value = value
			return m
		}
	}
	return append(m, Pair{Key: key, Value: value})
}

// Tag is a tagged item (major type 6). The decoder produces Tag only
// when the configured TagFunc preserves the number; see KeepTags.
type Tag struct {
	Number  uint64
	Content Value
}

// Bool is a CBOR boolean (simple values 20 and 21).
type Bool bool

// Null is the CBOR null value (simple value 22).
type Null struct{}

// Undefined is the CBOR undefined value (simple value 23).
type Undefined struct{}

// Simple is an unassigned simple value preserved by a SimpleFunc; see
// KeepSimpleValues.
type Simple uint8

// Float is a CBOR floating-point number. All three encoded widths widen
// to float64.
type Float float64

func (Int) isValue()       {}
func (Bytes) isValue()     {}
func (Text) isValue()      {}
func (Array) isValue()     {}
func (Map) isValue()       {}
func (Tag) isValue()       {}
func (Bool) isValue()      {}
func (Null) isValue()      {}
func (Undefined) isValue() {}
func (Simple) isValue()    {}
func (Float) isValue()     {}

// Equal reports structural equality of two decoded values. Floats
// compare by bit pattern, so NaN equals NaN and positive and negative
// zero differ. Maps compare without regard to entry order.
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case Int:
		y, ok := b.(Int)
		return ok && x == y
	case Bytes:
		y, ok := b.(Bytes)
		return ok && bytes.Equal(x, y)
	case Text:
		y, ok := b.(Text)
		return ok && x == y
	case Array:
		y, ok := b.(Array)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	case Map:
		y, ok := b.(Map)
		if !ok || len(x) != len(y) {
			return false
		}
		for _, p := range x {
			v, found := y.Get(p.Key)
			if !found || !Equal(p.Value, v) {
				return false
			}
		}
		return true
	case Tag:
		y, ok := b.(Tag)
		return ok && x.Number == y.Number && Equal(x.Content, y.Content)
	case Bool:
		y, ok := b.(Bool)
		return ok && x == y
	case Null:
		_, ok := b.(Null)
		return ok
	case Undefined:
		_, ok := b.(Undefined)
		return ok
	case Simple:
		y, ok := b.(Simple)
		return ok && x == y
	case Float:
		y, ok := b.(Float)
		return ok && math.Float64bits(float64(x)) == math.Float64bits(float64(y))
	}
	return false
}
