package cbor

import (
	"errors"
	"strconv"
)

// ErrDepthExceeded is returned when item nesting exceeds the configured
// depth limit before the decoder recurses further.
var ErrDepthExceeded = errors.New("cbor: max depth exceeded")

// MalformedLengthError is returned when an item or chunk header carries
// one of the reserved additional information values 28, 29 or 30.
type MalformedLengthError struct {
	AddInfo uint8 // the reserved value
	Offset  int   // position of the header byte
}

func (e MalformedLengthError) Error() string {
	return "cbor: reserved additional information " + strconv.Itoa(int(e.AddInfo)) +
		" in header at offset " + strconv.Itoa(e.Offset)
}

// InvalidChunkError is returned when a chunk inside an indefinite-length
// string is itself indefinite or does not repeat the enclosing string's
// major type.
type InvalidChunkError struct {
	Want       uint8 // major type of the enclosing string
	Got        uint8 // major type of the offending chunk
	Indefinite bool  // chunk declared an indefinite length
	Offset     int   // position of the chunk header byte
}

func (e InvalidChunkError) Error() string {
	if e.Indefinite {
		return "cbor: nested indefinite length inside indefinite string at offset " +
			strconv.Itoa(e.Offset)
	}
	return "cbor: chunk of major type " + strconv.Itoa(int(e.Got)) +
		" inside indefinite string of major type " + strconv.Itoa(int(e.Want)) +
		" at offset " + strconv.Itoa(e.Offset)
}

// InvalidIndefiniteError is returned when the indefinite-length sentinel
// appears under a major type that cannot be indefinite. Only byte
// strings, text strings, arrays and maps can. A break marker outside any
// indefinite-length item reports the same error for major type 7.
type InvalidIndefiniteError struct {
	Major  uint8
	Offset int
}

func (e InvalidIndefiniteError) Error() string {
	return "cbor: indefinite length not valid for major type " + strconv.Itoa(int(e.Major)) +
		" at offset " + strconv.Itoa(e.Offset)
}

// OutOfBoundsError is returned when a read would pass the end of the
// input buffer, including declared lengths that no suffix of the input
// could satisfy.
type OutOfBoundsError struct {
	Offset int // position the read started at
	Need   int // bytes the read required
	Length int // total input length
}

func (e OutOfBoundsError) Error() string {
	return "cbor: need " + strconv.Itoa(e.Need) + " bytes at offset " + strconv.Itoa(e.Offset) +
		" but input is " + strconv.Itoa(e.Length) + " bytes"
}

// TrailingBytesError is returned when input remains after the single
// top-level item.
type TrailingBytesError struct {
	Offset int // position right after the decoded item
	Length int // total input length
}

func (e TrailingBytesError) Error() string {
	return "cbor: " + strconv.Itoa(e.Length-e.Offset) + " trailing bytes after item ending at offset " +
		strconv.Itoa(e.Offset)
}

// IntOverflow is returned when an integer item's magnitude does not fit
// Int's signed 64-bit range.
type IntOverflow struct {
	Value    uint64 // encoded magnitude
	Negative bool   // item was a negative integer
}

func (e IntOverflow) Error() string {
	if e.Negative {
		return "cbor: -1-" + strconv.FormatUint(e.Value, 10) + " overflows int64"
	}
	return "cbor: " + strconv.FormatUint(e.Value, 10) + " overflows int64"
}
