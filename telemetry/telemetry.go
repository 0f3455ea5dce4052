// Package telemetry extracts named sensor readings from decoded CBOR
// report payloads.
package telemetry

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/airgauge/cbortree/cbor"
)

// Reading is one decoded sensor report. Temperature and humidity are
// rounded to one decimal place, CO2 to a whole number.
type Reading struct {
	Temperature float64
	Humidity    float64
	CO2         float64
}

// ErrBadReport is returned when a decoded payload is not the expected
// top-level array.
var ErrBadReport = errors.New("telemetry: report is not an array")

// MissingReadingError is returned when a report carries no entry for one
// of the required keys.
type MissingReadingError struct {
	Key string
}

func (e MissingReadingError) Error() string {
	return "telemetry: report has no " + e.Key + " reading"
}

// BadReadingError is returned when a report entry under a known key
// holds a non-numeric value.
type BadReadingError struct {
	Key string
}

func (e BadReadingError) Error() string {
	return "telemetry: " + e.Key + " reading is not numeric"
}

// DecodePayload converts a hex transport payload into raw bytes.
// Whitespace anywhere in the string is ignored.
func DecodePayload(s string) ([]byte, error) {
	compact := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r':
			return -1
		}
		return r
	}, s)
	b, err := hex.DecodeString(compact)
	if err != nil {
		return nil, fmt.Errorf("telemetry: decode hex payload: %w", err)
	}
	return b, nil
}

// readingKeys lists the required keys in the order they are reported
// missing.
var readingKeys = [...]string{"temperature", "humidity", "co2"}

// Extract pulls the three sensor readings out of a decoded report. The
// report is an array whose entries of interest are arrays of at least
// two elements with a text key first. Entries with any other shape, and
// entries under unknown keys, are skipped. When a key repeats, the last
// occurrence wins.
func Extract(v cbor.Value) (Reading, error) {
	root, ok := v.(cbor.Array)
	if !ok {
		return Reading{}, ErrBadReport
	}
	found := make(map[string]float64, len(readingKeys))
	for _, elem := range root {
		entry, ok := elem.(cbor.Array)
		if !ok || len(entry) < 2 {
			continue
		}
		key, ok := entry[0].(cbor.Text)
		if !ok {
			continue
		}
		name := string(key)
		switch name {
		case "temperature", "humidity", "co2":
		default:
			continue
		}
		num, ok := numeric(entry[1])
		if !ok {
			return Reading{}, BadReadingError{Key: name}
		}
		found[name] = num
	}
	for _, k := range readingKeys {
		if _, ok := found[k]; !ok {
			return Reading{}, MissingReadingError{Key: k}
		}
	}
	return Reading{
		Temperature: roundTenth(found["temperature"]),
		Humidity:    roundTenth(found["humidity"]),
		CO2:         math.Round(found["co2"]),
	}, nil
}

// ParseReport decodes a hex transport payload and extracts its readings.
func ParseReport(hexPayload string) (Reading, error) {
	raw, err := DecodePayload(hexPayload)
	if err != nil {
		return Reading{}, err
	}
	v, err := cbor.Decode(raw)
	if err != nil {
		return Reading{}, fmt.Errorf("telemetry: decode payload: %w", err)
	}
	return Extract(v)
}

func numeric(v cbor.Value) (float64, bool) {
	switch x := v.(type) {
	case cbor.Int:
		return float64(x), true
	case cbor.Float:
		return float64(x), true
	}
	return 0, false
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
