package benchmarks

import (
	"encoding/hex"
	"testing"

	"github.com/airgauge/cbortree/cbor"
)

// reportHex is a five-field device report: device id, sequence number,
// a readings array of [name, value] pairs, a raw sensor blob, and a
// health flag. It is the workload shape cbordump sees in practice.
const reportHex = "a5" +
	"66646576696365" + "6b61697267617567652d3037" +
	"63736571" + "193039" +
	"6872656164696e6773" + "83" +
	"826b74656d7065726174757265fb4035800000000000" +
	"826868756d69646974791828" +
	"8263636f32190258" +
	"63726177" + "44deadbeef" +
	"626f6b" + "f5"

func reportBytes(tb testing.TB) []byte {
	tb.Helper()
	b, err := hex.DecodeString(reportHex)
	if err != nil {
		tb.Fatalf("bad fixture hex: %v", err)
	}
	return b
}

// reportIntf is the report as plain Go values, used to feed the
// comparison encoders that marshal from interface trees.
func reportIntf() map[string]any {
	return map[string]any{
		"device": "airgauge-07",
		"seq":    int64(12345),
		"readings": []any{
			[]any{"temperature", 21.5},
			[]any{"humidity", int64(40)},
			[]any{"co2", int64(600)},
		},
		"raw": []byte{0xde, 0xad, 0xbe, 0xef},
		"ok":  true,
	}
}

func TestReportFixtureShape(t *testing.T) {
	v, err := cbor.Decode(reportBytes(t))
	if err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	m, ok := v.(cbor.Map)
	if !ok {
		t.Fatalf("fixture is %T, want map", v)
	}
	if got, _ := m.Get(cbor.Text("device")); !cbor.Equal(got, cbor.Text("airgauge-07")) {
		t.Fatalf("device = %s", cbor.Diag(got))
	}
	if got, _ := m.Get(cbor.Text("seq")); !cbor.Equal(got, cbor.Int(12345)) {
		t.Fatalf("seq = %s", cbor.Diag(got))
	}
	readings, _ := m.Get(cbor.Text("readings"))
	arr, ok := readings.(cbor.Array)
	if !ok || len(arr) != 3 {
		t.Fatalf("readings = %s", cbor.Diag(readings))
	}
	if !cbor.Equal(arr[0], cbor.Array{cbor.Text("temperature"), cbor.Float(21.5)}) {
		t.Fatalf("temperature reading = %s", cbor.Diag(arr[0]))
	}
	if !cbor.Equal(arr[2], cbor.Array{cbor.Text("co2"), cbor.Int(600)}) {
		t.Fatalf("co2 reading = %s", cbor.Diag(arr[2]))
	}
	if got, _ := m.Get(cbor.Text("raw")); !cbor.Equal(got, cbor.Bytes{0xde, 0xad, 0xbe, 0xef}) {
		t.Fatalf("raw = %s", cbor.Diag(got))
	}
	if got, _ := m.Get(cbor.Text("ok")); !cbor.Equal(got, cbor.Bool(true)) {
		t.Fatalf("ok = %s", cbor.Diag(got))
	}
}
