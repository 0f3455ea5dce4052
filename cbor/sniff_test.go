package cbor

import "testing"

func TestIsLikelyJSON(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want bool
	}{
		{"object", []byte(`{"a":1}`), true},
		{"array", []byte(`[1,2]`), true},
		{"string", []byte(`"hi"`), true},
		{"number", []byte(`42`), true},
		{"negative number", []byte(`-1`), true},
		{"literal", []byte(`true`), true},
		{"leading whitespace", []byte("  \n\t{}"), true},
		{"empty", nil, false},
		{"only whitespace", []byte("   "), false},
		{"cbor map", []byte{0xa1, 0x01, 0x02}, false},
		{"cbor float header", []byte{0xfb, 0x3f, 0xf0, 0, 0, 0, 0, 0, 0}, false},
		{"invalid utf8", []byte{'{', 0xff, '}'}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsLikelyJSON(tt.data); got != tt.want {
				t.Fatalf("IsLikelyJSON(%q) = %v, want %v", tt.data, got, tt.want)
			}
		})
	}
}
