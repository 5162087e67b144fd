// internal/transport/usb_test.go
package transport

import (
	"testing"

	"github.com/google/gousb"
)

func TestParseHexID(t *testing.T) {
	tests := []struct {
		input   string
		want    gousb.ID
		wantErr bool
	}{
		{input: "0x06bc", want: 0x06bc},
		{input: "0x0000", want: 0x0000},
		{input: "0X04B8", want: 0x04b8},
		{input: "06bc", want: 0x06bc},
		{input: "0202", want: 0x0202},
		{input: "not-hex", wantErr: true},
		{input: "", wantErr: true},
		{input: "0x10000", wantErr: true},
	}

	for _, tt := range tests {
		got, err := parseHexID(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseHexID(%q): expected error, got %v", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseHexID(%q): %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseHexID(%q): got %v, want %v", tt.input, got, tt.want)
		}
	}
}
