package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"table", FormatTable, false},
		{"", FormatTable, false},
		{"JSON", FormatJSON, false},
		{"yml", FormatYAML, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestPrinterSuccess(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, FormatTable, false).Success("done")
	if buf.String() != "done\n" {
		t.Errorf("expected plain output, got %q", buf.String())
	}

	buf.Reset()
	NewPrinter(&buf, FormatTable, true).Success("done")
	if !strings.Contains(buf.String(), "done") || !strings.Contains(buf.String(), "\033[32m") {
		t.Errorf("expected colored output, got %q", buf.String())
	}
}
