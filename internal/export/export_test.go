package export

import (
	"strings"
	"testing"

	"github.com/NishaKashyap1901/commitChronicle/internal/output"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"pdf", FormatPDF, false},
		{"PDF", FormatPDF, false},
		{"markdown", FormatMarkdown, false},
		{"md", FormatMarkdown, false},
		{"  Markdown  ", FormatMarkdown, false},
		{"docx", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if code := output.GetExitCode(err); code != output.ExitUserError {
					t.Errorf("exit code = %d, want %d", code, output.ExitUserError)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestAcknowledge(t *testing.T) {
	msg, err := Acknowledge(FormatPDF, 12)
	if err != nil {
		t.Fatalf("Acknowledge: %v", err)
	}
	if !strings.Contains(msg, "PDF") || !strings.Contains(msg, "12") {
		t.Errorf("message = %q", msg)
	}

	if _, err := Acknowledge("docx", 1); err == nil {
		t.Error("expected error for invalid format")
	}
}
