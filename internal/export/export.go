// Package export handles timeline export requests. Export is currently an
// acknowledged request only: the format selector is validated and the user
// is told the export was received, but no file is produced.
package export

import (
	"fmt"
	"strings"

	"github.com/NishaKashyap1901/commitChronicle/internal/output"
)

// Format selects the requested export format.
type Format string

// Supported export formats.
const (
	FormatPDF      Format = "pdf"
	FormatMarkdown Format = "markdown"
)

// ParseFormat normalizes and validates a format selector.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatPDF:
		return FormatPDF, nil
	case FormatMarkdown, "md":
		return FormatMarkdown, nil
	default:
		return "", output.NewUserError(fmt.Sprintf("unsupported export format %q (expected pdf or markdown)", s))
	}
}

// Label returns the display name of the format.
func (f Format) Label() string {
	switch f {
	case FormatPDF:
		return "PDF"
	case FormatMarkdown:
		return "Markdown"
	default:
		return string(f)
	}
}

// Acknowledge validates the request and returns the acknowledgement
// message shown to the user.
func Acknowledge(format Format, eventCount int) (string, error) {
	if _, err := ParseFormat(string(format)); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s export of %d timeline events requested; generation is not yet available", format.Label(), eventCount), nil
}
