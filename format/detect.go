// Package format identifies spec-sheet input files by content.
package format

import (
	"fmt"
	"io"
	"os"

	"github.com/gabriel-vasile/mimetype"
)

// MIMEPDF is the media type of a PDF document.
const MIMEPDF = "application/pdf"

// Format represents a supported document format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// PDF indicates a PDF document.
	PDF
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case PDF:
		return "PDF"
	default:
		return "Unknown"
	}
}

// DetectFromReader inspects the first bytes of r to determine the format and
// also returns the detected media type.
func DetectFromReader(r io.Reader) (Format, string, error) {
	mtype, err := mimetype.DetectReader(r)
	if err != nil {
		return Unknown, "", fmt.Errorf("failed to sniff content: %w", err)
	}
	return fromMIME(mtype), mtype.String(), nil
}

// Sniff determines the format of the file at path from its content and
// also returns the detected media type.
func Sniff(path string) (Format, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return Unknown, "", fmt.Errorf("failed to sniff %s: %w", path, err)
	}
	defer f.Close()

	return DetectFromReader(f)
}

func fromMIME(mtype *mimetype.MIME) Format {
	if mtype.Is(MIMEPDF) {
		return PDF
	}
	return Unknown
}
