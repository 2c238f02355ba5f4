// Package pdftest builds small in-memory PDFs for tests.
package pdftest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Build returns a valid PDF with one page per content stream and a correct
// cross-reference table. Title is stored in the document information
// dictionary.
func Build(title string, contents ...string) string {
	var objects []string

	kids := make([]string, len(contents))
	for i := range contents {
		kids[i] = fmt.Sprintf("%d 0 R", 5+2*i)
	}

	objects = append(objects,
		"<< /Type /Catalog /Pages 2 0 R >>",
		fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(contents)),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>",
		fmt.Sprintf("<< /Title (%s) /Producer (specsheet tests) >>", title),
	)
	for i, c := range contents {
		objects = append(objects,
			fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] "+
				"/Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>", 6+2*i),
			fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(c), c),
		)
	}

	var sb strings.Builder
	sb.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = sb.Len()
		fmt.Fprintf(&sb, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := sb.Len()
	fmt.Fprintf(&sb, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&sb, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&sb, "trailer\n<< /Size %d /Root 1 0 R /Info 4 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return sb.String()
}

// TextStream returns a content stream showing each line 15 points below the
// previous one in 12 point Helvetica.
func TextStream(lines ...string) string {
	var sb strings.Builder
	sb.WriteString("BT /F1 12 Tf 50 700 Td")
	for i, line := range lines {
		if i > 0 {
			sb.WriteString(" 0 -15 Td")
		}
		fmt.Fprintf(&sb, " (%s) Tj", line)
	}
	sb.WriteString(" ET")
	return sb.String()
}

// WriteTemp writes content to name inside a test temp directory and returns
// the path.
func WriteTemp(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	return path
}
