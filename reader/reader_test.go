package reader

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tsawler/specsheet/internal/pdftest"
	"github.com/tsawler/specsheet/model"
	"github.com/tsawler/specsheet/tables"
	"github.com/tsawler/specsheet/text"
)

// ============================================================================
// Opening
// ============================================================================

func TestOpenNonExistent(t *testing.T) {
	_, err := Open("/nonexistent/file.pdf")
	if err == nil {
		t.Fatal("expected error when opening non-existent file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Open() error = %v, want fs.ErrNotExist", err)
	}
}

func TestOpenNotPDF(t *testing.T) {
	path := pdftest.WriteTemp(t, "sheet.pdf", "TECHNICAL SPECIFICATIONS\n50 Hz\n")

	_, err := Open(path)
	if !errors.Is(err, ErrNotPDF) {
		t.Errorf("Open() error = %v, want ErrNotPDF", err)
	}
}

func TestOpenAndRead(t *testing.T) {
	path := pdftest.WriteTemp(t, "sheet.pdf", pdftest.Build("ZR ZT 110-275",
		pdftest.TextStream("Oil-free rotary screw compressors", "ZR/ZT 110-275 (FF)"),
		pdftest.TextStream("TECHNICAL SPECIFICATIONS", "50 Hz"),
	))

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer r.Close()

	if got := r.PageCount(); got != 2 {
		t.Fatalf("PageCount() = %d, want 2", got)
	}

	meta := r.Metadata()
	if meta.Title != "ZR ZT 110-275" {
		t.Errorf("Metadata().Title = %q", meta.Title)
	}
	if meta.Source != path {
		t.Errorf("Metadata().Source = %q, want %q", meta.Source, path)
	}

	doc, issues, err := r.Document()
	if err != nil {
		t.Fatalf("Document() error = %v", err)
	}
	if len(issues) != 0 {
		t.Errorf("Document() issues = %v, want none", issues)
	}
	if doc.PageCount() != 2 {
		t.Fatalf("doc.PageCount() = %d, want 2", doc.PageCount())
	}
	if diff := cmp.Diff([]string{"TECHNICAL SPECIFICATIONS", "50 Hz"}, text.Lines(doc.GetPage(2).Text)); diff != "" {
		t.Errorf("page 2 lines mismatch (-want +got):\n%s", diff)
	}
}

func TestReadPageOutOfRange(t *testing.T) {
	path := pdftest.WriteTemp(t, "sheet.pdf", pdftest.Build("x", pdftest.TextStream("only page")))

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer r.Close()

	for _, n := range []int{0, 2, -1} {
		if _, _, err := r.ReadPage(n); err == nil {
			t.Errorf("ReadPage(%d) should fail", n)
		}
	}
}

func TestDefaultTextSourceKeepsLines(t *testing.T) {
	path := pdftest.WriteTemp(t, "sheet.pdf", pdftest.Build("x", pdftest.TextStream(
		"Oil-free rotary screw compressors",
		"ZR/ZT (Oil-Free)",
		"ZR 110 & ZT 110",
	)))

	doc, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	page := doc.GetPage(1).Text
	if strings.HasPrefix(page, "\n") {
		t.Errorf("page text starts with a blank line: %q", page)
	}
	want := []string{"Oil-free rotary screw compressors", "ZR/ZT (Oil-Free)", "ZR 110 & ZT 110"}
	if diff := cmp.Diff(want, text.Lines(page)); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestPlainTextSource(t *testing.T) {
	path := pdftest.WriteTemp(t, "sheet.pdf", pdftest.Build("x", pdftest.TextStream("TECHNICAL SPECIFICATIONS", "50 Hz")))

	doc, _, err := Load(path, WithTextSource(TextPlain))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	page := doc.GetPage(1).Text
	if !strings.Contains(page, "TECHNICAL SPECIFICATIONS") || !strings.Contains(page, "50 Hz") {
		t.Errorf("plain text = %q, want both lines' text", page)
	}
}

type countingDetector struct {
	tables.GeometricDetector
	calls int
}

func (d *countingDetector) Detect(runs []tables.Run) ([]*model.Table, error) {
	d.calls++
	return nil, nil
}

func TestWithDetector(t *testing.T) {
	path := pdftest.WriteTemp(t, "sheet.pdf", pdftest.Build("x", pdftest.TextStream("a"), pdftest.TextStream("b")))

	d := &countingDetector{}
	if _, _, err := Load(path, WithDetector(d)); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if d.calls != 2 {
		t.Errorf("detector called %d times, want 2", d.calls)
	}
}

type failingDetector struct {
	tables.GeometricDetector
}

func (failingDetector) Name() string { return "failing" }

func (failingDetector) Detect([]tables.Run) ([]*model.Table, error) {
	return nil, errors.New("no grid")
}

func TestDetectorErrorIsIssue(t *testing.T) {
	path := pdftest.WriteTemp(t, "sheet.pdf", pdftest.Build("x", pdftest.TextStream("50 Hz")))

	doc, issues, err := Load(path, WithDetector(&failingDetector{}))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if doc.PageCount() != 1 {
		t.Fatalf("PageCount() = %d, want 1", doc.PageCount())
	}

	want := []Issue{{Page: 1, Reason: "failing table detection: no grid"}}
	if diff := cmp.Diff(want, issues); diff != "" {
		t.Errorf("issues mismatch (-want +got):\n%s", diff)
	}
}

func TestParseTextSource(t *testing.T) {
	tests := []struct {
		in      string
		want    TextSource
		wantErr bool
	}{
		{"", TextLayout, false},
		{"plain", TextPlain, false},
		{"LAYOUT", TextLayout, false},
		{"ocr", TextLayout, true},
	}

	for _, tt := range tests {
		got, err := ParseTextSource(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseTextSource(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseTextSource(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// TestWithRealPDF reads a real spec sheet if one is available
func TestWithRealPDF(t *testing.T) {
	pdfPath := filepath.Join("..", "testdata", "ZR-ZT-110-275.pdf")
	if _, err := os.Stat(pdfPath); os.IsNotExist(err) {
		t.Skip("test PDF not found:", pdfPath)
	}

	doc, _, err := Load(pdfPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if doc.PageCount() == 0 {
		t.Error("expected at least one page")
	}
	if doc.FirstPageText() == "" {
		t.Error("expected text on the first page")
	}
}
