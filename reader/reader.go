package reader

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/tsawler/specsheet/format"
	"github.com/tsawler/specsheet/model"
	"github.com/tsawler/specsheet/tables"
)

// ErrNotPDF is returned when a file's content is not a PDF document.
var ErrNotPDF = errors.New("not a PDF document")

// TextSource selects how page text is produced.
type TextSource int

const (
	// TextLayout rebuilds visual lines from positioned runs: runs are
	// grouped into rows by baseline and read left to right.
	TextLayout TextSource = iota
	// TextPlain uses the PDF library's plain text, which only breaks lines
	// on BT and T* operators.
	TextPlain
)

// String returns the name of the text source.
func (s TextSource) String() string {
	switch s {
	case TextPlain:
		return "plain"
	default:
		return "layout"
	}
}

// ParseTextSource converts a configuration string to a TextSource.
func ParseTextSource(s string) (TextSource, error) {
	switch strings.ToLower(s) {
	case "", "layout":
		return TextLayout, nil
	case "plain":
		return TextPlain, nil
	default:
		return TextLayout, fmt.Errorf("unknown text source %q", s)
	}
}

// Issue records a page that could not be fully read.
type Issue struct {
	Page   int
	Reason string
}

// String formats the issue for display.
func (i Issue) String() string {
	return fmt.Sprintf("page %d: %s", i.Page, i.Reason)
}

// Reader represents an open PDF file
type Reader struct {
	file     *os.File
	pdf      *pdf.Reader
	path     string
	detector tables.Detector
	source   TextSource
}

// Option configures a Reader.
type Option func(*Reader)

// WithDetector replaces the table detector.
func WithDetector(d tables.Detector) Option {
	return func(r *Reader) {
		if d != nil {
			r.detector = d
		}
	}
}

// WithTextSource selects how page text is produced.
func WithTextSource(s TextSource) Option {
	return func(r *Reader) {
		r.source = s
	}
}

// Open checks that filename holds a PDF and opens it.
func Open(filename string, opts ...Option) (*Reader, error) {
	f, mime, err := format.Sniff(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	if f != format.PDF {
		return nil, fmt.Errorf("%s is %s: %w", filename, mime, ErrNotPDF)
	}

	file, pr, err := pdf.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to parse PDF: %w", err)
	}

	r := &Reader{
		file:     file,
		pdf:      pr,
		path:     filename,
		detector: tables.NewGeometricDetector(),
		source:   TextLayout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Close closes the underlying file
func (r *Reader) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// PageCount returns the number of pages
func (r *Reader) PageCount() int {
	return r.pdf.NumPage()
}

// Metadata returns the document information dictionary entries.
func (r *Reader) Metadata() model.Metadata {
	info := r.pdf.Trailer().Key("Info")
	return model.Metadata{
		Title:    info.Key("Title").Text(),
		Author:   info.Key("Author").Text(),
		Producer: info.Key("Producer").Text(),
		Source:   r.path,
	}
}

// ReadPage reads page n (1-indexed). Problems with the page content are
// returned as issues; the error is reserved for an out of range page.
func (r *Reader) ReadPage(n int) (*model.Page, []Issue, error) {
	if n < 1 || n > r.PageCount() {
		return nil, nil, fmt.Errorf("page %d out of range [1, %d]", n, r.PageCount())
	}

	page := model.NewPage("")
	p := r.pdf.Page(n)
	if p.V.IsNull() {
		return page, []Issue{{Page: n, Reason: "page object is missing"}}, nil
	}

	var issues []Issue

	runs, err := contentRuns(p)
	if err != nil {
		issues = append(issues, Issue{Page: n, Reason: err.Error()})
	}

	switch r.source {
	case TextPlain:
		text, err := plainText(p)
		if err != nil {
			issues = append(issues, Issue{Page: n, Reason: err.Error()})
		}
		page.Text = text
	default:
		page.Text = strings.Join(tables.Lines(runs), "\n")
	}

	found, err := r.detector.Detect(runs)
	if err != nil {
		issues = append(issues, Issue{Page: n, Reason: fmt.Sprintf("%s table detection: %v", r.detector.Name(), err)})
	}
	for _, t := range found {
		page.AddTable(t)
	}

	return page, issues, nil
}

// Document reads every page into a document.
func (r *Reader) Document() (*model.Document, []Issue, error) {
	doc := model.NewDocument()
	doc.Metadata = r.Metadata()

	var issues []Issue
	for n := 1; n <= r.PageCount(); n++ {
		page, pageIssues, err := r.ReadPage(n)
		if err != nil {
			return nil, issues, err
		}
		issues = append(issues, pageIssues...)
		doc.AddPage(page)
	}
	return doc, issues, nil
}

// Load opens filename, reads every page and closes it.
func Load(filename string, opts ...Option) (*model.Document, []Issue, error) {
	r, err := Open(filename, opts...)
	if err != nil {
		return nil, nil, err
	}
	defer r.Close()

	return r.Document()
}

// plainText returns the text layer of p. The PDF library panics on some
// malformed content streams.
func plainText(p pdf.Page) (text string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			text, err = "", fmt.Errorf("panic reading text: %v", rec)
		}
	}()

	text, err = p.GetPlainText(nil)
	if err != nil {
		return "", fmt.Errorf("failed to read text: %w", err)
	}
	return text, nil
}

// contentRuns returns the positioned runs of p.
func contentRuns(p pdf.Page) (runs []tables.Run, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			runs, err = nil, fmt.Errorf("panic reading content: %v", rec)
		}
	}()

	for _, t := range p.Content().Text {
		runs = append(runs, tables.Run{
			X:        t.X,
			Y:        t.Y,
			W:        t.W,
			FontSize: t.FontSize,
			Text:     t.S,
		})
	}
	return runs, nil
}
