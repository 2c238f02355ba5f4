// Package output names and writes extraction results as indented JSON files.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/afero"
)

// Kinds name the result written to a file; they end every file name.
const (
	KindDimensions = "dimensions"
	KindTechSpecs  = "technical_specifications"
	KindFixedSpeed = "fixed_speed_specifications"
	KindVSD        = "vsd_technical_specifications"
	KindOptions    = "options"
	KindReport     = "report"
)

// UnknownPrefix replaces an empty file name prefix.
const UnknownPrefix = "UNKNOWN"

var unsafeChars = regexp.MustCompile(`[<>:"\\|?*]`)

// Sanitize makes s safe for a file name: slashes become dashes and the
// characters <>:"\|?* are removed.
func Sanitize(s string) string {
	s = strings.ReplaceAll(s, "/", "-")
	s = unsafeChars.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// FileName builds `<prefix>_"<group>"_..._<kind>.json`. Groups are quoted and
// omitted entirely when there are none.
func FileName(prefix string, groups []string, kind string) string {
	prefix = Sanitize(prefix)
	if prefix == "" {
		prefix = UnknownPrefix
	}

	parts := []string{prefix}
	for _, g := range groups {
		parts = append(parts, `"`+Sanitize(g)+`"`)
	}
	parts = append(parts, kind)
	return strings.Join(parts, "_") + ".json"
}

// Stem returns the base name of path without its extension, sanitized.
func Stem(path string) string {
	base := filepath.Base(path)
	return Sanitize(strings.TrimSuffix(base, filepath.Ext(base)))
}

// Encode writes v to w as JSON indented by indent spaces, followed by a
// newline. HTML characters are not escaped.
func Encode(w io.Writer, v any, indent int) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", strings.Repeat(" ", indent))
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// Writer persists results under a directory of a file system.
type Writer struct {
	fs     afero.Fs
	dir    string
	indent int
}

// NewWriter returns a Writer for dir on fs.
func NewWriter(fs afero.Fs, dir string, indent int) *Writer {
	return &Writer{fs: fs, dir: dir, indent: indent}
}

// Write encodes v into the file name inside the output directory, creating
// the directory when needed, and returns the file's path.
func (w *Writer) Write(name string, v any) (string, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, v, w.indent); err != nil {
		return "", err
	}

	if err := w.fs.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(w.dir, name)
	if err := afero.WriteFile(w.fs, path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
