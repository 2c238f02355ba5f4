package specsheet

import (
	"fmt"
	"strings"

	"github.com/tsawler/specsheet/model"
	"github.com/tsawler/specsheet/reader"
)

// Warning is a non-fatal issue met during extraction: an unreadable page, an
// input line a parser could not use, or a duplicate resolved by policy.
// Warnings never change the extracted data.
type Warning struct {
	Source  string // "reader" or the parser name
	Page    int    // 1-indexed page, 0 when not page specific
	Line    int    // 1-indexed line in the scanned text, 0 when not line based
	Text    string // offending input, if any
	Message string
}

// String formats the warning on one line.
func (w Warning) String() string {
	var sb strings.Builder
	sb.WriteString(w.Source)
	if w.Page > 0 {
		fmt.Fprintf(&sb, ": page %d", w.Page)
	}
	if w.Line > 0 {
		fmt.Fprintf(&sb, ": line %d", w.Line)
	}
	sb.WriteString(": ")
	sb.WriteString(w.Message)
	if w.Text != "" {
		fmt.Fprintf(&sb, " (%q)", w.Text)
	}
	return sb.String()
}

// FormatWarnings joins warnings into a single string for logging.
func FormatWarnings(warnings []Warning) string {
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}

func diagnosticWarnings(diags []model.Diagnostic) []Warning {
	warnings := make([]Warning, 0, len(diags))
	for _, d := range diags {
		warnings = append(warnings, Warning{
			Source:  d.Parser,
			Line:    d.Line,
			Text:    d.Text,
			Message: d.Reason,
		})
	}
	return warnings
}

func issueWarnings(issues []reader.Issue) []Warning {
	warnings := make([]Warning, 0, len(issues))
	for _, i := range issues {
		warnings = append(warnings, Warning{
			Source:  "reader",
			Page:    i.Page,
			Message: i.Reason,
		})
	}
	return warnings
}
