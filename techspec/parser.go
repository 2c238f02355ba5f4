package techspec

import (
	"github.com/tsawler/specsheet/model"
	"github.com/tsawler/specsheet/text"
)

// Layout selects which table layout a document uses.
type Layout string

const (
	// LayoutSections: several named sections, each with frequency blocks.
	LayoutSections Layout = "sections"
	// LayoutFrequency: one uniform table keyed by frequency only.
	LayoutFrequency Layout = "frequency"
)

// Config controls technical specification extraction.
type Config struct {
	// HeaderLabel is the heading that precedes a section line. It is matched
	// case-insensitively and prefixes every section key.
	HeaderLabel string

	// Policy resolves a frequency marker repeated within one section.
	Policy model.DuplicatePolicy
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		HeaderLabel: DefaultHeaderLabel,
		Policy:      model.PolicyOverwrite,
	}
}

// ParseSections scans s with the section-keyed layout. Sections are keyed by
// the header label followed by the section line, for example
// "TECHNICAL SPECIFICATIONS ZR 110-145 (FF)".
func ParseSections(s string, cfg Config) (model.TechSpecResult, []model.Diagnostic) {
	if cfg.HeaderLabel == "" {
		cfg.HeaderLabel = DefaultHeaderLabel
	}
	sc := newScanner(sectionTransitions, sectionClassifier{header: cfg.HeaderLabel}, cfg.HeaderLabel, cfg.Policy, true)
	sc.run(text.Lines(s))
	return sc.result, sc.diags
}

// ParseFrequencyTable scans s with the single-table layout. Only lines that
// are exactly "50 Hz" or "60 Hz" switch frequency, and only lines that are in
// their entirety a row with full-feature weights are accepted.
func ParseFrequencyTable(s string, cfg Config) (model.FrequencyBlocks, []model.Diagnostic) {
	sc := newScanner(frequencyTransitions, frequencyClassifier{}, "", cfg.Policy, false)
	sc.run(text.Lines(s))
	return sc.result[""], sc.diags
}

// Parse runs ParseSections over the text of every page of doc.
func Parse(doc *model.Document, cfg Config) (model.TechSpecResult, []model.Diagnostic) {
	return ParseSections(text.JoinPages(doc.PageTexts(), "\n"), cfg)
}

// ParseTable runs ParseFrequencyTable over the text of every page of doc.
func ParseTable(doc *model.Document, cfg Config) (model.FrequencyBlocks, []model.Diagnostic) {
	return ParseFrequencyTable(text.JoinPages(doc.PageTexts(), "\n"), cfg)
}
