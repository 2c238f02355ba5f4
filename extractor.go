package specsheet

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/tsawler/specsheet/dimension"
	"github.com/tsawler/specsheet/model"
	"github.com/tsawler/specsheet/options"
	"github.com/tsawler/specsheet/reader"
	"github.com/tsawler/specsheet/techspec"
	"github.com/tsawler/specsheet/vsd"
)

// Extractor provides a fluent interface for extracting spec-sheet records.
// Each configuration method returns a new Extractor instance, making it
// safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source: a file to read, or a document already loaded
	filename string
	doc      *model.Document

	// Configuration
	options extractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Extractor with a deep copy of options.
// This ensures immutability - each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename: e.filename,
		doc:      e.doc,
		options:  e.options.clone(),
		err:      e.err,
	}
}

// fail returns a copy carrying err. The first error wins.
func (e *Extractor) fail(err error) *Extractor {
	newExt := e.clone()
	if newExt.err == nil {
		newExt.err = err
	}
	return newExt
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// Pages specifies which pages to extract from (1-indexed).
// Multiple calls are cumulative.
//
// Example:
//
//	dims, _, err := specsheet.Open("sheet.pdf").Pages(1, 2).Dimensions()
func (e *Extractor) Pages(pages ...int) *Extractor {
	newExt := e.clone()
	newExt.options.pages = append(newExt.options.pages, pages...)
	return newExt
}

// PageRange specifies a range of pages to extract (1-indexed, inclusive).
//
// Example:
//
//	specs, _, err := specsheet.Open("sheet.pdf").PageRange(3, 5).TechSpecs()
func (e *Extractor) PageRange(start, end int) *Extractor {
	if start > end {
		return e.fail(fmt.Errorf("invalid page range %d-%d", start, end))
	}
	newExt := e.clone()
	for i := start; i <= end; i++ {
		newExt.options.pages = append(newExt.options.pages, i)
	}
	return newExt
}

// HeaderLabel sets the heading that precedes each technical specification
// section. Matching ignores case.
func (e *Extractor) HeaderLabel(label string) *Extractor {
	if label == "" {
		return e.fail(errors.New("header label must not be empty"))
	}
	newExt := e.clone()
	newExt.options.headerLabel = label
	return newExt
}

// FamilyToken sets the family-code token that marks model group lines on
// the first page.
func (e *Extractor) FamilyToken(token string) *Extractor {
	if token == "" {
		return e.fail(errors.New("family token must not be empty"))
	}
	newExt := e.clone()
	newExt.options.familyToken = token
	return newExt
}

// Scoring replaces the options matrix scoring thresholds.
func (e *Extractor) Scoring(cfg options.ScoreConfig) *Extractor {
	if err := cfg.Validate(); err != nil {
		return e.fail(fmt.Errorf("invalid scoring: %w", err))
	}
	newExt := e.clone()
	newExt.options.scoring = cfg
	return newExt
}

// Policies sets how repeated keys are resolved. Fields left empty keep
// overwrite.
//
// Example:
//
//	specs, _, err := specsheet.Open("sheet.pdf").
//	    Policies(model.Policies{FrequencyBlocks: model.PolicyAppend}).
//	    TechSpecs()
func (e *Extractor) Policies(p model.Policies) *Extractor {
	defaults := model.DefaultPolicies()
	if p.Dimensions == "" {
		p.Dimensions = defaults.Dimensions
	}
	if p.FrequencyBlocks == "" {
		p.FrequencyBlocks = defaults.FrequencyBlocks
	}
	if p.VSDStages == "" {
		p.VSDStages = defaults.VSDStages
	}
	if err := p.Validate(); err != nil {
		return e.fail(fmt.Errorf("invalid policies: %w", err))
	}
	newExt := e.clone()
	newExt.options.policies = p
	return newExt
}

// TextSource selects how page text is read from the PDF. It has no effect
// on an Extractor created with FromDocument.
func (e *Extractor) TextSource(src reader.TextSource) *Extractor {
	newExt := e.clone()
	newExt.options.textSource = src
	return newExt
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Document returns the document the parsers see: every selected page with
// its text and table grids.
func (e *Extractor) Document() (*model.Document, []Warning, error) {
	return e.load()
}

// Dimensions extracts the model groups and their dimension tables.
//
// Example:
//
//	dims, warnings, err := specsheet.Open("sheet.pdf").Dimensions()
func (e *Extractor) Dimensions() (*model.DimensionResult, []Warning, error) {
	doc, warnings, err := e.load()
	if err != nil {
		return nil, warnings, err
	}
	result, diags := dimension.Parse(doc, e.dimensionConfig())
	return result, append(warnings, diagnosticWarnings(diags)...), nil
}

// TechSpecs extracts the section-keyed fixed-speed technical
// specifications.
func (e *Extractor) TechSpecs() (model.TechSpecResult, []Warning, error) {
	doc, warnings, err := e.load()
	if err != nil {
		return nil, warnings, err
	}
	result, diags := techspec.Parse(doc, e.techspecConfig())
	return result, append(warnings, diagnosticWarnings(diags)...), nil
}

// FixedSpeedTable extracts a single document-wide fixed-speed table keyed
// only by frequency. Rows must carry full-feature weights.
func (e *Extractor) FixedSpeedTable() (model.FrequencyBlocks, []Warning, error) {
	doc, warnings, err := e.load()
	if err != nil {
		return nil, warnings, err
	}
	result, diags := techspec.ParseTable(doc, e.techspecConfig())
	return result, append(warnings, diagnosticWarnings(diags)...), nil
}

// VSDTechSpecs extracts the variable speed drive technical specifications.
func (e *Extractor) VSDTechSpecs() (*model.VSDResult, []Warning, error) {
	doc, warnings, err := e.load()
	if err != nil {
		return nil, warnings, err
	}
	result, diags := vsd.Parse(doc, e.vsdConfig())
	return result, append(warnings, diagnosticWarnings(diags)...), nil
}

// Options extracts the options/availability matrix.
func (e *Extractor) Options() (*model.OptionsResult, []Warning, error) {
	doc, warnings, err := e.load()
	if err != nil {
		return nil, warnings, err
	}
	result, diags := options.Extract(doc, e.options.scoring)
	return result, append(warnings, diagnosticWarnings(diags)...), nil
}

// All reads the document once and runs every parser against it
// concurrently. Warnings are returned in a fixed parser order.
//
// Example:
//
//	report, warnings, err := specsheet.Open("sheet.pdf").All(ctx)
func (e *Extractor) All(ctx context.Context) (*model.Report, []Warning, error) {
	doc, warnings, err := e.load()
	if err != nil {
		return nil, warnings, err
	}

	var (
		report = &model.Report{}
		diags  [5][]model.Diagnostic
	)

	g, ctx := errgroup.WithContext(ctx)
	run := func(parse func()) {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			parse()
			return nil
		})
	}

	run(func() { report.Dimensions, diags[0] = dimension.Parse(doc, e.dimensionConfig()) })
	run(func() { report.TechSpecs, diags[1] = techspec.Parse(doc, e.techspecConfig()) })
	run(func() { report.FixedSpeed, diags[2] = techspec.ParseTable(doc, e.techspecConfig()) })
	run(func() { report.VSD, diags[3] = vsd.Parse(doc, e.vsdConfig()) })
	run(func() { report.Options, diags[4] = options.Extract(doc, e.options.scoring) })

	if err := g.Wait(); err != nil {
		return nil, warnings, err
	}

	for _, d := range diags {
		warnings = append(warnings, diagnosticWarnings(d)...)
	}
	return report, warnings, nil
}

// ============================================================================
// Internal helpers
// ============================================================================

// load returns the selected pages of the document, reading the file first
// when the Extractor was created with Open.
func (e *Extractor) load() (*model.Document, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}

	doc := e.doc
	var warnings []Warning
	if doc == nil {
		if e.filename == "" {
			return nil, nil, errors.New("no filename specified")
		}
		loaded, issues, err := reader.Load(e.filename, reader.WithTextSource(e.options.textSource))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read %s: %w", e.filename, err)
		}
		doc = loaded
		warnings = issueWarnings(issues)
	}

	pages, err := e.resolvePages(doc.PageCount())
	if err != nil {
		return nil, warnings, err
	}
	if pages != nil {
		doc = doc.Subset(pages)
	}
	return doc, warnings, nil
}

// resolvePages validates the selected page numbers, dropping duplicates and
// sorting them. It returns nil when every page is selected.
func (e *Extractor) resolvePages(pageCount int) ([]int, error) {
	if len(e.options.pages) == 0 {
		return nil, nil
	}

	seen := make(map[int]bool)
	var pages []int
	for _, p := range e.options.pages {
		if p < 1 || p > pageCount {
			return nil, fmt.Errorf("page %d out of range (1-%d)", p, pageCount)
		}
		if !seen[p] {
			seen[p] = true
			pages = append(pages, p)
		}
	}

	sort.Ints(pages)
	return pages, nil
}

func (e *Extractor) dimensionConfig() dimension.Config {
	return dimension.Config{
		FamilyToken: e.options.familyToken,
		Policy:      e.options.policies.Dimensions,
	}
}

func (e *Extractor) techspecConfig() techspec.Config {
	return techspec.Config{
		HeaderLabel: e.options.headerLabel,
		Policy:      e.options.policies.FrequencyBlocks,
	}
}

func (e *Extractor) vsdConfig() vsd.Config {
	return vsd.Config{Policy: e.options.policies.VSDStages}
}
