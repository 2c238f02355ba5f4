// Package specsheet provides a fluent API for turning compressor spec-sheet
// PDFs into structured records: dimensions, fixed-speed technical
// specifications, VSD technical specifications and the options matrix.
//
// Basic usage:
//
//	dims, warnings, err := specsheet.Open("ZR-ZT-110-275.pdf").Dimensions()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", specsheet.FormatWarnings(warnings))
//	}
//
// With options:
//
//	specs, _, err := specsheet.Open("sheet.pdf").
//	    PageRange(3, 4).
//	    Policies(model.Policies{FrequencyBlocks: model.PolicyAppend}).
//	    TechSpecs()
//
// Every parser is also available on its own in the dimension, techspec, vsd
// and options packages, working on an already loaded [model.Document].
package specsheet

import (
	"github.com/tsawler/specsheet/model"
)

// Open returns an Extractor for the PDF at filename. The file is not read
// until a terminal operation such as Dimensions() runs.
//
// Example:
//
//	result, warnings, err := specsheet.Open("sheet.pdf").VSDTechSpecs()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromDocument creates an Extractor over an already loaded document. This is
// useful when the document comes from somewhere other than a PDF file, or
// when several extractions share one read.
//
// Example:
//
//	doc, _, err := reader.Load("sheet.pdf")
//	if err != nil {
//	    // handle error
//	}
//	opts, _, err := specsheet.FromDocument(doc).Options()
func FromDocument(doc *model.Document) *Extractor {
	return &Extractor{
		doc:     doc,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustResult is a helper that wraps a terminal operation and panics if the
// error is non-nil. It discards warnings and returns just the value.
//
// Example:
//
//	dims := specsheet.MustResult(specsheet.Open("sheet.pdf").Dimensions())
func MustResult[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
