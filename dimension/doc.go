// Package dimension extracts outline dimensions from compressor spec sheets.
//
// Extraction runs as a two-phase pipeline:
//
//  1. [DetectModelGroups] reads the first page and returns the product family
//     and an ordered, de-duplicated list of model group labels, such as
//     "ZR/ZT 110-275 (FF)".
//  2. [ParseRows] finds every dimension row in the document text and [Build]
//     replicates each row into a fresh structure with one entry per group.
//
// Phase 1 output is an immutable slice; phase 2 never mutates anything it did
// not create, so the two phases can be tested and reused independently.
//
// # Row Grammar
//
// A dimension row carries a type code, a model range, and six millimeter
// values each followed by its inch equivalent (the final one excepted):
//
//	ZR 110-145 2540 100.0 1650 65.0 2000 78.7 3440 135.4 1650 65.0 2000
//
// The first three millimeter values are the standard outline (length, width,
// height), the last three the full-feature outline. Inch values are
// discarded. Rows are matched within a single line; nothing is stitched
// across line breaks.
//
// # Duplicates
//
// When the same (group, type, range) key is matched twice the configured
// [model.DuplicatePolicy] applies: overwrite (default, later row wins
// entirely) or keep-first.
package dimension
