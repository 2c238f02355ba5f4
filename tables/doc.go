// Package tables reconstructs table grids from positioned page text.
//
// PDF spec sheets rarely carry a usable table structure: the content stream
// only places glyphs at coordinates. This package rebuilds string-or-null
// cell grids from those positions so the options matrix scorer has tables to
// work with, even when the source draws no gridlines.
//
// # Detectors
//
// Detection is performed by types implementing the [Detector] interface. The
// package provides:
//
//   - [GeometricDetector] - uses spatial analysis of text positions
//
// # Geometric Detection
//
// The [GeometricDetector] works in four steps:
//
//  1. Row clustering: run baselines within AlignmentTolerance share a row
//  2. Cell merging: runs in a row join into one cell until a horizontal gap
//     wider than CellGap font sizes separates them
//  3. Region detection: consecutive rows holding at least MinCols cells, no
//     further apart than MaxRowGap, form a table region
//  4. Column detection: the horizontal extents of every cell in a region are
//     merged; each merged extent is one column
//
// A grid position no cell falls into is a null cell.
//
// # Configuration
//
// Detector behavior is controlled by [Config]:
//
//	config := tables.DefaultConfig()
//	config.MinRows = 5
//	detector.Configure(config)
package tables
