// Package model provides the data structures shared by every spec-sheet parser.
//
// It has two halves. The input half describes a document as the extraction
// layer delivers it: a [Document] is an ordered list of [Page] values, each
// carrying the page's plain text and zero or more [Table] grids of [Cell]
// values. The output half holds the JSON-serializable records the parsers
// build from that input.
//
// # Input
//
//	doc := model.NewDocument()
//	doc.AddPage(model.NewPage("ZR/ZT (Oil-Free)\n..."))
//
// A page with no extractable text simply has an empty Text field. Table cells
// may be null, mirroring extractors that distinguish a missing cell from an
// empty one.
//
// # Results
//
//   - [DimensionResult] - product family and per-group dimension tables
//   - [TechSpecResult] and [FrequencyBlocks] - fixed-speed data rows
//   - [VSDResult] - variable speed drive operating ranges
//   - [OptionsResult] - the options/availability matrix
//   - [Report] - all of the above from one document
//
// Field names in the JSON encoding follow the published output schema and are
// not Go-cased.
//
// # Duplicate Handling
//
// Repeated keys (the same dimension row, frequency block or VSD stage seen
// twice) are resolved by a [DuplicatePolicy]. The defaults reproduce
// last-write-wins behavior; see [DefaultPolicies].
package model
