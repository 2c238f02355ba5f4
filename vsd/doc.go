// Package vsd extracts variable speed drive (VSD) technical specifications.
//
// A VSD table lists, per compressor type, the operating range at three named
// stages rather than a single point:
//
//	ZR 160 VSD - 8.6 bar(e)
//	Minimum   4    90-100   5.4-6.0   191-212   68 3300 7275 3900 8598
//	Effective 7    300-320  18.0-19.2 636-678   68 3300 7275 3900 8598
//	Maximum   8.6  420-440  25.2-26.4 890-932   68 3300 7275 3900 8598
//
// The document text is normalized into one line. Every type header starts a
// segment that runs to the next header; stage rows are searched only inside
// their own segment. A segment without stage rows produces no entry.
//
// When a stage label repeats inside a segment the configured
// [model.DuplicatePolicy] decides which row survives. The default,
// overwrite, keeps the last one. The type's noise level and weights come
// from the last row that was applied.
package vsd
