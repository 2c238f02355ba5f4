// Package options finds and decodes the options/availability matrix of a
// spec sheet.
//
// An options matrix is a table whose first column holds long option
// descriptions and whose remaining columns, one per model, hold availability
// markers:
//
//	Option                         ZR 110   ZR 160   ZT 110
//	Integrated refrigerant dryer     ●        ●        -
//	Electronic no-loss drain         ●        -        ●
//
// Every table grid of every page is scored with [Score]. [Select] keeps the
// strictly highest scoring table, the first one on ties, and [Parse] turns it
// into option name → model label → availability. A cell is available when it
// contains a marker glyph; empty, null and dash cells are not.
//
// The scoring thresholds are held in a [ScoreConfig] so they can be tuned
// without touching the decoding logic.
package options
