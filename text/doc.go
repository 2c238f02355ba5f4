// Package text normalizes extracted page text before pattern matching.
//
// Text pulled out of spec-sheet PDFs is noisy: runs of spaces where columns
// were, non-breaking spaces, compatibility characters such as superscript
// digits, and a mix of line ending styles. Every parser works on text passed
// through this package so that its grammars only ever see single ASCII spaces
// between tokens.
//
//	text.Normalize("  ZR  110  - 145 ")   // "ZR 110 - 145"
//	text.Lines("50 Hz\r\nZR 110-7.5 ...")       // []string{"50 Hz", "ZR 110-7.5 ..."}
//
// Normalization applies Unicode NFKC folding first, so "m³/min" becomes
// "m3/min" and full-width digits become ASCII digits. Marker glyphs used in
// options matrices (•, ●) and dashes (–) have no compatibility mapping and are
// left unchanged.
package text
