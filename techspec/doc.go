// Package techspec extracts fixed-speed technical specification tables.
//
// Spec sheets print these tables as text: a "TECHNICAL SPECIFICATIONS"
// heading, a section line naming the model range, then one block of data rows
// per supply frequency:
//
//	TECHNICAL SPECIFICATIONS
//	ZR 110-145 (FF)
//	50 Hz
//	ZR 110-7.5 332 19.9 703 110 150 69 3000 6614 3500 7716
//	ZR 110-8.6 310 18.6 657 110 150 69 3000 6614 3500 7716
//	60 Hz
//	...
//
// Two layouts are supported:
//
//   - [ParseSections] for documents with several named sections; the result
//     is keyed by section, then by frequency.
//   - [ParseFrequencyTable] for documents holding one uniform table; the
//     result is keyed by frequency only and rows must carry full-feature
//     weights.
//
// # State Machine
//
// Both layouts run the same scanner. Every normalized line is classified
// ([LineClass]) and the pair (current [State], class) selects a transition
// from an explicit table. Lines that do not fit the current state are skipped
// and reported as diagnostics; scanning never fails.
//
// Opening a new section always clears the frequency context, so rows after a
// second section's header can never land in the first section.
package techspec
