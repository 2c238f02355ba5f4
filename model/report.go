package model

// Report bundles the output of every parser run against one document.
type Report struct {
	Dimensions *DimensionResult `json:"dimensions"`
	TechSpecs  TechSpecResult   `json:"technical_specifications"`
	FixedSpeed FrequencyBlocks  `json:"fixed_speed_specifications"`
	VSD        *VSDResult       `json:"vsd"`
	Options    *OptionsResult   `json:"options_matrix"`
}

// Diagnostic records an input line or table a parser looked at and did not
// use. Diagnostics never change a parser's result.
type Diagnostic struct {
	Parser string // parser that produced it, e.g. "techspec"
	Line   int    // 1-indexed line number in the scanned text, 0 if not line based
	Text   string // the offending input, normalized
	Reason string
}
