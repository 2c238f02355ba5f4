package model

// OptionsResult is the options/availability matrix: option name to model
// column label to availability.
type OptionsResult struct {
	Options map[string]map[string]bool `json:"options"`

	// Columns and Names keep the source order, which JSON objects lose.
	Columns []string `json:"-"`
	Names   []string `json:"-"`
}

// NewOptionsResult returns the empty matrix.
func NewOptionsResult() *OptionsResult {
	return &OptionsResult{Options: make(map[string]map[string]bool)}
}
