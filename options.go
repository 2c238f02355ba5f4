package specsheet

import (
	"github.com/tsawler/specsheet/dimension"
	"github.com/tsawler/specsheet/model"
	"github.com/tsawler/specsheet/options"
	"github.com/tsawler/specsheet/reader"
	"github.com/tsawler/specsheet/techspec"
)

// extractOptions holds configuration for extraction.
type extractOptions struct {
	// Page selection (1-indexed)
	pages []int

	// Parser configuration
	headerLabel string
	familyToken string
	scoring     options.ScoreConfig
	policies    model.Policies

	// Reading
	textSource reader.TextSource
}

// defaultOptions returns the default extraction options.
func defaultOptions() extractOptions {
	return extractOptions{
		pages:       nil, // nil means all pages
		headerLabel: techspec.DefaultHeaderLabel,
		familyToken: dimension.DefaultFamilyToken,
		scoring:     options.DefaultScoreConfig(),
		policies:    model.DefaultPolicies(),
		textSource:  reader.TextLayout,
	}
}

// clone creates a deep copy of extractOptions.
func (o extractOptions) clone() extractOptions {
	newOpts := o

	// Deep copy pages slice
	if o.pages != nil {
		newOpts.pages = make([]int, len(o.pages))
		copy(newOpts.pages, o.pages)
	}

	return newOpts
}
