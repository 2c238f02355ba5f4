package model

// DimensionRecord holds the outline dimensions of one compressor variant in
// millimeters.
type DimensionRecord struct {
	Length int `json:"A_length_mm"`
	Width  int `json:"B_width_mm"`
	Height int `json:"C_height_mm"`
}

// DimensionEntry pairs the standard and full-feature outlines of one model
// range. FullFeature is nil when the source table has no full-feature columns.
type DimensionEntry struct {
	Standard    DimensionRecord  `json:"standard"`
	FullFeature *DimensionRecord `json:"full_feature"`
}

// ModelGroup maps model type ("ZR", "ZT") to model range ("110-145") to the
// dimensions of that range.
type ModelGroup map[string]map[string]DimensionEntry

// Set stores entry under modelType/modelRange, creating the inner map on demand.
func (g ModelGroup) Set(modelType, modelRange string, entry DimensionEntry) {
	ranges, ok := g[modelType]
	if !ok {
		ranges = make(map[string]DimensionEntry)
		g[modelType] = ranges
	}
	ranges[modelRange] = entry
}

// Has reports whether an entry exists for modelType/modelRange.
func (g ModelGroup) Has(modelType, modelRange string) bool {
	_, ok := g[modelType][modelRange]
	return ok
}

// DimensionResult is the output of the dimension parser.
type DimensionResult struct {
	ProductFamily string                `json:"product_family"`
	ModelGroups   map[string]ModelGroup `json:"model_groups"`

	labels []string
}

// GroupLabels returns the model group labels in detection order.
// The order is kept alongside the map because JSON objects are unordered.
func (r *DimensionResult) GroupLabels() []string {
	return r.labels
}

// NewDimensionResult creates a result with one empty group per label.
func NewDimensionResult(family string, labels []string) *DimensionResult {
	r := &DimensionResult{
		ProductFamily: family,
		ModelGroups:   make(map[string]ModelGroup, len(labels)),
		labels:        append([]string(nil), labels...),
	}
	for _, label := range labels {
		r.ModelGroups[label] = make(ModelGroup)
	}
	return r
}
