package model

// VSD stage keys.
const (
	StageMinimum   = "minimum"
	StageEffective = "effective"
	StageMaximum   = "maximum"
)

// FlowRange is a free air delivery range, each pair being [min, max].
type FlowRange struct {
	LitersPerSecond [2]int     `json:"l_s"`
	CubicMPerMinute [2]float64 `json:"m3_min"`
	CFM             [2]int     `json:"cfm"`
}

// VSDStage is one named operating point of a variable speed unit.
type VSDStage struct {
	WorkingPressureBar float64   `json:"working_pressure_bar"`
	FreeAirDelivery    FlowRange `json:"free_air_delivery"`
}

// VSDType describes one variable speed compressor type.
type VSDType struct {
	Type          string              `json:"type"`
	NoiseLevelDBA int                 `json:"noise_level_dbA"`
	Weight        Weight              `json:"weight"`
	Stages        map[string]VSDStage `json:"stages"`
}

// VSDResult is the output of the VSD parser.
type VSDResult struct {
	TablePresent bool      `json:"table_present"`
	Types        []VSDType `json:"vsd_technical_specifications"`
}

// NewVSDResult returns the empty result.
func NewVSDResult() *VSDResult {
	return &VSDResult{Types: make([]VSDType, 0)}
}

// IsStage reports whether key is one of the recognized stage keys.
func IsStage(key string) bool {
	switch key {
	case StageMinimum, StageEffective, StageMaximum:
		return true
	}
	return false
}
