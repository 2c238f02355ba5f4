package model

// Frequency keys used in technical specification tables.
const (
	Freq50Hz = "50Hz"
	Freq60Hz = "60Hz"
)

// FreeAirDelivery is a volumetric flow at standard conditions in three units.
type FreeAirDelivery struct {
	LitersPerSecond float64 `json:"l_s"`
	CubicMPerMinute float64 `json:"m3_min"`
	CFM             int     `json:"cfm"`
}

// InstalledMotor is the nominal motor power.
type InstalledMotor struct {
	KW int `json:"kW"`
	HP int `json:"hp"`
}

// Mass is a weight in kilograms and pounds.
type Mass struct {
	KG int `json:"kg"`
	LB int `json:"lb"`
}

// Weight holds the standard and full-feature weights. FullFeature is nil
// when the row carries no full-feature columns.
type Weight struct {
	Standard    Mass  `json:"standard"`
	FullFeature *Mass `json:"full_feature"`
}

// DataRow is one fixed-speed model row of a technical specification table.
type DataRow struct {
	ModelType       string          `json:"model_type"`
	ModelPressure   string          `json:"model_pressure"`
	FreeAirDelivery FreeAirDelivery `json:"free_air_delivery"`
	InstalledMotor  InstalledMotor  `json:"installed_motor"`
	NoiseLevelDBA   int             `json:"noise_level_dBA"`
	Weight          Weight          `json:"weight"`
}

// FrequencyBlocks maps a frequency key (Freq50Hz, Freq60Hz) to its rows.
type FrequencyBlocks map[string][]DataRow

// TechSpecResult maps a section key to its frequency blocks.
type TechSpecResult map[string]FrequencyBlocks

// IsFrequency reports whether key is one of the recognized frequency keys.
func IsFrequency(key string) bool {
	return key == Freq50Hz || key == Freq60Hz
}
