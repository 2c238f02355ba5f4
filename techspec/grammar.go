package techspec

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tsawler/specsheet/model"
	"github.com/tsawler/specsheet/text"
)

// DefaultHeaderLabel is the heading that precedes every section line.
const DefaultHeaderLabel = "TECHNICAL SPECIFICATIONS"

// sectionPattern matches a section line such as "ZR 110-145 (FF)".
var sectionPattern = regexp.MustCompile(`^(?:ZR|ZT) \d+ ?- ?\d+.*\(FF\)`)

// rowFields is the shared body of both data row grammars.
const rowFields = `^(?P<type>ZR|ZT) ` +
	`(?P<pressure>\d+ ?- ?\d+(?:\.\d+)?)` + // model + pressure, "110-7.5"
	`(?: ?\(\d+\))? ` + // footnote, ignored
	`(?P<ls>\d+(?:\.\d+)?) ` + // l/s
	`(?P<m3>\d+(?:\.\d+)?) ` + // m3/min
	`(?P<cfm>\d+) ` +
	`(?P<kw>\d+) ` +
	`(?P<hp>\d+) ` +
	`(?P<dba>\d+) ` +
	`(?P<stdkg>\d+) ` +
	`(?P<stdlb>\d+)`

var (
	// rowPattern accepts rows with or without the full-feature weights.
	rowPattern = regexp.MustCompile(rowFields + `(?: (?P<ffkg>\d+) (?P<fflb>\d+))?$`)

	// strictRowPattern requires the full-feature weights.
	strictRowPattern = regexp.MustCompile(rowFields + ` (?P<ffkg>\d+) (?P<fflb>\d+)$`)
)

// LineClass is the category of a normalized line.
type LineClass int

const (
	Blank LineClass = iota
	Header
	SectionLine
	FrequencyMarker
	DataRow
	Other
)

func (c LineClass) String() string {
	switch c {
	case Blank:
		return "Blank"
	case Header:
		return "Header"
	case SectionLine:
		return "SectionLine"
	case FrequencyMarker:
		return "FrequencyMarker"
	case DataRow:
		return "DataRow"
	default:
		return "Other"
	}
}

// classifier assigns a LineClass to a normalized line.
type classifier interface {
	classify(line string) LineClass
	// frequency returns the frequency key of a FrequencyMarker line.
	frequency(line string) string
	// row parses a DataRow line.
	row(line string) (model.DataRow, bool)
}

// sectionClassifier recognizes the section-keyed layout.
type sectionClassifier struct {
	header string
}

func (c sectionClassifier) classify(line string) LineClass {
	switch {
	case line == "":
		return Blank
	case strings.EqualFold(line, c.header):
		return Header
	case sectionPattern.MatchString(line):
		return SectionLine
	case strings.HasPrefix(line, "50 Hz"), strings.HasPrefix(line, "60 Hz"):
		return FrequencyMarker
	case rowPattern.MatchString(line):
		return DataRow
	}
	return Other
}

func (sectionClassifier) frequency(line string) string {
	if strings.HasPrefix(line, "60 Hz") {
		return model.Freq60Hz
	}
	return model.Freq50Hz
}

func (sectionClassifier) row(line string) (model.DataRow, bool) {
	return parseRow(rowPattern, line)
}

// frequencyClassifier recognizes the single-table layout: exact frequency
// lines and full-line strict rows only.
type frequencyClassifier struct{}

func (frequencyClassifier) classify(line string) LineClass {
	switch {
	case line == "":
		return Blank
	case line == "50 Hz", line == "60 Hz":
		return FrequencyMarker
	case strictRowPattern.MatchString(line):
		return DataRow
	}
	return Other
}

func (frequencyClassifier) frequency(line string) string {
	if line == "60 Hz" {
		return model.Freq60Hz
	}
	return model.Freq50Hz
}

func (frequencyClassifier) row(line string) (model.DataRow, bool) {
	return parseRow(strictRowPattern, line)
}

// parseRow converts a matched line into a DataRow. The full-feature weight
// is nil unless both of its fields were captured.
func parseRow(re *regexp.Regexp, line string) (model.DataRow, bool) {
	m := re.FindStringSubmatch(line)
	if m == nil {
		return model.DataRow{}, false
	}
	get := func(name string) string { return m[re.SubexpIndex(name)] }

	p := numberParser{}
	row := model.DataRow{
		ModelType:     get("type"),
		ModelPressure: text.RemoveSpaces(get("pressure")),
		FreeAirDelivery: model.FreeAirDelivery{
			LitersPerSecond: p.toFloat(get("ls")),
			CubicMPerMinute: p.toFloat(get("m3")),
			CFM:             p.toInt(get("cfm")),
		},
		InstalledMotor: model.InstalledMotor{
			KW: p.toInt(get("kw")),
			HP: p.toInt(get("hp")),
		},
		NoiseLevelDBA: p.toInt(get("dba")),
		Weight: model.Weight{
			Standard: model.Mass{KG: p.toInt(get("stdkg")), LB: p.toInt(get("stdlb"))},
		},
	}
	if kg, lb := get("ffkg"), get("fflb"); kg != "" && lb != "" {
		row.Weight.FullFeature = &model.Mass{KG: p.toInt(kg), LB: p.toInt(lb)}
	}
	return row, p.err == nil
}

// numberParser converts captures, remembering the first failure.
type numberParser struct {
	err error
}

func (p *numberParser) toInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil && p.err == nil {
		p.err = err
	}
	return n
}

func (p *numberParser) toFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && p.err == nil {
		p.err = err
	}
	return f
}
