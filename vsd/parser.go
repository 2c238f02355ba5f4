package vsd

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tsawler/specsheet/model"
	"github.com/tsawler/specsheet/text"
)

const parserName = "vsd"

// typePattern matches a type header such as "ZR 160 VSD - 8.6 bar(e)".
var typePattern = regexp.MustCompile(`(?i)(?:ZR|ZT)\s+\d+\s+VSD\s*-\s*[\d.]+\s*bar\(e\)`)

// stagePattern matches one stage row.
var stagePattern = regexp.MustCompile(
	`(?P<stage>Minimum|Effective|Maximum)\s+` +
		`(?P<wp>\d{1,3}(?:\.\d+)?)\s+` + // working pressure, bar
		`(?P<lsmin>\d{1,6})\s*-\s*(?P<lsmax>\d{1,6})\s+` + // l/s
		`(?P<m3min>\d{1,4}(?:\.\d+)?)\s*-\s*(?P<m3max>\d{1,4}(?:\.\d+)?)\s+` + // m3/min
		`(?P<cfmmin>\d{1,7})\s*-\s*(?P<cfmmax>\d{1,7})\s+` + // cfm
		`(?P<noise>\d{2})\s+` + // dB(A)
		`(?P<stdkg>\d{4})\s+(?P<stdlb>\d{4,5})\s+` +
		`(?P<ffkg>\d{4})\s+(?P<fflb>\d{4,5})`,
)

// Config controls VSD extraction.
type Config struct {
	// Policy resolves a stage label repeated within one segment.
	Policy model.DuplicatePolicy
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Policy: model.PolicyOverwrite}
}

// ParseText extracts VSD types from s. The whole text is normalized to a
// single line first, so headers and rows may be split across lines or pages.
func ParseText(s string, cfg Config) (*model.VSDResult, []model.Diagnostic) {
	s = text.Normalize(s)
	result := model.NewVSDResult()

	headers := typePattern.FindAllStringIndex(s, -1)
	if len(headers) == 0 {
		return result, nil
	}
	result.TablePresent = true

	var diags []model.Diagnostic
	for i, loc := range headers {
		end := len(s)
		if i+1 < len(headers) {
			end = headers[i+1][0]
		}
		name := text.Normalize(s[loc[0]:loc[1]])

		vt, segDiags := parseSegment(name, s[loc[1]:end], cfg.Policy)
		diags = append(diags, segDiags...)
		if vt == nil {
			diags = append(diags, model.Diagnostic{
				Parser: parserName,
				Text:   name,
				Reason: "VSD type has no stage rows",
			})
			continue
		}
		result.Types = append(result.Types, *vt)
	}

	return result, diags
}

// Parse extracts VSD types from the text of every page of doc, joined with
// spaces.
func Parse(doc *model.Document, cfg Config) (*model.VSDResult, []model.Diagnostic) {
	return ParseText(text.JoinPages(doc.PageTexts(), " "), cfg)
}

// parseSegment applies every stage row in segment. It returns nil when the
// segment has none.
func parseSegment(name, segment string, policy model.DuplicatePolicy) (*model.VSDType, []model.Diagnostic) {
	var (
		vt    *model.VSDType
		diags []model.Diagnostic
	)

	re := stagePattern
	for _, m := range re.FindAllStringSubmatch(segment, -1) {
		get := func(group string) string { return m[re.SubexpIndex(group)] }

		if vt == nil {
			vt = &model.VSDType{Type: name, Stages: make(map[string]model.VSDStage)}
		}

		stage := strings.ToLower(get("stage"))
		if _, exists := vt.Stages[stage]; exists {
			if policy == model.PolicyKeepFirst {
				diags = append(diags, duplicateStage(name, m[0], "repeated stage row ignored"))
				continue
			}
			diags = append(diags, duplicateStage(name, m[0], "repeated stage row replaced the earlier one"))
		}

		vt.Stages[stage] = model.VSDStage{
			WorkingPressureBar: atof(get("wp")),
			FreeAirDelivery: model.FlowRange{
				LitersPerSecond: [2]int{atoi(get("lsmin")), atoi(get("lsmax"))},
				CubicMPerMinute: [2]float64{atof(get("m3min")), atof(get("m3max"))},
				CFM:             [2]int{atoi(get("cfmmin")), atoi(get("cfmmax"))},
			},
		}
		vt.NoiseLevelDBA = atoi(get("noise"))
		vt.Weight = model.Weight{
			Standard:    model.Mass{KG: atoi(get("stdkg")), LB: atoi(get("stdlb"))},
			FullFeature: &model.Mass{KG: atoi(get("ffkg")), LB: atoi(get("fflb"))},
		}
	}

	return vt, diags
}

func duplicateStage(name, row, reason string) model.Diagnostic {
	return model.Diagnostic{
		Parser: parserName,
		Text:   name + ": " + row,
		Reason: reason,
	}
}

// atoi and atof convert captures whose digit counts stagePattern bounds,
// so conversion cannot fail.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func atof(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return f
}
