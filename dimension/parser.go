package dimension

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tsawler/specsheet/model"
	"github.com/tsawler/specsheet/text"
)

const parserName = "dimension"

// rowPattern matches one dimension row on a single normalized line.
var rowPattern = regexp.MustCompile(
	`\b(?P<type>ZR|ZT) (?P<range>\d+ ?- ?\d+) ` +
		`(?P<a>\d{3,5}) \d+\.\d+ ` + // A mm, inch
		`(?P<b>\d{3,5}) \d+\.\d+ ` + // B mm, inch
		`(?P<c>\d{3,5}) \d+\.\d+ ` + // C mm, inch
		`(?P<ffa>\d{3,5}) \d+\.\d+ ` + // FF A mm, inch
		`(?P<ffb>\d{3,5}) \d+\.\d+ ` + // FF B mm, inch
		`(?P<ffc>\d{3,5})`, // FF C mm
)

var (
	idxType  = rowPattern.SubexpIndex("type")
	idxRange = rowPattern.SubexpIndex("range")
	idxA     = rowPattern.SubexpIndex("a")
	idxB     = rowPattern.SubexpIndex("b")
	idxC     = rowPattern.SubexpIndex("c")
	idxFFA   = rowPattern.SubexpIndex("ffa")
	idxFFB   = rowPattern.SubexpIndex("ffb")
	idxFFC   = rowPattern.SubexpIndex("ffc")
)

// Config controls dimension extraction.
type Config struct {
	// FamilyToken marks model group lines on the first page.
	FamilyToken string

	// Policy resolves repeated (group, type, range) keys.
	Policy model.DuplicatePolicy
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		FamilyToken: DefaultFamilyToken,
		Policy:      model.PolicyOverwrite,
	}
}

// Row is one matched dimension row.
type Row struct {
	ModelType   string
	ModelRange  string // whitespace removed, e.g. "110-145"
	Standard    model.DimensionRecord
	FullFeature model.DimensionRecord
	Line        int // 1-indexed line in the scanned text
}

// ParseRows finds every dimension row in s. Each line is normalized before
// matching; several rows on one line are all returned, in order.
func ParseRows(s string) []Row {
	var rows []Row
	for n, line := range text.Lines(s) {
		for _, m := range rowPattern.FindAllStringSubmatch(line, -1) {
			rows = append(rows, Row{
				ModelType:  m[idxType],
				ModelRange: text.RemoveSpaces(m[idxRange]),
				Standard: model.DimensionRecord{
					Length: atoi(m[idxA]),
					Width:  atoi(m[idxB]),
					Height: atoi(m[idxC]),
				},
				FullFeature: model.DimensionRecord{
					Length: atoi(m[idxFFA]),
					Width:  atoi(m[idxFFB]),
					Height: atoi(m[idxFFC]),
				},
				Line: n + 1,
			})
		}
	}
	return rows
}

// Build replicates every row into every group label and returns a fresh
// result. Labels with no rows still appear, with an empty group. Repeated
// keys are resolved with policy; each repeat is reported as a diagnostic.
func Build(groups Groups, rows []Row, policy model.DuplicatePolicy) (*model.DimensionResult, []model.Diagnostic) {
	result := model.NewDimensionResult(groups.ProductFamily, groups.Labels)

	var diags []model.Diagnostic
	for _, row := range rows {
		duplicate := false
		for _, label := range groups.Labels {
			group := result.ModelGroups[label]
			if group.Has(row.ModelType, row.ModelRange) {
				duplicate = true
				if policy == model.PolicyKeepFirst {
					continue
				}
			}
			ff := row.FullFeature
			group.Set(row.ModelType, row.ModelRange, model.DimensionEntry{Standard: row.Standard, FullFeature: &ff})
		}

		if duplicate {
			reason := "repeated dimension row replaced the earlier one"
			if policy == model.PolicyKeepFirst {
				reason = "repeated dimension row ignored"
			}
			diags = append(diags, model.Diagnostic{
				Parser: parserName,
				Line:   row.Line,
				Text:   row.ModelType + " " + row.ModelRange,
				Reason: reason,
			})
		}
	}

	if len(groups.Labels) == 0 && len(rows) > 0 {
		diags = append(diags, model.Diagnostic{
			Parser: parserName,
			Reason: "dimension rows found but no model groups detected on the first page",
		})
	}

	return result, diags
}

// Parse runs both phases against doc. The first page supplies the model
// groups; rows are searched in the text of all pages joined by newlines.
func Parse(doc *model.Document, cfg Config) (*model.DimensionResult, []model.Diagnostic) {
	groups := DetectModelGroups(doc.FirstPageText(), cfg.FamilyToken)
	rows := ParseRows(text.JoinPages(doc.PageTexts(), "\n"))
	return Build(groups, rows, cfg.Policy)
}

// atoi converts a digit-only capture. The grammar guarantees the input.
func atoi(s string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	return n
}
