package options

import (
	"fmt"

	"github.com/tsawler/specsheet/model"
	"github.com/tsawler/specsheet/text"
)

const parserName = "options"

// Parse decodes t as an options matrix. Row 0 supplies the model labels from
// column 1 onwards; a blank header becomes "column_<i>". Every later row with
// a non-blank first cell becomes one option. Cells past the last header are
// ignored. A repeated option name replaces the earlier row.
func Parse(t *model.Table) (*model.OptionsResult, []model.Diagnostic) {
	result := model.NewOptionsResult()
	if t == nil || len(t.Rows) == 0 {
		return result, nil
	}

	header := t.Rows[0]
	for i := 1; i < len(header); i++ {
		label := text.Normalize(header[i].Text)
		if header[i].Null || label == "" {
			label = fmt.Sprintf("column_%d", i)
		}
		result.Columns = append(result.Columns, label)
	}

	var diags []model.Diagnostic
	for n, row := range t.Rows[1:] {
		if len(row) == 0 || row[0].IsBlank() {
			continue
		}
		name := text.Normalize(row[0].Text)

		values := make(map[string]bool, len(result.Columns))
		for i, label := range result.Columns {
			if i+1 >= len(row) {
				break
			}
			values[label] = cellAvailable(row[i+1])
		}

		if _, exists := result.Options[name]; exists {
			diags = append(diags, model.Diagnostic{
				Parser: parserName,
				Line:   n + 2,
				Text:   name,
				Reason: "repeated option row replaced the earlier one",
			})
		} else {
			result.Names = append(result.Names, name)
		}
		result.Options[name] = values
	}

	return result, diags
}

// Extract scores every table of doc and decodes the winner. When nothing
// qualifies the result is the empty matrix.
func Extract(doc *model.Document, cfg ScoreConfig) (*model.OptionsResult, []model.Diagnostic) {
	tables := doc.ExtractTables()
	best, _ := Select(tables, cfg)
	if best == nil {
		var diags []model.Diagnostic
		if len(tables) > 0 {
			diags = append(diags, model.Diagnostic{
				Parser: parserName,
				Reason: fmt.Sprintf("none of %d tables qualified as an options matrix", len(tables)),
			})
		}
		return model.NewOptionsResult(), diags
	}
	return Parse(best)
}

func cellAvailable(c model.Cell) bool {
	if c.IsBlank() {
		return false
	}
	return IsMarker(c.Text)
}
