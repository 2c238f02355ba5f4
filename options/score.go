package options

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/tsawler/specsheet/model"
	"github.com/tsawler/specsheet/text"
)

// Marker glyphs that mark an option as available.
const markerGlyphs = "•●·."

// Dash placeholders that mark an option as not available.
var dashPlaceholders = []string{"-", "–"}

// ScoreConfig holds the options matrix scoring thresholds.
type ScoreConfig struct {
	MinRows        int     // tables with fewer rows score 0
	MinCols        int     // tables whose widest row is narrower score 0
	MinLabelLength int     // a first-column label longer than this counts as descriptive
	LabelRatio     float64 // descriptive label ratio that must be exceeded
	MarkerRatio    float64 // marker cell ratio that must be exceeded
	LabelPoints    int     // awarded when LabelRatio is exceeded
	MarkerPoints   int     // awarded when MarkerRatio is exceeded
}

// DefaultScoreConfig returns the standard thresholds.
func DefaultScoreConfig() ScoreConfig {
	return ScoreConfig{
		MinRows:        5,
		MinCols:        5,
		MinLabelLength: 15,
		LabelRatio:     0.7,
		MarkerRatio:    0.7,
		LabelPoints:    5,
		MarkerPoints:   5,
	}
}

// Validate checks the thresholds are usable.
func (c ScoreConfig) Validate() error {
	if c.MinRows < 2 {
		return fmt.Errorf("min rows must be at least 2, got %d", c.MinRows)
	}
	if c.MinCols < 2 {
		return fmt.Errorf("min cols must be at least 2, got %d", c.MinCols)
	}
	if c.MinLabelLength < 0 {
		return fmt.Errorf("min label length must not be negative, got %d", c.MinLabelLength)
	}
	if c.LabelRatio < 0 || c.LabelRatio > 1 {
		return fmt.Errorf("label ratio must be within [0, 1], got %v", c.LabelRatio)
	}
	if c.MarkerRatio < 0 || c.MarkerRatio > 1 {
		return fmt.Errorf("marker ratio must be within [0, 1], got %v", c.MarkerRatio)
	}
	if c.LabelPoints <= 0 || c.MarkerPoints <= 0 {
		return fmt.Errorf("points must be positive, got %d and %d", c.LabelPoints, c.MarkerPoints)
	}
	return nil
}

// IsMarker reports whether s contains a marker glyph.
func IsMarker(s string) bool {
	return strings.ContainsAny(s, markerGlyphs)
}

// IsDash reports whether s, trimmed, is a dash placeholder.
func IsDash(s string) bool {
	s = strings.TrimSpace(s)
	for _, d := range dashPlaceholders {
		if s == d {
			return true
		}
	}
	return false
}

// Score rates how likely t is an options matrix. Higher is more likely; 0
// means the table does not qualify at all.
func Score(t *model.Table, cfg ScoreConfig) int {
	if t == nil {
		return 0
	}
	rows := t.RowCount()
	// a header and at least one option row, whatever the thresholds say
	if rows < 2 || rows < cfg.MinRows || t.ColCount() < cfg.MinCols {
		return 0
	}

	var descriptive, markerCells, totalCells int
	for _, row := range t.Rows[1:] {
		if len(row) == 0 || row[0].IsBlank() {
			continue
		}
		if utf8.RuneCountInString(text.Normalize(row[0].Text)) > cfg.MinLabelLength {
			descriptive++
		}
		for _, cell := range row[1:] {
			totalCells++
			if cell.IsBlank() || IsMarker(cell.Text) || IsDash(cell.Text) {
				markerCells++
			}
		}
	}

	score := 0
	if float64(descriptive)/float64(rows-1) > cfg.LabelRatio {
		score += cfg.LabelPoints
	}
	if totalCells > 0 && float64(markerCells)/float64(totalCells) > cfg.MarkerRatio {
		score += cfg.MarkerPoints
	}
	return score
}

// Select returns the table with the strictly highest score and that score.
// Ties keep the earliest table. It returns nil, 0 when no table scores above
// zero.
func Select(tables []*model.Table, cfg ScoreConfig) (*model.Table, int) {
	var (
		best      *model.Table
		bestScore int
	)
	for _, t := range tables {
		if s := Score(t, cfg); s > bestScore {
			best, bestScore = t, s
		}
	}
	return best, bestScore
}
