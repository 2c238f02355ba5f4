package tables

import (
	"fmt"

	"github.com/tsawler/specsheet/model"
)

// Detector is the interface for table detection algorithms
type Detector interface {
	// Detect finds tables among the positioned runs of one page
	Detect(runs []Run) ([]*model.Table, error)

	// Name returns the detector name
	Name() string

	// Configure sets detector parameters
	Configure(config Config) error
}

// Run is a positioned piece of page text. Coordinates are PDF points with Y
// growing upwards; X is the left edge and Y the baseline.
type Run struct {
	X, Y     float64
	W        float64 // advance width, 0 when unknown
	FontSize float64
	Text     string
}

// Config holds detector configuration
type Config struct {
	// Minimum rows for a valid table
	MinRows int

	// Minimum cells a row must hold to belong to a table
	MinCols int

	// Tolerance for baseline alignment within a row (points)
	AlignmentTolerance float64

	// Gap, in font sizes, above which a space is inserted between runs
	SpaceGap float64

	// Gap, in font sizes, above which runs belong to different cells
	CellGap float64

	// Maximum vertical distance between consecutive table rows (points)
	MaxRowGap float64

	// Padding added to each cell extent before columns are merged (points)
	ColumnPadding float64
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		MinRows:            2,
		MinCols:            2,
		AlignmentTolerance: 2.0,
		SpaceGap:           0.2,
		CellGap:            1.0,
		MaxRowGap:          50.0,
		ColumnPadding:      1.0,
	}
}

// Validate checks the configuration is usable.
func (c Config) Validate() error {
	if c.MinRows < 1 || c.MinCols < 1 {
		return fmt.Errorf("min rows and cols must be positive, got %d and %d", c.MinRows, c.MinCols)
	}
	if c.SpaceGap < 0 || c.CellGap <= c.SpaceGap {
		return fmt.Errorf("cell gap (%v) must exceed space gap (%v)", c.CellGap, c.SpaceGap)
	}
	if c.AlignmentTolerance < 0 || c.MaxRowGap <= 0 || c.ColumnPadding < 0 {
		return fmt.Errorf("tolerances must not be negative")
	}
	return nil
}
