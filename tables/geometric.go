package tables

import (
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/tsawler/specsheet/model"
)

// GeometricDetector implements table detection using geometric heuristics.
// It analyzes how runs align into rows and columns to rebuild grids that have
// no drawn lines.
type GeometricDetector struct {
	config Config
}

// NewGeometricDetector creates a new geometric table detector with default configuration.
func NewGeometricDetector() *GeometricDetector {
	return &GeometricDetector{
		config: DefaultConfig(),
	}
}

// Name returns the detector's identifier ("geometric").
func (d *GeometricDetector) Name() string {
	return "geometric"
}

// Configure sets the detector configuration.
func (d *GeometricDetector) Configure(config Config) error {
	if err := config.Validate(); err != nil {
		return err
	}
	d.config = config
	return nil
}

// textRow is one visual line of merged cells.
type textRow struct {
	y     float64
	cells []textCell
}

// textCell is a horizontal run of text with its extent.
type textCell struct {
	left, right float64
	text        string
}

// span is a closed horizontal interval.
type span struct {
	left, right float64
}

// Detect finds tables among runs, top to bottom.
func (d *GeometricDetector) Detect(runs []Run) ([]*model.Table, error) {
	if len(runs) == 0 {
		return nil, nil
	}

	rows := d.buildRows(runs)

	var tables []*model.Table
	for _, region := range d.findRegions(rows) {
		tables = append(tables, d.buildTable(region))
	}
	return tables, nil
}

// buildRows clusters runs into visual rows, ordered top to bottom, and merges
// the runs of each row into cells.
func (d *GeometricDetector) buildRows(runs []Run) []textRow {
	yValues := make([]float64, 0, len(runs))
	for _, r := range runs {
		yValues = append(yValues, r.Y)
	}
	sort.Float64s(yValues)
	centers := d.clusterValues(yValues, d.config.AlignmentTolerance)

	// PDF coordinates: top is larger
	sort.Sort(sort.Reverse(sort.Float64Slice(centers)))

	buckets := make([][]Run, len(centers))
	for _, r := range runs {
		i := nearest(centers, r.Y)
		buckets[i] = append(buckets[i], r)
	}

	rows := make([]textRow, 0, len(centers))
	for i, bucket := range buckets {
		if cells := d.mergeCells(bucket); len(cells) > 0 {
			rows = append(rows, textRow{y: centers[i], cells: cells})
		}
	}
	return rows
}

// mergeCells joins the runs of one row, left to right, into cells.
func (d *GeometricDetector) mergeCells(runs []Run) []textCell {
	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].X < runs[j].X
	})

	var (
		cells []textCell
		cur   *textCell
		sb    strings.Builder
	)
	flush := func() {
		if cur == nil {
			return
		}
		if text := strings.TrimSpace(sb.String()); text != "" {
			cur.text = text
			cells = append(cells, *cur)
		}
		cur = nil
		sb.Reset()
	}

	for _, r := range runs {
		size := math.Max(r.FontSize, 1)
		if cur != nil {
			gap := r.X - cur.right
			switch {
			case gap > d.config.CellGap*size:
				flush()
			case gap > d.config.SpaceGap*size:
				sb.WriteByte(' ')
			}
		}
		if cur == nil {
			cur = &textCell{left: r.X, right: r.X}
		}
		sb.WriteString(r.Text)
		cur.right = math.Max(cur.right, runRight(r))
	}
	flush()

	return cells
}

// findRegions returns maximal groups of consecutive rows that each hold at
// least MinCols cells, dropping groups shorter than MinRows.
func (d *GeometricDetector) findRegions(rows []textRow) [][]textRow {
	var (
		regions [][]textRow
		current []textRow
	)
	closeRegion := func() {
		if len(current) >= d.config.MinRows {
			regions = append(regions, current)
		}
		current = nil
	}

	for _, row := range rows {
		if len(row.cells) < d.config.MinCols {
			closeRegion()
			continue
		}
		if len(current) > 0 && current[len(current)-1].y-row.y > d.config.MaxRowGap {
			closeRegion()
		}
		current = append(current, row)
	}
	closeRegion()

	return regions
}

// buildTable lays the cells of region onto a grid. Positions no cell covers
// are null; two cells that land in the same position are joined with a space.
func (d *GeometricDetector) buildTable(region []textRow) *model.Table {
	columns := d.extractColumns(region)

	table := &model.Table{Rows: make([][]model.Cell, len(region))}
	for i, row := range region {
		cells := make([]model.Cell, len(columns))
		for j := range cells {
			cells[j] = model.NullCell()
		}
		for _, c := range row.cells {
			j := columnOf(columns, c.left)
			if cells[j].Null {
				cells[j] = model.TextCell(c.text)
			} else {
				cells[j].Text += " " + c.text
			}
		}
		table.Rows[i] = cells
	}
	return table
}

// extractColumns merges the padded extents of every cell in region. Each
// merged extent is one column, left to right.
func (d *GeometricDetector) extractColumns(region []textRow) []span {
	var spans []span
	for _, row := range region {
		for _, c := range row.cells {
			spans = append(spans, span{
				left:  c.left - d.config.ColumnPadding,
				right: c.right + d.config.ColumnPadding,
			})
		}
	}
	sort.Slice(spans, func(i, j int) bool {
		return spans[i].left < spans[j].left
	})

	merged := []span{spans[0]}
	for _, s := range spans[1:] {
		last := &merged[len(merged)-1]
		if s.left <= last.right {
			last.right = math.Max(last.right, s.right)
		} else {
			merged = append(merged, s)
		}
	}
	return merged
}

// clusterValues clusters nearby values within the given tolerance, averaging
// values that fall within the tolerance of the cluster center.
func (d *GeometricDetector) clusterValues(values []float64, tolerance float64) []float64 {
	if len(values) == 0 {
		return nil
	}

	clustered := []float64{values[0]}

	for i := 1; i < len(values); i++ {
		diff := values[i] - clustered[len(clustered)-1]
		if diff > tolerance {
			clustered = append(clustered, values[i])
		} else {
			// Update cluster center with average
			clustered[len(clustered)-1] = (clustered[len(clustered)-1] + values[i]) / 2
		}
	}

	return clustered
}

// Utility functions

// nearest returns the index of the value closest to v.
func nearest(values []float64, v float64) int {
	best := 0
	for i := 1; i < len(values); i++ {
		if math.Abs(values[i]-v) < math.Abs(values[best]-v) {
			best = i
		}
	}
	return best
}

// columnOf returns the index of the column containing x, or the last column
// starting at or before x.
func columnOf(columns []span, x float64) int {
	col := 0
	for i, c := range columns {
		if x >= c.left {
			col = i
		}
	}
	return col
}

// runRight returns the right edge of r, estimating half an em per rune when
// the width is unknown.
func runRight(r Run) float64 {
	if r.W > 0 {
		return r.X + r.W
	}
	return r.X + 0.5*r.FontSize*float64(utf8.RuneCountInString(r.Text))
}

// Lines returns the visual lines of runs, top to bottom. The cells of a line
// are separated by two spaces.
func (d *GeometricDetector) Lines(runs []Run) []string {
	if len(runs) == 0 {
		return nil
	}
	rows := d.buildRows(runs)
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		parts := make([]string, len(row.cells))
		for i, c := range row.cells {
			parts[i] = c.text
		}
		lines = append(lines, strings.Join(parts, "  "))
	}
	return lines
}

// Lines returns the visual lines of runs using the default configuration.
func Lines(runs []Run) []string {
	return NewGeometricDetector().Lines(runs)
}
