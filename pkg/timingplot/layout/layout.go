// Package layout holds the fixed sheet positions of a timing workbook and
// the arithmetic that maps input cells onto the output sheets.
package layout

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidLayout indicates inconsistent layout values.
var ErrInvalidLayout = errors.New("invalid layout")

// MaxBits is the widest bit pattern that packs into a uint64.
const MaxBits = 64

// Sheets names the three worksheets of a timing workbook.
type Sheets struct {
	Input      string `yaml:"input"`
	Transposed string `yaml:"transposed"`
	Plot       string `yaml:"plot"`
}

// Input describes the timing table sheet.
type Input struct {
	// LabelRow holds the bit labels; data starts on the next row.
	LabelRow int `yaml:"label_row"`
	// FirstBitColumn is the most significant bit column.
	FirstBitColumn int `yaml:"first_bit_column"`
	// BitCount is the number of bit columns.
	BitCount int `yaml:"bit_count"`
	// StateChangeColumn receives the CHANGED marker.
	StateChangeColumn int `yaml:"state_change_column"`
	// HexColumn receives the packed hex value.
	HexColumn int `yaml:"hex_column"`
}

// Transposed describes the transposed table sheet.
type Transposed struct {
	// FirstRow receives bit 0; the bit number header sits one row above.
	FirstRow int `yaml:"first_row"`
	// BitNumberColumn holds the bit numbers; labels go one column right.
	BitNumberColumn int `yaml:"bit_number_column"`
}

// Plot describes the timing plot sheet.
type Plot struct {
	// FirstRow is the topmost plot row.
	FirstRow int `yaml:"first_row"`
	// FirstColumn receives the first sample; labels go one column left.
	FirstColumn int `yaml:"first_column"`
	// TimeRow holds the time axis.
	TimeRow int `yaml:"time_row"`
	// TimeLabel is written left of the time axis.
	TimeLabel string `yaml:"time_label"`
	// MarkerEvery is the step period of axis labels and shaded columns.
	MarkerEvery int `yaml:"marker_every"`
	// TimeScale converts a step index into axis units.
	TimeScale float64 `yaml:"time_scale"`
}

// Colors are RGB hex strings without '#'.
type Colors struct {
	Faint  string `yaml:"faint"`
	Label  string `yaml:"label"`
	Marker string `yaml:"marker"`
}

// Layout is the complete workbook layout.
type Layout struct {
	Sheets     Sheets     `yaml:"sheets"`
	Input      Input      `yaml:"input"`
	Transposed Transposed `yaml:"transposed"`
	Plot       Plot       `yaml:"plot"`
	Colors     Colors     `yaml:"colors"`
	// ClearMargin extends the cleared area beyond the data in both directions.
	ClearMargin int `yaml:"clear_margin"`
}

// Default returns the layout of the H4RG clocking workbook.
func Default() Layout {
	return Layout{
		Sheets: Sheets{
			Input:      "Timing Patterns",
			Transposed: "Transpose Timing Patterns",
			Plot:       "Transpose Timing Plot",
		},
		Input: Input{
			LabelRow:          8,
			FirstBitColumn:    5,
			BitCount:          48,
			StateChangeColumn: 3,
			HexColumn:         4,
		},
		Transposed: Transposed{
			FirstRow:        5,
			BitNumberColumn: 1,
		},
		Plot: Plot{
			FirstRow:    5,
			FirstColumn: 3,
			TimeRow:     3,
			TimeLabel:   "Time (us)",
			MarkerEvery: 10,
			TimeScale:   0.5,
		},
		Colors: Colors{
			Faint:  "D1D1D1",
			Label:  "000000",
			Marker: "F2F287",
		},
		ClearMargin: 50,
	}
}

// Load reads a YAML layout file over the defaults.
func Load(path string) (Layout, error) {
	l := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return l, fmt.Errorf("failed to read layout: %w", err)
	}
	if err := yaml.Unmarshal(data, &l); err != nil {
		return l, fmt.Errorf("failed to parse layout: %w", err)
	}
	if err := l.Validate(); err != nil {
		return l, err
	}
	return l, nil
}

// Save writes the layout as YAML.
func (l Layout) Save(path string) error {
	data, err := yaml.Marshal(l)
	if err != nil {
		return fmt.Errorf("failed to marshal layout: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write layout: %w", err)
	}
	return nil
}

// Validate checks that the layout is usable.
func (l Layout) Validate() error {
	invalid := func(format string, args ...interface{}) error {
		return fmt.Errorf("%w: %s", ErrInvalidLayout, fmt.Sprintf(format, args...))
	}

	if l.Sheets.Input == "" || l.Sheets.Transposed == "" || l.Sheets.Plot == "" {
		return invalid("sheet names must not be empty")
	}
	if l.Input.BitCount < 1 || l.Input.BitCount > MaxBits {
		return invalid("bit_count %d out of range 1..%d", l.Input.BitCount, MaxBits)
	}
	if l.Input.LabelRow < 1 || l.Input.FirstBitColumn < 1 {
		return invalid("label_row and first_bit_column must be positive")
	}
	for name, col := range map[string]int{
		"state_change_column": l.Input.StateChangeColumn,
		"hex_column":          l.Input.HexColumn,
	} {
		if col < 1 {
			return invalid("%s must be positive", name)
		}
		if col >= l.Input.FirstBitColumn && col <= l.LastBitColumn() {
			return invalid("%s %d overlaps the bit columns", name, col)
		}
	}
	if l.Input.StateChangeColumn == l.Input.HexColumn {
		return invalid("state_change_column and hex_column must differ")
	}
	if l.Transposed.FirstRow < 2 || l.Transposed.BitNumberColumn < 1 {
		return invalid("transposed origin out of range")
	}
	if l.Plot.FirstColumn < 2 || l.Plot.TimeRow < 1 || l.Plot.FirstRow <= l.Plot.TimeRow {
		return invalid("plot origin out of range")
	}
	if l.Plot.MarkerEvery < 1 {
		return invalid("marker_every must be positive")
	}
	if l.ClearMargin < 0 {
		return invalid("clear_margin must not be negative")
	}
	return nil
}

// FirstDataRow returns the first row holding bit values.
func (l Layout) FirstDataRow() int {
	return l.Input.LabelRow + 1
}

// LastBitColumn returns the least significant bit column, which is also the
// sentinel column used to count data rows.
func (l Layout) LastBitColumn() int {
	return l.Input.FirstBitColumn + l.Input.BitCount - 1
}

// BitOf returns the bit number of an input column.
func (l Layout) BitOf(col int) int {
	return l.LastBitColumn() - col
}

// TransposedRow maps an input column onto a transposed table row.
func (l Layout) TransposedRow(col int) int {
	return l.Transposed.FirstRow + l.BitOf(col)
}

// TransposedColumn maps an input row onto a transposed table column.
func (l Layout) TransposedColumn(row int) int {
	return l.Transposed.BitNumberColumn + 1 + row - l.Input.LabelRow
}

// PlotRow returns the plot row of the labeled column with the given rank
// (0 = leftmost labeled column) out of labels. The leftmost column lands on
// the bottom row and each following one two rows higher.
func (l Layout) PlotRow(rank, labels int) int {
	return l.Plot.FirstRow + 2*(labels-1-rank)
}

// PlotBottomRow returns the lowest plot row for the given label count.
func (l Layout) PlotBottomRow(labels int) int {
	return l.Plot.FirstRow + 2*labels - 2
}

// PlotColumn maps an input row onto a plot column. The label row lands on
// the label column.
func (l Layout) PlotColumn(row int) int {
	return l.Plot.FirstColumn - 1 + row - l.Input.LabelRow
}

// ClearRows returns the exclusive end row of the cleared area for data
// ending at end. It covers the input rows, every transposed bit row and the
// plot with all bits labeled, plus the margin.
func (l Layout) ClearRows(end int) int {
	return max(end,
		l.TransposedRow(l.Input.FirstBitColumn)+1,
		l.PlotBottomRow(l.Input.BitCount)+1) + l.ClearMargin
}

// ClearColumns returns the exclusive end column of the cleared area for data
// ending at end. It covers the input bit columns, the transposed data
// columns and the time axis, plus the margin.
func (l Layout) ClearColumns(end int) int {
	return max(l.LastBitColumn()+1,
		l.TransposedColumn(end),
		l.Plot.FirstColumn+end) + l.ClearMargin
}
