package parser

import (
	"github.com/ukaji3/timingplot-go/pkg/timingplot/grid"
	"github.com/ukaji3/timingplot-go/pkg/timingplot/layout"
	"github.com/ukaji3/timingplot-go/pkg/timingplot/models"
	"github.com/xuri/excelize/v2"
)

// CountDataRows scans the sentinel column downward from the first data row
// and stops at the first empty cell.
func CountDataRows(g grid.Grid, l layout.Layout) (models.DataRange, error) {
	dr := models.DataRange{
		LabelRow: l.Input.LabelRow,
		First:    l.FirstDataRow(),
		End:      l.FirstDataRow(),
	}
	sentinel := l.LastBitColumn()

	for dr.End <= excelize.TotalRows {
		v, err := g.Value(dr.End, sentinel)
		if err != nil {
			return dr, err
		}
		if v == "" {
			break
		}
		dr.End++
	}

	return dr, nil
}

// ReadLabels returns the labeled bit columns, left to right.
func ReadLabels(g grid.Grid, l layout.Layout) ([]models.BitLabel, error) {
	var labels []models.BitLabel
	for col := l.Input.FirstBitColumn; col <= l.LastBitColumn(); col++ {
		v, err := g.Value(l.Input.LabelRow, col)
		if err != nil {
			return nil, err
		}
		if v == "" {
			continue
		}
		labels = append(labels, models.BitLabel{
			Bit:    l.BitOf(col),
			Column: col,
			Label:  v,
		})
	}
	return labels, nil
}

// ReadRow returns the bits of one data row, most significant first.
func ReadRow(g grid.Grid, l layout.Layout, row int) ([]uint8, error) {
	bits := make([]uint8, 0, l.Input.BitCount)
	for col := l.Input.FirstBitColumn; col <= l.LastBitColumn(); col++ {
		b, err := ReadBit(g, row, col)
		if err != nil {
			return nil, err
		}
		bits = append(bits, b)
	}
	return bits, nil
}

// ReadBit reads one data cell and fails with *InvalidBitValueError unless it
// holds 0 or 1.
func ReadBit(g grid.Grid, row, col int) (uint8, error) {
	raw, err := g.Value(row, col)
	if err != nil {
		return 0, err
	}
	b, ok := ParseBit(raw)
	if !ok {
		return 0, NewInvalidBitValueError(g.Name(), row, col, raw)
	}
	return b, nil
}
