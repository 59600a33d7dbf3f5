package writer

import (
	"github.com/ukaji3/timingplot-go/pkg/timingplot/grid"
	"github.com/ukaji3/timingplot-go/pkg/timingplot/models"
	"go.uber.org/zap"
)

// Clear blanks everything a previous run may have written: values, borders
// and fills of the plot sheet, values of the transposed sheet, and the hex
// and state-change columns of the input sheet below the label row. The
// cleared area covers the output footprint of the current data and every
// value already present on the sheets, plus the layout's margin, so output
// of a longer earlier table goes too.
func (w *Writer) Clear(dr models.DataRange) error {
	l := w.Layout
	endRow, endCol := l.ClearRows(dr.End), l.ClearColumns(dr.End)
	for _, g := range []grid.Grid{w.InputSheet, w.TableSheet, w.PlotSheet} {
		rows, cols, err := g.Extent()
		if err != nil {
			return err
		}
		endRow = max(endRow, rows+1+l.ClearMargin)
		endCol = max(endCol, cols+1+l.ClearMargin)
	}

	w.Logger.Info("Clearing output sheets",
		zap.Int("rows", endRow-1),
		zap.Int("columns", endCol-1))

	for col := 1; col < endCol; col++ {
		for row := 1; row < endRow; row++ {
			if err := w.PlotSheet.ClearCell(row, col); err != nil {
				return err
			}
			if err := clearValue(w.TableSheet, row, col); err != nil {
				return err
			}
			if row <= l.Input.LabelRow {
				continue
			}
			if col == l.Input.StateChangeColumn || col == l.Input.HexColumn {
				if err := clearValue(w.InputSheet, row, col); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// clearValue empties a cell that holds a value.
func clearValue(g grid.Grid, row, col int) error {
	v, err := g.Value(row, col)
	if err != nil || v == "" {
		return err
	}
	return g.SetValue(row, col, nil)
}
