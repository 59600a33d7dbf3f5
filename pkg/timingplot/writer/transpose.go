package writer

import (
	"github.com/ukaji3/timingplot-go/pkg/timingplot/models"
	"github.com/ukaji3/timingplot-go/pkg/timingplot/parser"
	"go.uber.org/zap"
)

// BitNumberHeader labels the bit number column of the transposed table.
const BitNumberHeader = "Bit Number"

// Transpose copies the label row and the data rows of every bit column into
// the transposed table with rows and columns swapped. Data cells are checked
// while copying; the first cell that is not 0 or 1 stops the copy with an
// *parser.InvalidBitValueError and leaves earlier cells written.
func (w *Writer) Transpose(dr models.DataRange) error {
	l := w.Layout

	w.Logger.Info("Transposing timing patterns",
		zap.String("from", w.InputSheet.Name()),
		zap.String("to", w.TableSheet.Name()),
		zap.Int("rows", dr.Len()))

	for col := l.Input.FirstBitColumn; col <= l.LastBitColumn(); col++ {
		outRow := l.TransposedRow(col)

		label, err := w.InputSheet.Value(l.Input.LabelRow, col)
		if err != nil {
			return err
		}
		if err := w.TableSheet.SetValue(outRow, l.TransposedColumn(l.Input.LabelRow), cellValue(label)); err != nil {
			return err
		}

		for row := dr.First; row < dr.End; row++ {
			bit, err := parser.ReadBit(w.InputSheet, row, col)
			if err != nil {
				return err
			}
			if err := w.TableSheet.SetValue(outRow, l.TransposedColumn(row), int(bit)); err != nil {
				return err
			}
		}
	}

	return w.writeBitNumbers()
}

// writeBitNumbers numbers the transposed rows, bit 0 at the top.
func (w *Writer) writeBitNumbers() error {
	l := w.Layout
	col := l.Transposed.BitNumberColumn

	if err := w.TableSheet.SetValue(l.Transposed.FirstRow-1, col, BitNumberHeader); err != nil {
		return err
	}
	for c := l.Input.FirstBitColumn; c <= l.LastBitColumn(); c++ {
		if err := w.TableSheet.SetValue(l.TransposedRow(c), col, l.BitOf(c)); err != nil {
			return err
		}
	}
	return nil
}

// cellValue converts a raw value back into a typed cell value.
func cellValue(raw string) interface{} {
	if raw == "" {
		return nil
	}
	return parser.ParseValue(raw)
}
