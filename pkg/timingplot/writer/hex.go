package writer

import (
	"github.com/ukaji3/timingplot-go/pkg/timingplot/models"
	"github.com/ukaji3/timingplot-go/pkg/timingplot/parser"
	"go.uber.org/zap"
)

// EncodeHex packs every data row into an integer, writes it to the hex
// column and marks the state-change column when the value differs from the
// baseline. The baseline starts at the first data row, which is never
// marked, and moves only when a change is marked.
func (w *Writer) EncodeHex(dr models.DataRange) ([]models.HexRow, error) {
	l := w.Layout
	rows := make([]models.HexRow, 0, dr.Len())

	var baseline uint64
	for r := dr.First; r < dr.End; r++ {
		bits, err := parser.ReadRow(w.InputSheet, l, r)
		if err != nil {
			return rows, err
		}
		v := parser.PackBits(bits)
		h := models.HexRow{
			Row:   r,
			Value: v,
			Hex:   parser.FormatHex(v, l.Input.BitCount),
		}

		switch {
		case r == dr.First:
			baseline = v
		case v != baseline:
			h.Changed = true
			baseline = v
		}

		if err := w.InputSheet.SetValue(r, l.Input.HexColumn, h.Hex); err != nil {
			return rows, err
		}
		if h.Changed {
			if err := w.InputSheet.SetValue(r, l.Input.StateChangeColumn, models.ChangedMarker); err != nil {
				return rows, err
			}
		}
		rows = append(rows, h)
	}

	changed := 0
	for _, h := range rows {
		if h.Changed {
			changed++
		}
	}
	w.Logger.Info("Encoded bit patterns",
		zap.String("sheet", w.InputSheet.Name()),
		zap.Int("rows", len(rows)),
		zap.Int("changed", changed))

	return rows, nil
}
