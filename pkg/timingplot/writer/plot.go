package writer

import (
	"github.com/ukaji3/timingplot-go/pkg/timingplot/models"
	"github.com/ukaji3/timingplot-go/pkg/timingplot/parser"
	"go.uber.org/zap"
)

// TransitionBorder selects the border of a plotted sample. Ones get a thick
// top rule and zeros a thick bottom rule; a change from the left neighbour
// adds a thick left rule. first marks a sample with no left neighbour.
func TransitionBorder(cur, prev uint8, first bool) models.Border {
	switch {
	case cur == 1 && !first && prev == 0:
		return models.BorderThickTopLeft
	case cur == 1:
		return models.BorderThickTop
	case !first && prev == 1:
		return models.BorderThickBottomLeft
	default:
		return models.BorderThickBottom
	}
}

// RenderPlot draws one plot row per labeled bit column with a spacer row in
// between, then the time axis. It returns a copy of labels with PlotRow set.
func (w *Writer) RenderPlot(dr models.DataRange, labels []models.BitLabel) ([]models.BitLabel, error) {
	l := w.Layout
	plotted := make([]models.BitLabel, len(labels))
	copy(plotted, labels)

	w.Logger.Info("Plotting timing patterns",
		zap.String("sheet", w.PlotSheet.Name()),
		zap.Int("labels", len(labels)),
		zap.Int("steps", dr.Len()))

	for rank := range plotted {
		row := l.PlotRow(rank, len(plotted))
		plotted[rank].PlotRow = row

		w.Logger.Debug("Plotting bit",
			zap.String("label", plotted[rank].Label),
			zap.Int("bit", plotted[rank].Bit),
			zap.Int("row", row))

		if err := w.plotLabel(row, plotted[rank].Label); err != nil {
			return nil, err
		}
		if err := w.plotSamples(dr, row, plotted[rank].Column); err != nil {
			return nil, err
		}
	}

	if err := w.renderTimeAxis(dr, len(plotted)); err != nil {
		return nil, err
	}
	return plotted, nil
}

func (w *Writer) plotLabel(row int, label string) error {
	col := w.Layout.PlotColumn(w.Layout.Input.LabelRow)
	if err := w.PlotSheet.SetFont(row, col, models.FontLabel); err != nil {
		return err
	}
	if err := w.PlotSheet.SetValue(row, col, cellValue(label)); err != nil {
		return err
	}
	return w.PlotSheet.SetAlign(row, col, models.AlignLeft)
}

func (w *Writer) plotSamples(dr models.DataRange, row, inputCol int) error {
	var prev uint8
	for r := dr.First; r < dr.End; r++ {
		bit, err := parser.ReadBit(w.InputSheet, r, inputCol)
		if err != nil {
			return err
		}
		col := w.Layout.PlotColumn(r)

		if err := w.PlotSheet.SetFont(row, col, models.FontFaint); err != nil {
			return err
		}
		if err := w.PlotSheet.SetValue(row, col, int(bit)); err != nil {
			return err
		}
		if err := w.PlotSheet.SetAlign(row, col, models.AlignCenter); err != nil {
			return err
		}
		if err := w.PlotSheet.SetBorder(row, col, TransitionBorder(bit, prev, r == dr.First)); err != nil {
			return err
		}
		prev = bit
	}
	return nil
}

// renderTimeAxis writes the time axis header row. Every MarkerEvery-th step
// gets a label, a thick left rule and a shaded column down to the bottom
// plot row. The axis runs for dr.End steps, which reaches past the last
// sample by the header offset.
func (w *Writer) renderTimeAxis(dr models.DataRange, labels int) error {
	l := w.Layout
	row := l.Plot.TimeRow
	bottom := l.PlotBottomRow(labels)

	if err := w.PlotSheet.SetValue(row, l.Plot.FirstColumn-1, l.Plot.TimeLabel); err != nil {
		return err
	}
	if err := w.PlotSheet.SetBorder(row, l.Plot.FirstColumn-1, models.BorderThinBottom); err != nil {
		return err
	}

	for step := 0; step < dr.End; step++ {
		col := l.Plot.FirstColumn + step
		if step%l.Plot.MarkerEvery != 0 {
			if err := w.PlotSheet.SetBorder(row, col, models.BorderThinBottom); err != nil {
				return err
			}
			continue
		}

		if err := w.PlotSheet.SetBorder(row, col, models.BorderThickLeftThinBottom); err != nil {
			return err
		}
		if err := w.PlotSheet.SetValue(row, col, float64(step)*l.Plot.TimeScale); err != nil {
			return err
		}
		for r := row; r <= bottom; r++ {
			if err := w.PlotSheet.SetFill(r, col, models.FillTimeMarker); err != nil {
				return err
			}
		}
	}
	return nil
}
