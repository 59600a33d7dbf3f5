package timingplot

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/ukaji3/timingplot-go/pkg/timingplot/grid"
	"github.com/ukaji3/timingplot-go/pkg/timingplot/layout"
	"github.com/ukaji3/timingplot-go/pkg/timingplot/models"
	"github.com/ukaji3/timingplot-go/pkg/timingplot/parser"
	"github.com/ukaji3/timingplot-go/pkg/timingplot/writer"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Process clears the output sheets of the workbook at path and, unless in
// clear-only mode, transposes the timing table, renders the timing plot and
// encodes every row as hex. The workbook is saved in place on every exit
// after it was opened, including failures, so partial output is kept.
func Process(path string, opts Options) (*models.Report, error) {
	if opts.Mode == "" {
		opts.Mode = ModeFull
	}
	l := opts.EffectiveLayout()
	if err := l.Validate(); err != nil {
		return nil, err
	}
	if err := checkAvailable(path); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	defer f.Close()

	report := &models.Report{
		BookName: filepath.Base(path),
		RunID:    uuid.NewString(),
		Mode:     string(opts.Mode),
	}
	logger := opts.logger().With(
		zap.String("run_id", report.RunID),
		zap.String("book", report.BookName))
	logger.Info("Starting timing plot generation", zap.String("mode", report.Mode))

	in, table, plot, err := openSheets(f, l)
	if err != nil {
		return nil, err
	}
	w := writer.New(in, table, plot, l, logger)

	r := &run{f: f, logger: logger}

	dr, err := parser.CountDataRows(in, l)
	if err != nil {
		return report, r.fail(NewStepError(in.Name(), "count", err))
	}
	report.Data = dr
	logger.Info("Counted data rows",
		zap.Int("first", dr.First),
		zap.Int("end", dr.End),
		zap.Int("rows", dr.Len()))

	if err := w.Clear(dr); err != nil {
		return report, r.fail(NewStepError(plot.Name(), "clear", err))
	}
	if opts.ClearOnly() {
		if err := r.save(); err != nil {
			return report, err
		}
		logger.Info("Completed timing plot clear only")
		return report, nil
	}

	if err := w.Transpose(dr); err != nil {
		return report, r.fail(NewStepError(in.Name(), "transpose", err))
	}

	labels, err := parser.ReadLabels(in, l)
	if err != nil {
		return report, r.fail(NewStepError(in.Name(), "plot", err))
	}
	if report.Labels, err = w.RenderPlot(dr, labels); err != nil {
		return report, r.fail(NewStepError(plot.Name(), "plot", err))
	}

	if report.HexRows, err = w.EncodeHex(dr); err != nil {
		return report, r.fail(NewStepError(in.Name(), "hex", err))
	}

	if err := r.save(); err != nil {
		return report, err
	}
	logger.Info("Completed timing plot generation",
		zap.Int("labels", len(report.Labels)),
		zap.Int("changed", len(report.ChangedRows())))
	return report, nil
}

func openSheets(f *excelize.File, l layout.Layout) (in, table, plot *grid.Sheet, err error) {
	palette := grid.Palette{
		Faint:  l.Colors.Faint,
		Label:  l.Colors.Label,
		Marker: l.Colors.Marker,
	}
	if in, err = grid.Open(f, l.Sheets.Input, palette); err != nil {
		return nil, nil, nil, err
	}
	if table, err = grid.Open(f, l.Sheets.Transposed, palette); err != nil {
		return nil, nil, nil, err
	}
	if plot, err = grid.Open(f, l.Sheets.Plot, palette); err != nil {
		return nil, nil, nil, err
	}
	return in, table, plot, nil
}

// run tracks the open workbook so every exit path can save it.
type run struct {
	f      *excelize.File
	logger *zap.Logger
}

func (r *run) save() error {
	if err := r.f.Save(); err != nil {
		return NewStepError("", "save", fmt.Errorf("failed to save workbook: %w", err))
	}
	r.logger.Debug("Saved workbook", zap.String("path", r.f.Path))
	return nil
}

// fail saves the partial output and returns err, joined with any save error.
func (r *run) fail(err error) error {
	r.logger.Error("Timing plot generation failed, saving partial output", zap.Error(err))
	if saveErr := r.save(); saveErr != nil {
		return errors.Join(err, saveErr)
	}
	return err
}
