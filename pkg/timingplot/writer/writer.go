// Package writer renders the transposed table, the timing plot and the hex
// encoding into the workbook sheets.
package writer

import (
	"github.com/ukaji3/timingplot-go/pkg/timingplot/grid"
	"github.com/ukaji3/timingplot-go/pkg/timingplot/layout"
	"go.uber.org/zap"
)

// Writer holds the three sheets of a timing workbook.
type Writer struct {
	InputSheet grid.Grid
	TableSheet grid.Grid
	PlotSheet  grid.Grid
	Layout     layout.Layout
	Logger     *zap.Logger
}

// New creates a Writer. A nil logger discards log output.
func New(input, table, plot grid.Grid, l layout.Layout, logger *zap.Logger) *Writer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Writer{
		InputSheet: input,
		TableSheet: table,
		PlotSheet:  plot,
		Layout:     l,
		Logger:     logger,
	}
}
