// Package grid provides row/column access to a single worksheet.
package grid

import "github.com/ukaji3/timingplot-go/pkg/timingplot/models"

// Grid is a worksheet addressed by 1-based (row, column) coordinates.
// Style setters change one facet of the cell style and keep the others.
type Grid interface {
	// Name returns the sheet name.
	Name() string
	// Value returns the raw cell value, or "" for an empty cell.
	Value(row, col int) (string, error)
	// SetValue writes v to the cell. A nil v empties the cell.
	SetValue(row, col int, v interface{}) error
	// Extent returns the last row and column holding a value, or zeros for
	// an empty sheet.
	Extent() (rows, cols int, err error)
	// ClearCell empties the cell and removes its border and fill.
	ClearCell(row, col int) error
	SetBorder(row, col int, b models.Border) error
	SetFill(row, col int, f models.Fill) error
	SetFont(row, col int, f models.Font) error
	SetAlign(row, col int, a models.Align) error
}
