package parser

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ErrInvalidBitValue indicates a data cell that is not 0 or 1.
var ErrInvalidBitValue = errors.New("invalid bit value")

// InvalidBitValueError identifies the offending data cell.
type InvalidBitValueError struct {
	SheetName string
	Row       int
	Column    int
	Value     string
}

func (e *InvalidBitValueError) Error() string {
	cell, _ := excelize.CoordinatesToCellName(e.Column, e.Row)
	return fmt.Sprintf("invalid bit pattern data (not a 1 or 0) in sheet %q cell %s (row %d, column %d): value = %q",
		e.SheetName, cell, e.Row, e.Column, e.Value)
}

func (e *InvalidBitValueError) Unwrap() error {
	return ErrInvalidBitValue
}

// NewInvalidBitValueError creates a new InvalidBitValueError.
func NewInvalidBitValueError(sheetName string, row, col int, value string) *InvalidBitValueError {
	return &InvalidBitValueError{
		SheetName: sheetName,
		Row:       row,
		Column:    col,
		Value:     value,
	}
}
