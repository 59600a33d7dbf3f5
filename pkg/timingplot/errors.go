package timingplot

import (
	"errors"
	"fmt"

	"github.com/ukaji3/timingplot-go/pkg/timingplot/grid"
	"github.com/ukaji3/timingplot-go/pkg/timingplot/layout"
	"github.com/ukaji3/timingplot-go/pkg/timingplot/parser"
)

// ErrMissingArgument indicates no workbook path was given.
var ErrMissingArgument = errors.New("no parameters given, add the workbook file name to process")

// ErrInvalidClearFlag indicates a second argument other than ClearOnly.
var ErrInvalidClearFlag = errors.New("invalid clear parameter")

// ErrFileAlreadyOpen indicates the workbook is open in another program.
var ErrFileAlreadyOpen = errors.New("the file is open, close it and run again")

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrSheetNotFound indicates the workbook lacks a required sheet.
var ErrSheetNotFound = grid.ErrSheetNotFound

// ErrInvalidBitValue indicates a data cell that is not 0 or 1.
var ErrInvalidBitValue = parser.ErrInvalidBitValue

// ErrInvalidLayout indicates inconsistent layout values.
var ErrInvalidLayout = layout.ErrInvalidLayout

// InvalidBitValueError identifies the offending data cell.
type InvalidBitValueError = parser.InvalidBitValueError

// StepError represents an error during one processing step.
type StepError struct {
	SheetName string
	Step      string // "count", "clear", "transpose", "plot", "hex", "save"
	Err       error
}

func (e *StepError) Error() string {
	if e.SheetName == "" {
		return fmt.Sprintf("%s step failed: %v", e.Step, e.Err)
	}
	return fmt.Sprintf("%s step failed on sheet %q: %v", e.Step, e.SheetName, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// NewStepError creates a new StepError.
func NewStepError(sheetName, step string, err error) *StepError {
	return &StepError{
		SheetName: sheetName,
		Step:      step,
		Err:       err,
	}
}
