package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/timingplot-go/pkg/timingplot"
	"github.com/ukaji3/timingplot-go/pkg/timingplot/models"
	"github.com/xuri/excelize/v2"
)

func resetFlags() {
	layoutPath, reportPath = "", ""
	pretty, verbose = false, false
	logger = nil
}

func execute(t *testing.T, args ...string) error {
	t.Helper()
	resetFlags()
	cmd := newRootCmd()
	// A nil slice makes cobra fall back to os.Args.
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetOut(&bytes.Buffer{})
	return cmd.Execute()
}

// newWorkbook saves a workbook with one labeled bit and a rising edge on it.
func newWorkbook(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName("Sheet1", "Timing Patterns"))
	_, err := f.NewSheet("Transpose Timing Patterns")
	require.NoError(t, err)
	_, err = f.NewSheet("Transpose Timing Plot")
	require.NoError(t, err)

	require.NoError(t, f.SetCellValue("Timing Patterns", "E8", "RESET"))
	for row, v := range map[int]int{9: 0, 10: 1} {
		for col := 5; col <= 52; col++ {
			cell, err := excelize.CoordinatesToCellName(col, row)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue("Timing Patterns", cell, 0))
		}
		cell, _ := excelize.CoordinatesToCellName(5, row)
		require.NoError(t, f.SetCellValue("Timing Patterns", cell, v))
	}

	path := filepath.Join(t.TempDir(), "clocks.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestValidateArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		err  error
	}{
		{"no args", nil, timingplot.ErrMissingArgument},
		{"empty path", []string{""}, timingplot.ErrMissingArgument},
		{"path only", []string{"book.xlsx"}, nil},
		{"clear only", []string{"book.xlsx", "ClearOnly"}, nil},
		{"clear only lower", []string{"book.xlsx", "clearonly"}, nil},
		{"bad flag", []string{"book.xlsx", "Clear"}, timingplot.ErrInvalidClearFlag},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateArgs(nil, tt.args)
			if tt.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.err)
		})
	}

	assert.Error(t, validateArgs(nil, []string{"a", "ClearOnly", "b"}))
}

func TestExecuteMissingArgument(t *testing.T) {
	err := execute(t)
	assert.ErrorIs(t, err, timingplot.ErrMissingArgument)
}

func TestExecuteWithReport(t *testing.T) {
	path := newWorkbook(t)
	reportFile := filepath.Join(t.TempDir(), "report.json")

	require.NoError(t, execute(t, path, "--report", reportFile, "--pretty"))

	data, err := os.ReadFile(reportFile)
	require.NoError(t, err)
	var report models.Report
	require.NoError(t, json.Unmarshal(data, &report))

	assert.Equal(t, "clocks.xlsx", report.BookName)
	assert.Equal(t, "full", report.Mode)
	require.Len(t, report.HexRows, 2)
	assert.Equal(t, "0x000000000000", report.HexRows[0].Hex)
	assert.Equal(t, "0x800000000000", report.HexRows[1].Hex)
	assert.Equal(t, []int{10}, report.ChangedRows())
}

func TestExecuteClearOnly(t *testing.T) {
	path := newWorkbook(t)
	require.NoError(t, execute(t, path))
	require.NoError(t, execute(t, path, "CLEARONLY"))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	v, err := f.GetCellValue("Timing Patterns", "D10")
	require.NoError(t, err)
	assert.Equal(t, "", v)
	v, err = f.GetCellValue("Transpose Timing Plot", "B5")
	require.NoError(t, err)
	assert.Equal(t, "", v)
	v, err = f.GetCellValue("Timing Patterns", "E10")
	require.NoError(t, err)
	assert.Equal(t, "1", v)
}

func TestExecuteLayoutFlag(t *testing.T) {
	path := newWorkbook(t)
	layoutFile := filepath.Join(t.TempDir(), "layout.yaml")
	require.NoError(t, os.WriteFile(layoutFile, []byte("plot:\n  time_label: Time (ns)\n"), 0644))

	require.NoError(t, execute(t, path, "--layout", layoutFile, "-v"))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	v, err := f.GetCellValue("Transpose Timing Plot", "B3")
	require.NoError(t, err)
	assert.Equal(t, "Time (ns)", v)
}

func TestExecuteInvalidBitWritesReport(t *testing.T) {
	path := newWorkbook(t)
	{
		f, err := excelize.OpenFile(path)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue("Timing Patterns", "F10", "x"))
		require.NoError(t, f.Save())
		require.NoError(t, f.Close())
	}
	reportFile := filepath.Join(t.TempDir(), "report.json")

	err := execute(t, path, "--report", reportFile)
	require.ErrorIs(t, err, timingplot.ErrInvalidBitValue)

	data, readErr := os.ReadFile(reportFile)
	require.NoError(t, readErr)
	var report models.Report
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, 11, report.Data.End)
	assert.Empty(t, report.HexRows)
}

func TestPrintError(t *testing.T) {
	resetFlags()
	cmd := newRootCmd()

	var buf bytes.Buffer
	printError(&buf, cmd, timingplot.ErrMissingArgument)
	assert.Contains(t, buf.String(), "ERROR: no parameters given")
	assert.Contains(t, buf.String(), "Usage:")

	buf.Reset()
	printError(&buf, cmd, timingplot.ErrFileAlreadyOpen)
	assert.Contains(t, buf.String(), "ERROR: the file is open")
	assert.NotContains(t, buf.String(), "Usage:")
}

func TestNewLogger(t *testing.T) {
	l, err := newLogger(false, "WARN")
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(-1))
	assert.True(t, l.Core().Enabled(1))

	l, err = newLogger(true, "")
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(-1))

	_, err = newLogger(false, "loud")
	assert.Error(t, err)
}
