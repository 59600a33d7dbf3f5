package writer

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ukaji3/timingplot-go/pkg/timingplot/grid"
	"github.com/ukaji3/timingplot-go/pkg/timingplot/layout"
	"github.com/ukaji3/timingplot-go/pkg/timingplot/models"
)

// memCell records everything written to one cell.
type memCell struct {
	value  interface{}
	border models.Border
	fill   models.Fill
	font   models.Font
	align  models.Align
}

type cellKey struct{ row, col int }

// memGrid is an in-memory grid.Grid.
type memGrid struct {
	name  string
	cells map[cellKey]*memCell
}

var _ grid.Grid = (*memGrid)(nil)

func newMemGrid(name string) *memGrid {
	return &memGrid{name: name, cells: make(map[cellKey]*memCell)}
}

func (g *memGrid) cell(row, col int) *memCell {
	k := cellKey{row, col}
	c, ok := g.cells[k]
	if !ok {
		c = &memCell{}
		g.cells[k] = c
	}
	return c
}

func (g *memGrid) get(row, col int) memCell {
	if c, ok := g.cells[cellKey{row, col}]; ok {
		return *c
	}
	return memCell{}
}

func (g *memGrid) Name() string { return g.name }

func (g *memGrid) Value(row, col int) (string, error) {
	switch v := g.get(row, col).value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	default:
		return fmt.Sprint(v), nil
	}
}

func (g *memGrid) SetValue(row, col int, v interface{}) error {
	g.cell(row, col).value = v
	return nil
}

func (g *memGrid) Extent() (rows, cols int, err error) {
	for k, c := range g.cells {
		if c.value != nil {
			rows, cols = max(rows, k.row), max(cols, k.col)
		}
	}
	return rows, cols, nil
}

func (g *memGrid) ClearCell(row, col int) error {
	if c, ok := g.cells[cellKey{row, col}]; ok {
		c.value, c.border, c.fill = nil, models.BorderNone, models.FillNone
	}
	return nil
}

// dirty lists the cells holding a value, a border or a fill.
func (g *memGrid) dirty() []cellKey {
	var out []cellKey
	for k, c := range g.cells {
		if c.value != nil || c.border != models.BorderNone || c.fill != models.FillNone {
			out = append(out, k)
		}
	}
	return out
}

func (g *memGrid) SetBorder(row, col int, b models.Border) error {
	g.cell(row, col).border = b
	return nil
}

func (g *memGrid) SetFill(row, col int, f models.Fill) error {
	g.cell(row, col).fill = f
	return nil
}

func (g *memGrid) SetFont(row, col int, f models.Font) error {
	g.cell(row, col).font = f
	return nil
}

func (g *memGrid) SetAlign(row, col int, a models.Align) error {
	g.cell(row, col).align = a
	return nil
}

// fixture holds the three in-memory sheets of a workbook.
type fixture struct {
	l      layout.Layout
	input  *memGrid
	table  *memGrid
	plot   *memGrid
	writer *Writer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	l := layout.Default()
	fx := &fixture{
		l:     l,
		input: newMemGrid(l.Sheets.Input),
		table: newMemGrid(l.Sheets.Transposed),
		plot:  newMemGrid(l.Sheets.Plot),
	}
	fx.writer = New(fx.input, fx.table, fx.plot, l, nil)
	return fx
}

// row writes a data row, most significant bit first; missing bits are 0.
func (fx *fixture) row(t *testing.T, row int, bits ...int) {
	t.Helper()
	require.LessOrEqual(t, len(bits), fx.l.Input.BitCount)
	for i := 0; i < fx.l.Input.BitCount; i++ {
		b := 0
		if i < len(bits) {
			b = bits[i]
		}
		require.NoError(t, fx.input.SetValue(row, fx.l.Input.FirstBitColumn+i, b))
	}
}

// column sets one bit column over consecutive data rows.
func (fx *fixture) column(t *testing.T, col int, bits ...int) {
	t.Helper()
	for i, b := range bits {
		require.NoError(t, fx.input.SetValue(fx.l.FirstDataRow()+i, col, b))
	}
}

func (fx *fixture) label(t *testing.T, col int, label string) {
	t.Helper()
	require.NoError(t, fx.input.SetValue(fx.l.Input.LabelRow, col, label))
}

func (fx *fixture) dataRange(rows int) models.DataRange {
	first := fx.l.FirstDataRow()
	return models.DataRange{LabelRow: fx.l.Input.LabelRow, First: first, End: first + rows}
}
