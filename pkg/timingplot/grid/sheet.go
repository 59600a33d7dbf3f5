package grid

import (
	"errors"
	"fmt"

	"github.com/ukaji3/timingplot-go/pkg/timingplot/models"
	"github.com/xuri/excelize/v2"
)

// ErrSheetNotFound indicates the workbook lacks a required sheet.
var ErrSheetNotFound = errors.New("sheet not found")

// Border line styles as numbered by excelize.
const (
	lineThin  = 1
	lineThick = 5
)

const borderColor = "000000"

// Palette holds the colors used by the style presets (RGB hex, no '#').
type Palette struct {
	Faint  string
	Label  string
	Marker string
}

// DefaultPalette returns light grey samples, black labels and yellow markers.
func DefaultPalette() Palette {
	return Palette{
		Faint:  "D1D1D1",
		Label:  "000000",
		Marker: "F2F287",
	}
}

// Sheet is a Grid backed by a worksheet of an open excelize workbook.
type Sheet struct {
	f       *excelize.File
	name    string
	palette Palette

	// styles maps a style id and a change to the resulting style id.
	styles map[styleEdit]int
}

// facet names the part of a style a change touches.
type facet int

const (
	facetBorder facet = iota
	facetFill
	facetFont
	facetAlign
	facetClear
)

type styleEdit struct {
	from   int
	facet  facet
	preset int
}

var _ Grid = (*Sheet)(nil)

// Open returns the named sheet of f.
func Open(f *excelize.File, name string, palette Palette) (*Sheet, error) {
	idx, err := f.GetSheetIndex(name)
	if err != nil {
		return nil, err
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, name)
	}
	return &Sheet{f: f, name: name, palette: palette, styles: make(map[styleEdit]int)}, nil
}

// Name returns the sheet name.
func (s *Sheet) Name() string {
	return s.name
}

// Value returns the unformatted value of the cell.
func (s *Sheet) Value(row, col int) (string, error) {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return "", err
	}
	return s.f.GetCellValue(s.name, cell, excelize.Options{RawCellValue: true})
}

// SetValue writes v to the cell.
func (s *Sheet) SetValue(row, col int, v interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return s.f.SetCellValue(s.name, cell, v)
}

// Extent returns the last row and column holding a value.
func (s *Sheet) Extent() (rows, cols int, err error) {
	all, err := s.f.GetRows(s.name, excelize.Options{RawCellValue: true})
	if err != nil {
		return 0, 0, err
	}
	for i, r := range all {
		for j := len(r) - 1; j >= 0; j-- {
			if r[j] != "" {
				rows, cols = i+1, max(cols, j+1)
				break
			}
		}
	}
	return rows, cols, nil
}

// ClearCell empties the cell and drops its border and fill. Cells with no
// value and the default style are left untouched.
func (s *Sheet) ClearCell(row, col int) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	v, err := s.f.GetCellValue(s.name, cell, excelize.Options{RawCellValue: true})
	if err != nil {
		return err
	}
	if v != "" {
		if err := s.f.SetCellValue(s.name, cell, nil); err != nil {
			return err
		}
	}
	return s.updateStyle(row, col, styleEdit{facet: facetClear}, func(st *excelize.Style) {
		st.Border = nil
		st.Fill = excelize.Fill{}
	})
}

// SetBorder replaces the cell's borders with preset b.
func (s *Sheet) SetBorder(row, col int, b models.Border) error {
	return s.updateStyle(row, col, styleEdit{facet: facetBorder, preset: int(b)}, func(st *excelize.Style) {
		st.Border = borders(b)
	})
}

// SetFill replaces the cell's background with preset fill.
func (s *Sheet) SetFill(row, col int, fill models.Fill) error {
	return s.updateStyle(row, col, styleEdit{facet: facetFill, preset: int(fill)}, func(st *excelize.Style) {
		switch fill {
		case models.FillTimeMarker:
			st.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{s.palette.Marker}}
		default:
			st.Fill = excelize.Fill{}
		}
	})
}

// SetFont sets the color and weight of the cell's font from preset font.
// Family, size and the other font attributes are kept.
func (s *Sheet) SetFont(row, col int, font models.Font) error {
	return s.updateStyle(row, col, styleEdit{facet: facetFont, preset: int(font)}, func(st *excelize.Style) {
		var ft excelize.Font
		if st.Font != nil {
			ft = *st.Font
		}
		switch font {
		case models.FontFaint:
			ft.Bold = false
			setFontColor(&ft, s.palette.Faint)
		case models.FontLabel:
			ft.Bold = true
			setFontColor(&ft, s.palette.Label)
		default:
			ft.Bold, ft.Color = false, ""
		}
		st.Font = &ft
	})
}

// SetAlign sets the cell's horizontal alignment.
func (s *Sheet) SetAlign(row, col int, a models.Align) error {
	return s.updateStyle(row, col, styleEdit{facet: facetAlign, preset: int(a)}, func(st *excelize.Style) {
		if st.Alignment == nil {
			st.Alignment = &excelize.Alignment{}
		}
		switch a {
		case models.AlignLeft:
			st.Alignment.Horizontal = "left"
		case models.AlignCenter:
			st.Alignment.Horizontal = "center"
		default:
			st.Alignment.Horizontal = ""
		}
	})
}

// updateStyle applies fn to the cell's current style and stores the result.
// The style produced by an edit of a given style id is computed once; a
// clear of the default style is a no-op.
func (s *Sheet) updateStyle(row, col int, edit styleEdit, fn func(*excelize.Style)) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	id, err := s.f.GetCellStyle(s.name, cell)
	if err != nil {
		return err
	}
	if id == 0 && edit.facet == facetClear {
		return nil
	}

	edit.from = id
	newID, ok := s.styles[edit]
	if !ok {
		st, err := s.f.GetStyle(id)
		if err != nil {
			return err
		}
		fn(st)
		if newID, err = s.f.NewStyle(st); err != nil {
			return err
		}
		s.styles[edit] = newID
	}
	if newID == id {
		return nil
	}
	return s.f.SetCellStyle(s.name, cell, cell, newID)
}

// setFontColor sets an RGB color; a theme color would take precedence.
func setFontColor(ft *excelize.Font, rgb string) {
	ft.Color = rgb
	ft.ColorTheme = nil
	ft.ColorTint = 0
}

func borders(b models.Border) []excelize.Border {
	side := func(typ string, line int) excelize.Border {
		return excelize.Border{Type: typ, Color: borderColor, Style: line}
	}
	switch b {
	case models.BorderThickTop:
		return []excelize.Border{side("top", lineThick)}
	case models.BorderThickBottom:
		return []excelize.Border{side("bottom", lineThick)}
	case models.BorderThickTopLeft:
		return []excelize.Border{side("top", lineThick), side("left", lineThick)}
	case models.BorderThickBottomLeft:
		return []excelize.Border{side("bottom", lineThick), side("left", lineThick)}
	case models.BorderThinBottom:
		return []excelize.Border{side("bottom", lineThin)}
	case models.BorderThickLeftThinBottom:
		return []excelize.Border{side("left", lineThick), side("bottom", lineThin)}
	default:
		return nil
	}
}
