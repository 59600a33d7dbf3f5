// Package models defines data structures shared by the timing plot steps.
package models

// DataRange describes the data rows found on the input sheet.
type DataRange struct {
	// LabelRow is the row holding the bit labels.
	LabelRow int `json:"label_row"`
	// First is the first data row (1-based).
	First int `json:"first"`
	// End is the exclusive end row: the first empty row of the sentinel column.
	End int `json:"end"`
}

// Len returns the number of data rows.
func (d DataRange) Len() int {
	if d.End <= d.First {
		return 0
	}
	return d.End - d.First
}

// Empty reports whether the range holds no data rows.
func (d DataRange) Empty() bool {
	return d.Len() == 0
}
