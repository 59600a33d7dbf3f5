package models

// Report summarizes one run over a workbook.
type Report struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// RunID identifies the run in logs and reports.
	RunID string `json:"run_id"`
	// Mode is the processing mode ("full" or "clear_only").
	Mode string `json:"mode"`
	// Data is the data row range found on the input sheet.
	Data DataRange `json:"data"`
	// Labels lists the labeled bit columns in input order.
	Labels []BitLabel `json:"labels,omitempty"`
	// HexRows contains one entry per data row.
	HexRows []HexRow `json:"hex_rows,omitempty"`
}

// ChangedRows returns the rows marked as state changes.
func (r *Report) ChangedRows() []int {
	var rows []int
	for _, h := range r.HexRows {
		if h.Changed {
			rows = append(rows, h.Row)
		}
	}
	return rows
}
